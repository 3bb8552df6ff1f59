package dto

import "time"

// CreateUserRequest registro de un usuario nuevo.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive *bool  `json:"isActive"`
	Role     string `json:"role"`
}

// UpdateUserRequest actualización parcial; el password se re-hashea si viene.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

// UserResponse usuario sin password.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
