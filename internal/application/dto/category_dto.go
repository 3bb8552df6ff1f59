package dto

import "time"

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Title string `json:"title"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Title *string `json:"title"`
}

// CategoryResponse categoría del dueño autenticado.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
