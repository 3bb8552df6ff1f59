package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de acceso emitido.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
