package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación para deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout formato de fecha de la API (solo fecha, sin hora).
const DateLayout = "2006-01-02"
