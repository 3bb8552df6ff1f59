package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El primer chequeo que falla corta la operación; los handlers los mapean a HTTP.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)
