package entity

import "time"

// User es el dueño (tenant) de categorías, productos y períodos.
// Username y email son únicos a nivel global.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	IsActive     bool
	Role         string // admin, manager, frontdesk, provider
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
