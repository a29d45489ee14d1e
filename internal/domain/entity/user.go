package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del back office (autenticación).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	Role         string // "admin" | "vendedor"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
