package entity

import "time"

// Roles reconocidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// IsKnownRole indica si role es uno de los roles reconocidos.
func IsKnownRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// User representa una cuenta del personal. No se actualiza ni se elimina.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash de una vía, nunca la contraseña en claro
	Role         string // admin, staff (se guarda tal cual llega)
	CreatedAt    time.Time
}
