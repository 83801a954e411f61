package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole informa si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	Tel          string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
