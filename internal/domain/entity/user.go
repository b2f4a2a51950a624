package entity

import "strings"

// Roles válidos para User.
const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

// User representa una cuenta de la tienda (tabla usuario).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt; filas heredadas pueden traer texto plano hasta el siguiente login
	Role         string
	Name         string
	Email        string
	Phone        string
	NIT          string
	Address      string
}

// IsAdmin indica si el usuario tiene rol admin.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleCliente || role == RoleAdmin
}

// HasHashedPassword distingue un hash bcrypt de una contraseña heredada en texto plano.
func (u *User) HasHashedPassword() bool {
	return strings.HasPrefix(u.PasswordHash, "$2a$") ||
		strings.HasPrefix(u.PasswordHash, "$2b$") ||
		strings.HasPrefix(u.PasswordHash, "$2y$")
}
