package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin = "admin"
)

// Usuario cuenta del sistema. Único por email. PasswordHash nunca sale del
// dominio hacia los clientes.
type Usuario struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string
	CreatedAt    time.Time
}
