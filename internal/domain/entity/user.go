package entity

import "time"

// Roles válidos para User.
const (
	RoleAdminTotal   = "ADMIN_TOTAL"
	RoleAdminParcial = "ADMIN_PARCIAL"
	RoleStaff        = "STAFF"
)

// Estados de cuenta.
const (
	UserActivo   = "ACTIVO"
	UserInactivo = "INACTIVO"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN_TOTAL, ADMIN_PARCIAL, STAFF
	Status       string // ACTIVO, INACTIVO
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
