package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// StockManagerRoles roles con permiso para editar stock y ubicaciones.
var StockManagerRoles = []string{RoleAdmin, RoleBodeguero}

// User representa un operador del panel.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         string // admin, bodeguero, vendedor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
