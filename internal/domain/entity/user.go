package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema. Solo catálogo: figura como
// responsable en los documentos; la autenticación queda fuera del núcleo.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string // admin, bodeguero, vendedor
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
