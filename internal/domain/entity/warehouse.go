package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// El nombre es único en el sistema; los lotes y documentos referencian la
// bodega por ID y el nombre se resuelve solo en la capa de presentación.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
