package entity

import "time"

// Lot representa un lote (batch) de un producto en una bodega concreta.
// Available nunca baja de 0. Un lote en 0 se conserva como registro
// histórico y deja de aparecer en las consultas de disponibilidad.
type Lot struct {
	ID          string
	LotNumber   string // código de batch legible; no único globalmente
	Available   int    // cantidad disponible, >= 0
	ExpiryDate  time.Time
	WarehouseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAvailable indica si el lote aporta stock disponible.
func (l *Lot) HasAvailable() bool {
	return l.Available > 0
}
