package entity

import "time"

// RemissionItem una línea de remisión: mercancía que entra a la bodega
// destino como un lote (nuevo o existente) con su fecha de vencimiento.
type RemissionItem struct {
	ProductID   string
	ProductName string // snapshot al crear el documento
	LotNumber   string
	Quantity    int // > 0
	ExpiryDate  time.Time
}

// Remission representa una remisión de entrada (recepción de mercancía de un
// proveedor). Al confirmar la recepción cada línea crea o alimenta el lote
// correspondiente en la bodega destino; es el punto de nacimiento de los lotes.
type Remission struct {
	ID          string
	Code        string // consecutivo legible, ej. RM-0001
	Supplier    string
	WarehouseID string // bodega destino
	Items       []RemissionItem
	Status      string // SENT, RECEIVED, CANCELLED
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppendCancellationReason agrega el motivo de anulación a las notas sin
// sobrescribir lo anterior.
func (r *Remission) AppendCancellationReason(reason string) {
	marker := "[ANULADO] " + reason
	if r.Notes == "" {
		r.Notes = marker
		return
	}
	r.Notes = r.Notes + "\n" + marker
}
