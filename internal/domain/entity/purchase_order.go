package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItem una línea de orden de compra con su cálculo de impuesto
// a la tarifa del producto (snapshot al crear la orden).
type PurchaseOrderItem struct {
	ProductID   string
	ProductName string // snapshot
	Quantity    int    // > 0
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // tarifa del producto al momento de la orden
	Subtotal    decimal.Decimal // Quantity * UnitPrice
	Tax         decimal.Decimal // Subtotal * TaxRate
	Total       decimal.Decimal // Subtotal + Tax
}

// PurchaseOrder representa una orden de compra a un proveedor. Es puramente
// documental: la entrada física de mercancía ocurre vía remisiones, así que
// la orden nunca toca el libro de lotes.
type PurchaseOrder struct {
	ID        string
	Code      string // consecutivo legible, ej. OC-0001
	Supplier  string
	Items     []PurchaseOrderItem
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Status    string // SENT, RECEIVED, CANCELLED
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppendCancellationReason agrega el motivo de anulación a las notas sin
// sobrescribir lo anterior.
func (o *PurchaseOrder) AppendCancellationReason(reason string) {
	marker := "[ANULADO] " + reason
	if o.Notes == "" {
		o.Notes = marker
		return
	}
	o.Notes = o.Notes + "\n" + marker
}
