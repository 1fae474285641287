package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest una línea de la orden a crear. UnitPrice en cero
// toma el precio vigente del producto.
type PurchaseOrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	Supplier string                     `json:"supplier" validate:"required,min=1,max=200"`
	Notes    string                     `json:"notes"`
	Items    []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseOrderItemResponse una línea de orden en respuestas, con el
// impuesto liquidado a la tarifa del producto.
type PurchaseOrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID        string                      `json:"id"`
	Code      string                      `json:"code"`
	Supplier  string                      `json:"supplier"`
	Items     []PurchaseOrderItemResponse `json:"items"`
	Subtotal  decimal.Decimal             `json:"subtotal"`
	Tax       decimal.Decimal             `json:"tax"`
	Total     decimal.Decimal             `json:"total"`
	Status    string                      `json:"status"`
	Notes     string                      `json:"notes"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// PurchaseOrderListResponse lista paginada de órdenes de compra.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
