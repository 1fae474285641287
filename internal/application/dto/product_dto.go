package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// UpdateProductRequest entrada para actualizar un producto. Los lotes no se
// tocan por aquí: solo mutan vía remisiones y traslados.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Active      *bool            `json:"active"`
}

// LotResponse salida de un lote.
type LotResponse struct {
	ID            string    `json:"id"`
	LotNumber     string    `json:"lot_number"`
	Available     int       `json:"available"`
	ExpiryDate    time.Time `json:"expiry_date"`
	WarehouseID   string    `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
}

// ProductResponse salida de un producto. StockTotal es derivado de los lotes
// al momento de responder, nunca un dato almacenado.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Active      bool            `json:"active"`
	StockTotal  int             `json:"stock_total"`
	Lots        []LotResponse   `json:"lots,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockResponse agregado de stock de un producto, opcionalmente por bodega.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Available   int    `json:"available"`
}
