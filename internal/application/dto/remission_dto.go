package dto

import "time"

// RemissionItemRequest una línea de la remisión a crear. ExpiryDate es la
// fecha de vencimiento del batch que entra.
type RemissionItemRequest struct {
	ProductID  string    `json:"product_id" validate:"required"`
	LotNumber  string    `json:"lot_number" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`
	ExpiryDate time.Time `json:"expiry_date" validate:"required"`
}

// CreateRemissionRequest entrada para crear una remisión de entrada.
type CreateRemissionRequest struct {
	Supplier    string                 `json:"supplier" validate:"required,min=1,max=200"`
	WarehouseID string                 `json:"warehouse_id" validate:"required"`
	Notes       string                 `json:"notes"`
	Items       []RemissionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RemissionItemResponse una línea de remisión en respuestas.
type RemissionItemResponse struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	LotNumber   string    `json:"lot_number"`
	Quantity    int       `json:"quantity"`
	ExpiryDate  time.Time `json:"expiry_date"`
}

// RemissionResponse salida de una remisión.
type RemissionResponse struct {
	ID            string                  `json:"id"`
	Code          string                  `json:"code"`
	Supplier      string                  `json:"supplier"`
	WarehouseID   string                  `json:"warehouse_id"`
	WarehouseName string                  `json:"warehouse_name,omitempty"`
	Items         []RemissionItemResponse `json:"items"`
	Status        string                  `json:"status"`
	Notes         string                  `json:"notes"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// RemissionListResponse lista paginada de remisiones.
type RemissionListResponse struct {
	Items []RemissionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
