package dto

import "time"

// TransferItemRequest una línea del traslado a crear. El lote se elige
// explícitamente por número; el sistema no infiere FEFO/FIFO.
type TransferItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	LotNumber string `json:"lot_number" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateTransferRequest entrada para crear un traslado entre bodegas.
type CreateTransferRequest struct {
	OriginID      string                `json:"origin_id" validate:"required"`
	DestinationID string                `json:"destination_id" validate:"required"`
	ResponsibleID string                `json:"responsible_id" validate:"required"`
	Notes         string                `json:"notes"`
	Items         []TransferItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CancelRequest entrada para anular un documento; el motivo es obligatorio.
type CancelRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// TransferItemResponse una línea de traslado en respuestas.
type TransferItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	LotNumber   string `json:"lot_number"`
	Quantity    int    `json:"quantity"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID              string                 `json:"id"`
	Code            string                 `json:"code"`
	OriginID        string                 `json:"origin_id"`
	OriginName      string                 `json:"origin_name,omitempty"`
	DestinationID   string                 `json:"destination_id"`
	DestinationName string                 `json:"destination_name,omitempty"`
	Items           []TransferItemResponse `json:"items"`
	ResponsibleID   string                 `json:"responsible_id"`
	Responsible     string                 `json:"responsible"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// TransferListResponse lista paginada de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
