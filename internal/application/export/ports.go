package export

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransferDocument foto de solo lectura de un traslado lista para renderizar:
// nombres de bodega ya resueltos, sin referencias al almacén.
type TransferDocument struct {
	Code            string
	CreatedAt       time.Time
	OriginName      string
	DestinationName string
	Responsible     string
	Status          string
	Notes           string
	Items           []TransferDocumentItem
}

// TransferDocumentItem una línea del documento de traslado.
type TransferDocumentItem struct {
	ProductName string
	LotNumber   string
	Quantity    int
}

// PurchaseOrderDocument foto de solo lectura de una orden de compra.
type PurchaseOrderDocument struct {
	Code      string
	CreatedAt time.Time
	Supplier  string
	Status    string
	Notes     string
	Items     []PurchaseOrderDocumentItem
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// PurchaseOrderDocumentItem una línea del documento de orden de compra.
type PurchaseOrderDocumentItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// PDFGenerator renderiza documentos a PDF. Los colaboradores de exportación
// consumen fotos de solo lectura y no pueden mutar el libro.
type PDFGenerator interface {
	GenerateTransferPDF(ctx context.Context, doc *TransferDocument) ([]byte, error)
	GeneratePurchaseOrderPDF(ctx context.Context, doc *PurchaseOrderDocument) ([]byte, error)
}

// CSVExporter renderiza listados de documentos a CSV.
type CSVExporter interface {
	TransfersCSV(docs []TransferDocument) ([]byte, error)
	PurchaseOrdersCSV(docs []PurchaseOrderDocument) ([]byte, error)
}
