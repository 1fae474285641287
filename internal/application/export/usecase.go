// Package export arma fotos de solo lectura de traslados y órdenes de compra
// y las entrega a los generadores de PDF y CSV. Camino de lectura puro:
// reemplazable sin afectar el núcleo.
package export

import (
	"context"

	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// UseCase casos de uso de exportación.
type UseCase struct {
	transfers  repository.TransferRepository
	orders     repository.PurchaseOrderRepository
	warehouses repository.WarehouseRepository
	pdf        PDFGenerator
	csv        CSVExporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	transfers repository.TransferRepository,
	orders repository.PurchaseOrderRepository,
	warehouses repository.WarehouseRepository,
	pdf PDFGenerator,
	csv CSVExporter,
) *UseCase {
	return &UseCase{
		transfers:  transfers,
		orders:     orders,
		warehouses: warehouses,
		pdf:        pdf,
		csv:        csv,
	}
}

// TransferPDF genera el PDF de un traslado.
func (uc *UseCase) TransferPDF(ctx context.Context, id string) ([]byte, error) {
	t, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	doc, err := uc.transferDocument(t)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateTransferPDF(ctx, doc)
}

// TransfersCSV genera el CSV con todos los traslados.
func (uc *UseCase) TransfersCSV() ([]byte, error) {
	list, err := uc.transfers.All()
	if err != nil {
		return nil, err
	}
	docs := make([]TransferDocument, 0, len(list))
	for _, t := range list {
		doc, err := uc.transferDocument(t)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return uc.csv.TransfersCSV(docs)
}

// PurchaseOrderPDF genera el PDF de una orden de compra.
func (uc *UseCase) PurchaseOrderPDF(ctx context.Context, id string) ([]byte, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GeneratePurchaseOrderPDF(ctx, orderDocument(o))
}

// PurchaseOrdersCSV genera el CSV con todas las órdenes de compra.
func (uc *UseCase) PurchaseOrdersCSV() ([]byte, error) {
	list, err := uc.orders.All()
	if err != nil {
		return nil, err
	}
	docs := make([]PurchaseOrderDocument, 0, len(list))
	for _, o := range list {
		docs = append(docs, *orderDocument(o))
	}
	return uc.csv.PurchaseOrdersCSV(docs)
}

func (uc *UseCase) transferDocument(t *entity.Transfer) (*TransferDocument, error) {
	doc := &TransferDocument{
		Code:        t.Code,
		CreatedAt:   t.CreatedAt,
		Responsible: t.Responsible,
		Status:      t.Status,
		Notes:       t.Notes,
	}
	if w, err := uc.warehouses.GetByID(t.OriginID); err != nil {
		return nil, err
	} else if w != nil {
		doc.OriginName = w.Name
	}
	if w, err := uc.warehouses.GetByID(t.DestinationID); err != nil {
		return nil, err
	} else if w != nil {
		doc.DestinationName = w.Name
	}
	doc.Items = make([]TransferDocumentItem, 0, len(t.Items))
	for _, it := range t.Items {
		doc.Items = append(doc.Items, TransferDocumentItem{
			ProductName: it.ProductName,
			LotNumber:   it.LotNumber,
			Quantity:    it.Quantity,
		})
	}
	return doc, nil
}

func orderDocument(o *entity.PurchaseOrder) *PurchaseOrderDocument {
	doc := &PurchaseOrderDocument{
		Code:      o.Code,
		CreatedAt: o.CreatedAt,
		Supplier:  o.Supplier,
		Status:    o.Status,
		Notes:     o.Notes,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
	}
	doc.Items = make([]PurchaseOrderDocumentItem, 0, len(o.Items))
	for _, it := range o.Items {
		doc.Items = append(doc.Items, PurchaseOrderDocumentItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			Subtotal:    it.Subtotal,
			Tax:         it.Tax,
			Total:       it.Total,
		})
	}
	return doc
}
