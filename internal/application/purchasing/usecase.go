// Package purchasing implementa las órdenes de compra. Son documentales: la
// entrada física de mercancía llega por remisiones, así que aquí nunca se
// toca el libro de lotes. El impuesto se liquida línea a línea a la tarifa
// del producto vigente al crear la orden.
package purchasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// UseCase casos de uso de órdenes de compra.
type UseCase struct {
	orders   repository.PurchaseOrderRepository
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.PurchaseOrderRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{orders: orders, products: products}
}

// Create valida y registra una orden en SENT con sus totales liquidados.
// UnitPrice en cero toma el precio vigente del producto.
func (uc *UseCase) Create(in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	vErr := domain.NewValidationError()
	seen := make(map[string]bool, len(in.Items))
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	subtotal, tax := decimal.Zero, decimal.Zero

	for i, it := range in.Items {
		field := fmt.Sprintf("items[%d]", i)

		if seen[it.ProductID] {
			vErr.Add(field, "línea duplicada para el producto %s", it.ProductID)
			continue
		}
		seen[it.ProductID] = true

		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			vErr.Add(field+".product_id", "producto no existe")
			continue
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			vErr.Add(field+".unit_price", "el precio unitario no puede ser negativo")
			continue
		}

		unitPrice := it.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		lineSubtotal := unitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lineTax := lineSubtotal.Mul(product.TaxRate).Round(2)

		items = append(items, entity.PurchaseOrderItem{
			ProductID:   it.ProductID,
			ProductName: product.Name, // snapshot al momento de crear
			Quantity:    it.Quantity,
			UnitPrice:   unitPrice,
			TaxRate:     product.TaxRate,
			Subtotal:    lineSubtotal,
			Tax:         lineTax,
			Total:       lineSubtotal.Add(lineTax),
		})
		subtotal = subtotal.Add(lineSubtotal)
		tax = tax.Add(lineTax)
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:        uuid.New().String(),
		Supplier:  in.Supplier,
		Items:     items,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
		Status:    entity.StatusSent,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// MarkReceived marca la orden como recibida (solo desde SENT).
func (uc *UseCase) MarkReceived(id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.StatusSent {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = entity.StatusReceived
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// Cancel anula la orden (solo desde SENT) con motivo obligatorio.
func (uc *UseCase) Cancel(id, reason string) (*dto.PurchaseOrderResponse, error) {
	if reason == "" {
		vErr := domain.NewValidationError()
		vErr.Add("reason", "el motivo de anulación es obligatorio")
		return nil, vErr
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.StatusSent {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = entity.StatusCancelled
	order.AppendCancellationReason(reason)
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return toResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *UseCase) GetByID(id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toResponse(o))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			Subtotal:    it.Subtotal,
			Tax:         it.Tax,
			Total:       it.Total,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:        o.ID,
		Code:      o.Code,
		Supplier:  o.Supplier,
		Items:     items,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		Status:    o.Status,
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
