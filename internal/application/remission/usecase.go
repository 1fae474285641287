// Package remission implementa las remisiones de entrada: la recepción de
// mercancía de un proveedor. Es el punto donde nacen los lotes del libro;
// comparte la máquina de estados de los traslados (SENT -> RECEIVED |
// CANCELLED) y la misma disciplina transaccional al confirmar.
package remission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/ledger"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// UseCase casos de uso del flujo de remisiones.
type UseCase struct {
	txRunner   TxRunner
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	remissions repository.RemissionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	remissions repository.RemissionRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		products:   products,
		warehouses: warehouses,
		remissions: remissions,
	}
}

// Create valida y registra una remisión en estado SENT sin tocar el libro;
// la entrada física ocurre al confirmar la recepción.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateRemissionRequest) (*dto.RemissionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	vErr := domain.NewValidationError()

	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		vErr.Add("warehouse_id", "bodega destino no existe")
	}

	seen := make(map[string]bool, len(in.Items))
	items := make([]entity.RemissionItem, 0, len(in.Items))
	for i, it := range in.Items {
		field := fmt.Sprintf("items[%d]", i)

		key := it.ProductID + "|" + it.LotNumber
		if seen[key] {
			vErr.Add(field, "línea duplicada para el producto %s lote %s", it.ProductID, it.LotNumber)
			continue
		}
		seen[key] = true

		product, err := uc.products.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			vErr.Add(field+".product_id", "producto no existe")
			continue
		}
		items = append(items, entity.RemissionItem{
			ProductID:   it.ProductID,
			ProductName: product.Name, // snapshot al momento de crear
			LotNumber:   it.LotNumber,
			Quantity:    it.Quantity,
			ExpiryDate:  it.ExpiryDate,
		})
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	now := time.Now()
	r := &entity.Remission{
		ID:          uuid.New().String(),
		Supplier:    in.Supplier,
		WarehouseID: in.WarehouseID,
		Items:       items,
		Status:      entity.StatusSent,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.remissions.Create(r); err != nil {
		return nil, err
	}
	return uc.toResponse(r), nil
}

// MarkReceived confirma la recepción: cada línea crea o alimenta el lote
// (producto, número, bodega destino) dentro de una transacción todo-o-nada.
func (uc *UseCase) MarkReceived(ctx context.Context, id string) (*dto.RemissionResponse, error) {
	var received *entity.Remission

	err := uc.txRunner.RunRemission(ctx, func(
		products repository.ProductRepository,
		remissions repository.RemissionRepository,
	) error {
		r, err := remissions.GetByID(id)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
		if r.Status != entity.StatusSent {
			return domain.ErrInvalidTransition
		}

		for _, item := range r.Items {
			if err := ledger.IncreaseOrCreateQuantity(products, item.ProductID, item.LotNumber, r.WarehouseID, item.Quantity, item.ExpiryDate); err != nil {
				return err
			}
		}

		r.Status = entity.StatusReceived
		r.UpdatedAt = time.Now()
		if err := remissions.Update(r); err != nil {
			return err
		}
		received = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(received), nil
}

// Cancel anula una remisión en SENT con motivo obligatorio; el libro no se toca.
func (uc *UseCase) Cancel(ctx context.Context, id, reason string) (*dto.RemissionResponse, error) {
	if reason == "" {
		vErr := domain.NewValidationError()
		vErr.Add("reason", "el motivo de anulación es obligatorio")
		return nil, vErr
	}

	r, err := uc.remissions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.Status != entity.StatusSent {
		return nil, domain.ErrInvalidTransition
	}

	r.Status = entity.StatusCancelled
	r.AppendCancellationReason(reason)
	r.UpdatedAt = time.Now()
	if err := uc.remissions.Update(r); err != nil {
		return nil, err
	}
	return uc.toResponse(r), nil
}

// GetByID obtiene una remisión por ID.
func (uc *UseCase) GetByID(id string) (*dto.RemissionResponse, error) {
	r, err := uc.remissions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return uc.toResponse(r), nil
}

// List lista remisiones con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.RemissionListResponse, error) {
	list, err := uc.remissions.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RemissionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *uc.toResponse(r))
	}
	return &dto.RemissionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UseCase) toResponse(r *entity.Remission) *dto.RemissionResponse {
	if r == nil {
		return nil
	}
	items := make([]dto.RemissionItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.RemissionItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			LotNumber:   it.LotNumber,
			Quantity:    it.Quantity,
			ExpiryDate:  it.ExpiryDate,
		})
	}
	out := &dto.RemissionResponse{
		ID:          r.ID,
		Code:        r.Code,
		Supplier:    r.Supplier,
		WarehouseID: r.WarehouseID,
		Items:       items,
		Status:      r.Status,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if w, err := uc.warehouses.GetByID(r.WarehouseID); err == nil && w != nil {
		out.WarehouseName = w.Name
	}
	return out
}
