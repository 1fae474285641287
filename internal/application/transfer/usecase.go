// Package transfer implementa el motor de traslados entre bodegas: el único
// camino por el que el libro de lotes muta desde otro componente. La máquina
// de estados es SENT -> RECEIVED o SENT -> CANCELLED; el stock físico solo se
// mueve al confirmar la recepción.
package transfer

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

// UseCase casos de uso del flujo de traslados.
type UseCase struct {
	txRunner   TxRunner
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	transfers  repository.TransferRepository
	users      repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	transfers repository.TransferRepository,
	users repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		products:   products,
		warehouses: warehouses,
		transfers:  transfers,
		users:      users,
	}
}

// Create valida y registra un traslado en estado SENT, sin tocar el libro de
// lotes. Toda falla se reporta itemizada en un ValidationError y en ese caso
// no se persiste ningún documento, ni parcial. La disponibilidad se re-valida
// aquí contra el libro actual, no solo en la captura de la UI: es la frontera
// de confianza.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	vErr := domain.NewValidationError()

	if in.OriginID == in.DestinationID {
		vErr.Add("destination_id", "la bodega destino debe ser distinta de la origen")
	}

	origin, err := uc.warehouses.GetByID(in.OriginID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		vErr.Add("origin_id", "bodega origen no existe")
	}
	destination, err := uc.warehouses.GetByID(in.DestinationID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		vErr.Add("destination_id", "bodega destino no existe")
	}

	responsible, err := uc.users.GetByID(in.ResponsibleID)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		vErr.Add("responsible_id", "usuario responsable no existe")
	}

	// Líneas: sin duplicados (producto, lote) y con disponibilidad suficiente
	// en la bodega origen al momento de crear.
	seen := make(map[string]bool, len(in.Items))
	items := make([]entity.TransferItem, 0, len(in.Items))
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
		if origin != nil {
			lot := product.FindLot(it.LotNumber, in.OriginID)
			if lot == nil || !lot.HasAvailable() {
				vErr.Add(field+".lot_number", "lote %s sin disponibilidad en la bodega origen", it.LotNumber)
				continue
			}
			if it.Quantity > lot.Available {
				vErr.Add(field+".quantity", "cantidad %d supera el disponible %d del lote %s", it.Quantity, lot.Available, it.LotNumber)
				continue
			}
		}
		items = append(items, entity.TransferItem{
			ProductID:   it.ProductID,
			ProductName: product.Name, // snapshot al momento de crear
			LotNumber:   it.LotNumber,
			Quantity:    it.Quantity,
		})
	}

	if vErr.HasErrors() {
		return nil, vErr
	}

	now := time.Now()
	t := &entity.Transfer{
		ID:            uuid.New().String(),
		OriginID:      in.OriginID,
		DestinationID: in.DestinationID,
		Items:         items,
		ResponsibleID: responsible.ID,
		Responsible:   responsible.Name,
		Status:        entity.StatusSent,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.transfers.Create(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t), nil
}

// MarkReceived confirma la recepción del traslado: por cada línea descuenta
// el lote origen y suma (o crea) el lote destino con el mismo número y el
// vencimiento del origen, todo dentro de una transacción. Si cualquier línea
// falla, nada cambia y el traslado sigue en SENT.
func (uc *UseCase) MarkReceived(ctx context.Context, id string) (*dto.TransferResponse, error) {
	var received *entity.Transfer

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transfers repository.TransferRepository,
	) error {
		t, err := transfers.GetByID(id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status != entity.StatusSent {
			return domain.ErrInvalidTransition
		}

		for _, item := range t.Items {
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			originLot := product.FindLot(item.LotNumber, t.OriginID)
			if originLot == nil {
				return domain.ErrLotNotFound
			}
			expiry := originLot.ExpiryDate // el destino conserva el vencimiento: es el mismo batch

			if err := ledger.ReduceQuantity(products, item.ProductID, item.LotNumber, t.OriginID, item.Quantity); err != nil {
				return err
			}
			if err := ledger.IncreaseOrCreateQuantity(products, item.ProductID, item.LotNumber, t.DestinationID, item.Quantity, expiry); err != nil {
				return err
			}
		}

		t.Status = entity.StatusReceived
		t.UpdatedAt = time.Now()
		if err := transfers.Update(t); err != nil {
			return err
		}
		received = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(received), nil
}

// Cancel anula un traslado en SENT con un motivo obligatorio que se agrega a
// las notas. El stock nunca se movió, así que el libro no se toca.
func (uc *UseCase) Cancel(ctx context.Context, id, reason string) (*dto.TransferResponse, error) {
	if reason == "" {
		vErr := domain.NewValidationError()
		vErr.Add("reason", "el motivo de anulación es obligatorio")
		return nil, vErr
	}

	t, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.Status != entity.StatusSent {
		return nil, domain.ErrInvalidTransition
	}

	t.Status = entity.StatusCancelled
	t.AppendCancellationReason(reason)
	t.UpdatedAt = time.Now()
	if err := uc.transfers.Update(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t), nil
}

// GetByID obtiene un traslado por ID.
func (uc *UseCase) GetByID(id string) (*dto.TransferResponse, error) {
	t, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return uc.toResponse(t), nil
}

// List lista traslados con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transfers.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *uc.toResponse(t))
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// toResponse arma la respuesta resolviendo nombres de bodega solo para
// presentación; las referencias del documento son por ID.
func (uc *UseCase) toResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	items := make([]dto.TransferItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransferItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			LotNumber:   it.LotNumber,
			Quantity:    it.Quantity,
		})
	}
	out := &dto.TransferResponse{
		ID:            t.ID,
		Code:          t.Code,
		OriginID:      t.OriginID,
		DestinationID: t.DestinationID,
		Items:         items,
		ResponsibleID: t.ResponsibleID,
		Responsible:   t.Responsible,
		Status:        t.Status,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if w, err := uc.warehouses.GetByID(t.OriginID); err == nil && w != nil {
		out.OriginName = w.Name
	}
	if w, err := uc.warehouses.GetByID(t.DestinationID); err == nil && w != nil {
		out.DestinationName = w.Name
	}
	return out
}
