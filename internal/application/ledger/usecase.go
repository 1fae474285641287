// Package ledger implementa las operaciones sobre el libro de lotes: la
// colección de lotes de cada producto es la fuente de verdad del stock.
// Las funciones de paquete reciben el repositorio como argumento para poder
// ejecutarse dentro de una transacción del caller (mismo patrón que los
// movimientos de inventario transaccionales).
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// UseCase expone las operaciones del libro de lotes sobre un repositorio fijo.
type UseCase struct {
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository) *UseCase {
	return &UseCase{products: products}
}

// FindAvailableLots devuelve los lotes del producto en la bodega con cantidad
// disponible > 0, en orden de llegada. No se aplica FEFO ni FIFO: el caller
// elige el lote explícitamente.
func (uc *UseCase) FindAvailableLots(productID, warehouseID string) ([]entity.Lot, error) {
	return FindAvailableLots(uc.products, productID, warehouseID)
}

// ReduceQuantity descuenta amount del lote (producto, número, bodega).
func (uc *UseCase) ReduceQuantity(productID, lotNumber, warehouseID string, amount int) error {
	return ReduceQuantity(uc.products, productID, lotNumber, warehouseID, amount)
}

// IncreaseOrCreateQuantity suma amount al lote o lo crea si no existe.
func (uc *UseCase) IncreaseOrCreateQuantity(productID, lotNumber, warehouseID string, amount int, expiry time.Time) error {
	return IncreaseOrCreateQuantity(uc.products, productID, lotNumber, warehouseID, amount, expiry)
}

// TotalAvailable suma la cantidad disponible del producto; warehouseID vacío
// suma sobre todas las bodegas.
func (uc *UseCase) TotalAvailable(productID, warehouseID string) (int, error) {
	return TotalAvailable(uc.products, productID, warehouseID)
}

// FindAvailableLots variante de paquete para ejecutar con los repos del caller.
func FindAvailableLots(products repository.ProductRepository, productID, warehouseID string) ([]entity.Lot, error) {
	product, err := products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := make([]entity.Lot, 0, len(product.Lots))
	for _, lot := range product.Lots {
		if lot.WarehouseID == warehouseID && lot.HasAvailable() {
			out = append(out, lot)
		}
	}
	return out, nil
}

// ReduceQuantity descuenta amount del lote (producto, número, bodega).
// Falla con ErrLotNotFound si el lote no existe y con ErrInsufficientStock si
// amount supera lo disponible; en ambos casos no muta nada.
func ReduceQuantity(products repository.ProductRepository, productID, lotNumber, warehouseID string, amount int) error {
	if amount <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	lot := product.FindLot(lotNumber, warehouseID)
	if lot == nil {
		return domain.ErrLotNotFound
	}
	if lot.Available < amount {
		return domain.ErrInsufficientStock
	}
	lot.Available -= amount
	lot.UpdatedAt = time.Now()
	product.UpdatedAt = lot.UpdatedAt
	return products.Update(product)
}

// IncreaseOrCreateQuantity suma amount al lote (producto, número, bodega) o
// crea el lote con esa cantidad y la fecha de vencimiento dada. Al mover un
// batch entre bodegas el lote destino conserva el vencimiento del origen:
// físicamente es el mismo batch.
func IncreaseOrCreateQuantity(products repository.ProductRepository, productID, lotNumber, warehouseID string, amount int, expiry time.Time) error {
	if amount <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	if lot := product.FindLot(lotNumber, warehouseID); lot != nil {
		lot.Available += amount
		lot.UpdatedAt = now
	} else {
		product.Lots = append(product.Lots, entity.Lot{
			ID:          uuid.New().String(),
			LotNumber:   lotNumber,
			Available:   amount,
			ExpiryDate:  expiry,
			WarehouseID: warehouseID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	product.UpdatedAt = now
	return products.Update(product)
}

// TotalAvailable suma la cantidad disponible del producto; warehouseID vacío
// suma sobre todas las bodegas. Lectura pura sobre el estado actual del libro.
func TotalAvailable(products repository.ProductRepository, productID, warehouseID string) (int, error) {
	product, err := products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return product.StockTotal(warehouseID), nil
}
