// Package stock implementa el camino de lectura sobre el libro de lotes:
// agregados por bodega y búsqueda/filtrado del catálogo. Sin efectos ni
// caché: cada consulta refleja la última mutación confirmada.
package stock

import (
	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/ledger"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// QueryUseCase consultas de stock y catálogo.
type QueryUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(products repository.ProductRepository, warehouses repository.WarehouseRepository) *QueryUseCase {
	return &QueryUseCase{products: products, warehouses: warehouses}
}

// StockByWarehouse devuelve el disponible del producto; warehouseID vacío
// agrega sobre todas las bodegas. Función pura sobre el libro actual.
func (uc *QueryUseCase) StockByWarehouse(productID, warehouseID string) (*dto.StockResponse, error) {
	if warehouseID != "" {
		w, err := uc.warehouses.GetByID(warehouseID)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, domain.ErrNotFound
		}
	}
	total, err := ledger.TotalAvailable(uc.products, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Available:   total,
	}, nil
}

// AvailableLots devuelve los lotes con disponibilidad del producto en la
// bodega, con el nombre de bodega resuelto para presentación.
func (uc *QueryUseCase) AvailableLots(productID, warehouseID string) ([]dto.LotResponse, error) {
	w, err := uc.warehouses.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	lots, err := ledger.FindAvailableLots(uc.products, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, toLotResponse(lot, w.Name))
	}
	return out, nil
}

// Search filtra el catálogo: coincidencia por subcadena (sin mayúsculas ni
// diacríticos) sobre código, nombre, categoría, números de lote y texto de
// vencimiento — OR entre campos — combinada con AND contra el filtro de
// bodega activo. Pagina por offset sobre el resultado filtrado.
func (uc *QueryUseCase) Search(term, warehouseID string, limit, offset int) (*dto.ProductListResponse, error) {
	all, err := uc.products.All()
	if err != nil {
		return nil, err
	}
	warehouseNames, err := uc.warehouseNames()
	if err != nil {
		return nil, err
	}

	needle := fold(term)
	matched := make([]*entity.Product, 0, len(all))
	for _, p := range all {
		if warehouseID != "" && !hasLotIn(p, warehouseID) {
			continue
		}
		if needle != "" && !matchesProduct(p, needle, warehouseID) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	from, to := pageBounds(total, limit, offset)
	items := make([]dto.ProductResponse, 0, to-from)
	for _, p := range matched[from:to] {
		items = append(items, toProductResponse(p, warehouseID, warehouseNames))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// matchesProduct evalúa el OR de campos. Con filtro de bodega activo, los
// lotes considerados se restringen a esa bodega.
func matchesProduct(p *entity.Product, needle, warehouseID string) bool {
	if containsFold(p.Code, needle) ||
		containsFold(p.Name, needle) ||
		containsFold(p.Category, needle) {
		return true
	}
	for i := range p.Lots {
		lot := &p.Lots[i]
		if warehouseID != "" && lot.WarehouseID != warehouseID {
			continue
		}
		if containsFold(lot.LotNumber, needle) ||
			containsFold(lot.ExpiryDate.Format("2006-01-02"), needle) {
			return true
		}
	}
	return false
}

func hasLotIn(p *entity.Product, warehouseID string) bool {
	for i := range p.Lots {
		if p.Lots[i].WarehouseID == warehouseID {
			return true
		}
	}
	return false
}

func (uc *QueryUseCase) warehouseNames() (map[string]string, error) {
	all, err := uc.warehouses.All()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, w := range all {
		names[w.ID] = w.Name
	}
	return names, nil
}

// toProductResponse arma la respuesta del producto con el stock derivado del
// libro, opcionalmente restringido a una bodega para presentación.
func toProductResponse(p *entity.Product, warehouseID string, warehouseNames map[string]string) dto.ProductResponse {
	lots := make([]dto.LotResponse, 0, len(p.Lots))
	for _, lot := range p.Lots {
		if warehouseID != "" && lot.WarehouseID != warehouseID {
			continue
		}
		lots = append(lots, toLotResponse(lot, warehouseNames[lot.WarehouseID]))
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		Active:      p.Active,
		StockTotal:  p.StockTotal(warehouseID),
		Lots:        lots,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toLotResponse(lot entity.Lot, warehouseName string) dto.LotResponse {
	return dto.LotResponse{
		ID:            lot.ID,
		LotNumber:     lot.LotNumber,
		Available:     lot.Available,
		ExpiryDate:    lot.ExpiryDate,
		WarehouseID:   lot.WarehouseID,
		WarehouseName: warehouseName,
	}
}

func pageBounds(total, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}
