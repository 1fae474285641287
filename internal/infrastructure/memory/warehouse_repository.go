package memory

import (
	"strings"

	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// WarehouseRepository implementación en memoria de repository.WarehouseRepository.
// Hace cumplir la unicidad de nombre de bodega.
type WarehouseRepository struct {
	store *Store
}

// NewWarehouseRepository construye el repositorio sobre el almacén compartido.
func NewWarehouseRepository(store *Store) *WarehouseRepository {
	return &WarehouseRepository{store: store}
}

// Create registra una bodega. Falla con ErrDuplicate si el nombre ya existe.
func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.warehouses[warehouse.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.findByName(warehouse.Name) != nil {
		return domain.ErrDuplicate
	}
	r.store.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	r.store.warehouseOrder = append(r.store.warehouseOrder, warehouse.ID)
	return nil
}

// GetByID devuelve una copia de la bodega o (nil, nil) si no existe.
func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneWarehouse(r.store.warehouses[id]), nil
}

// GetByName devuelve una copia de la bodega por nombre (comparación sin
// distinguir mayúsculas) o (nil, nil).
func (r *WarehouseRepository) GetByName(name string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneWarehouse(r.findByName(name)), nil
}

// Update actualiza la bodega preservando la unicidad de nombre.
func (r *WarehouseRepository) Update(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.warehouses[warehouse.ID]; !ok {
		return domain.ErrNotFound
	}
	if existing := r.findByName(warehouse.Name); existing != nil && existing.ID != warehouse.ID {
		return domain.ErrDuplicate
	}
	r.store.warehouses[warehouse.ID] = cloneWarehouse(warehouse)
	return nil
}

// List devuelve bodegas en orden de creación con paginación por offset.
func (r *WarehouseRepository) List(limit, offset int) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from, to := pageBounds(len(r.store.warehouseOrder), limit, offset)
	out := make([]*entity.Warehouse, 0, to-from)
	for _, id := range r.store.warehouseOrder[from:to] {
		out = append(out, cloneWarehouse(r.store.warehouses[id]))
	}
	return out, nil
}

// All devuelve todas las bodegas en orden de creación.
func (r *WarehouseRepository) All() ([]*entity.Warehouse, error) {
	return r.List(0, 0)
}

// findByName requiere el lock.
func (r *WarehouseRepository) findByName(name string) *entity.Warehouse {
	for _, w := range r.store.warehouses {
		if strings.EqualFold(w.Name, name) {
			return w
		}
	}
	return nil
}
