package repository

import "github.com/jdvalencia/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Create y Update fallan con domain.ErrDuplicate si el nombre ya está en uso
// por otra bodega: la unicidad de nombre es un invariante del sistema.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	All() ([]*entity.Warehouse, error)
}
