package repository

import "github.com/jdvalencia/almacen-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
// Create asigna el consecutivo legible (OC-0001, ...) si llega sin código.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	All() ([]*entity.PurchaseOrder, error)
}
