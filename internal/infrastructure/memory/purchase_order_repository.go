package memory

import (
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// PurchaseOrderRepository implementación en memoria de repository.PurchaseOrderRepository.
// Las órdenes nunca participan en transacciones de inventario, así que no
// existe variante inTx.
type PurchaseOrderRepository struct {
	store *Store
}

// NewPurchaseOrderRepository construye el repositorio sobre el almacén compartido.
func NewPurchaseOrderRepository(store *Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store: store}
}

// Create registra una orden y le asigna consecutivo si llega sin código.
func (r *PurchaseOrderRepository) Create(order *entity.PurchaseOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	if order.Code == "" {
		order.Code = r.store.nextOrderCode()
	}
	r.store.orders[order.ID] = cloneOrder(order)
	r.store.orderOrder = append(r.store.orderOrder, order.ID)
	return nil
}

// GetByID devuelve una copia de la orden o (nil, nil) si no existe.
func (r *PurchaseOrderRepository) GetByID(id string) (*entity.PurchaseOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneOrder(r.store.orders[id]), nil
}

// Update reemplaza la orden completa.
func (r *PurchaseOrderRepository) Update(order *entity.PurchaseOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.orders[order.ID] = cloneOrder(order)
	return nil
}

// List devuelve órdenes en orden de creación con paginación por offset.
func (r *PurchaseOrderRepository) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from, to := pageBounds(len(r.store.orderOrder), limit, offset)
	out := make([]*entity.PurchaseOrder, 0, to-from)
	for _, id := range r.store.orderOrder[from:to] {
		out = append(out, cloneOrder(r.store.orders[id]))
	}
	return out, nil
}

// All devuelve todas las órdenes en orden de creación.
func (r *PurchaseOrderRepository) All() ([]*entity.PurchaseOrder, error) {
	return r.List(0, 0)
}
