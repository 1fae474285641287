package memory

import (
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria de repository.ProductRepository.
// Con inTx activo no toma el lock: TxRunner ya lo sostiene.
type ProductRepository struct {
	store *Store
	inTx  bool
}

// NewProductRepository construye el repositorio sobre el almacén compartido.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) lock() {
	if !r.inTx {
		r.store.mu.Lock()
	}
}

func (r *ProductRepository) unlock() {
	if !r.inTx {
		r.store.mu.Unlock()
	}
}

// Create registra un producto nuevo. Falla con ErrDuplicate si el ID o el
// código ya existen.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, p := range r.store.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	r.store.products[product.ID] = cloneProduct(product)
	r.store.productOrder = append(r.store.productOrder, product.ID)
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.lock()
	defer r.unlock()
	return cloneProduct(r.store.products[id]), nil
}

// GetByCode devuelve una copia del producto por código interno o (nil, nil).
func (r *ProductRepository) GetByCode(code string) (*entity.Product, error) {
	r.lock()
	defer r.unlock()
	for _, p := range r.store.products {
		if p.Code == code {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto completo (incluida su colección de lotes).
func (r *ProductRepository) Update(product *entity.Product) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.products[product.ID] = cloneProduct(product)
	return nil
}

// List devuelve productos en orden de creación con paginación por offset.
func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	r.lock()
	defer r.unlock()

	from, to := pageBounds(len(r.store.productOrder), limit, offset)
	out := make([]*entity.Product, 0, to-from)
	for _, id := range r.store.productOrder[from:to] {
		out = append(out, cloneProduct(r.store.products[id]))
	}
	return out, nil
}

// All devuelve todos los productos en orden de creación.
func (r *ProductRepository) All() ([]*entity.Product, error) {
	return r.List(0, 0)
}
