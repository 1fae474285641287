package memory

import (
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.RemissionRepository = (*RemissionRepository)(nil)

// RemissionRepository implementación en memoria de repository.RemissionRepository.
// Con inTx activo no toma el lock: TxRunner ya lo sostiene.
type RemissionRepository struct {
	store *Store
	inTx  bool
}

// NewRemissionRepository construye el repositorio sobre el almacén compartido.
func NewRemissionRepository(store *Store) *RemissionRepository {
	return &RemissionRepository{store: store}
}

func (r *RemissionRepository) lock() {
	if !r.inTx {
		r.store.mu.Lock()
	}
}

func (r *RemissionRepository) unlock() {
	if !r.inTx {
		r.store.mu.Unlock()
	}
}

// Create registra una remisión y le asigna consecutivo si llega sin código.
func (r *RemissionRepository) Create(remission *entity.Remission) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.remissions[remission.ID]; ok {
		return domain.ErrDuplicate
	}
	if remission.Code == "" {
		remission.Code = r.store.nextRemissionCode()
	}
	r.store.remissions[remission.ID] = cloneRemission(remission)
	r.store.remissionOrder = append(r.store.remissionOrder, remission.ID)
	return nil
}

// GetByID devuelve una copia de la remisión o (nil, nil) si no existe.
func (r *RemissionRepository) GetByID(id string) (*entity.Remission, error) {
	r.lock()
	defer r.unlock()
	return cloneRemission(r.store.remissions[id]), nil
}

// Update reemplaza la remisión completa.
func (r *RemissionRepository) Update(remission *entity.Remission) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.remissions[remission.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.remissions[remission.ID] = cloneRemission(remission)
	return nil
}

// List devuelve remisiones en orden de creación con paginación por offset.
func (r *RemissionRepository) List(limit, offset int) ([]*entity.Remission, error) {
	r.lock()
	defer r.unlock()

	from, to := pageBounds(len(r.store.remissionOrder), limit, offset)
	out := make([]*entity.Remission, 0, to-from)
	for _, id := range r.store.remissionOrder[from:to] {
		out = append(out, cloneRemission(r.store.remissions[id]))
	}
	return out, nil
}

// All devuelve todas las remisiones en orden de creación.
func (r *RemissionRepository) All() ([]*entity.Remission, error) {
	return r.List(0, 0)
}
