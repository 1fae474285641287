package memory

import (
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepository)(nil)

// TransferRepository implementación en memoria de repository.TransferRepository.
// Con inTx activo no toma el lock: TxRunner ya lo sostiene.
type TransferRepository struct {
	store *Store
	inTx  bool
}

// NewTransferRepository construye el repositorio sobre el almacén compartido.
func NewTransferRepository(store *Store) *TransferRepository {
	return &TransferRepository{store: store}
}

func (r *TransferRepository) lock() {
	if !r.inTx {
		r.store.mu.Lock()
	}
}

func (r *TransferRepository) unlock() {
	if !r.inTx {
		r.store.mu.Unlock()
	}
}

// Create registra un traslado y le asigna consecutivo si llega sin código.
func (r *TransferRepository) Create(transfer *entity.Transfer) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.transfers[transfer.ID]; ok {
		return domain.ErrDuplicate
	}
	if transfer.Code == "" {
		transfer.Code = r.store.nextTransferCode()
	}
	r.store.transfers[transfer.ID] = cloneTransfer(transfer)
	r.store.transferOrder = append(r.store.transferOrder, transfer.ID)
	return nil
}

// GetByID devuelve una copia del traslado o (nil, nil) si no existe.
func (r *TransferRepository) GetByID(id string) (*entity.Transfer, error) {
	r.lock()
	defer r.unlock()
	return cloneTransfer(r.store.transfers[id]), nil
}

// Update reemplaza el traslado completo.
func (r *TransferRepository) Update(transfer *entity.Transfer) error {
	r.lock()
	defer r.unlock()

	if _, ok := r.store.transfers[transfer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.transfers[transfer.ID] = cloneTransfer(transfer)
	return nil
}

// List devuelve traslados en orden de creación con paginación por offset.
func (r *TransferRepository) List(limit, offset int) ([]*entity.Transfer, error) {
	r.lock()
	defer r.unlock()

	from, to := pageBounds(len(r.store.transferOrder), limit, offset)
	out := make([]*entity.Transfer, 0, to-from)
	for _, id := range r.store.transferOrder[from:to] {
		out = append(out, cloneTransfer(r.store.transfers[id]))
	}
	return out, nil
}

// All devuelve todos los traslados en orden de creación.
func (r *TransferRepository) All() ([]*entity.Transfer, error) {
	return r.List(0, 0)
}
