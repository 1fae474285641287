package memory

import (
	"context"

	"github.com/jdvalencia/almacen-api/internal/application/remission"
	"github.com/jdvalencia/almacen-api/internal/application/transfer"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ transfer.TxRunner = (*TxRunner)(nil)
var _ remission.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como una transacción sobre el almacén en
// memoria: toma el lock por toda la duración, fotografía el estado y lo
// restaura completo si la función falla. El caller observa todo-o-nada,
// igual que con una transacción de base de datos.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos de productos y traslados atados a la transacción.
func (r *TxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	transfers repository.TransferRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	products := &ProductRepository{store: r.store, inTx: true}
	transfers := &TransferRepository{store: r.store, inTx: true}

	if err := fn(products, transfers); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// RunRemission ejecuta fn con repos de productos y remisiones atados a la
// transacción (para la confirmación de recepción de mercancía).
func (r *TxRunner) RunRemission(_ context.Context, fn func(
	products repository.ProductRepository,
	remissions repository.RemissionRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	products := &ProductRepository{store: r.store, inTx: true}
	remissions := &RemissionRepository{store: r.store, inTx: true}

	if err := fn(products, remissions); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
