package transfer

import (
	"context"

	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función como transacción sobre el almacén, pasando
// repositorios atados a esa transacción. Garantiza el contrato todo-o-nada de
// la confirmación de recepción: o mueven todas las líneas y el estado cambia,
// o no queda ningún efecto observable.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		transfers repository.TransferRepository,
	) error) error
}
