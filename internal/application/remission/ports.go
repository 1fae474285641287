package remission

import (
	"context"

	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función como transacción sobre el almacén, pasando
// repositorios atados a esa transacción. La recepción de una remisión
// alimenta varios lotes a la vez y debe ser todo-o-nada.
type TxRunner interface {
	RunRemission(ctx context.Context, fn func(
		products repository.ProductRepository,
		remissions repository.RemissionRepository,
	) error) error
}
