package repository

import "github.com/jdvalencia/almacen-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para Transfer (DIP).
// Create asigna el consecutivo legible (TR-0001, TR-0002, ...) si el
// documento llega sin código.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	Update(transfer *entity.Transfer) error
	List(limit, offset int) ([]*entity.Transfer, error)
	All() ([]*entity.Transfer, error)
}
