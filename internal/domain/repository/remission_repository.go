package repository

import "github.com/jdvalencia/almacen-api/internal/domain/entity"

// RemissionRepository define el puerto de persistencia para Remission (DIP).
// Create asigna el consecutivo legible (RM-0001, ...) si llega sin código.
type RemissionRepository interface {
	Create(remission *entity.Remission) error
	GetByID(id string) (*entity.Remission, error)
	Update(remission *entity.Remission) error
	List(limit, offset int) ([]*entity.Remission, error)
	All() ([]*entity.Remission, error)
}
