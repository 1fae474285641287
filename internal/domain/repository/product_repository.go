package repository

import "github.com/jdvalencia/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven copias desacopladas del almacén; todo cambio se
// confirma con Update. GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	All() ([]*entity.Product, error)
}
