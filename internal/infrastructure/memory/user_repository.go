package memory

import (
	"strings"

	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio sobre el almacén compartido.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create registra un usuario. Falla con ErrDuplicate si el email ya existe.
func (r *UserRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.findByEmail(user.Email) != nil {
		return domain.ErrDuplicate
	}
	r.store.users[user.ID] = cloneUser(user)
	r.store.userOrder = append(r.store.userOrder, user.ID)
	return nil
}

// GetByID devuelve una copia del usuario o (nil, nil) si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneUser(r.store.users[id]), nil
}

// GetByEmail devuelve una copia del usuario por email o (nil, nil).
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneUser(r.findByEmail(email)), nil
}

// Update reemplaza el usuario preservando la unicidad de email.
func (r *UserRepository) Update(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	if existing := r.findByEmail(user.Email); existing != nil && existing.ID != user.ID {
		return domain.ErrDuplicate
	}
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

// List devuelve usuarios en orden de creación con paginación por offset.
func (r *UserRepository) List(limit, offset int) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from, to := pageBounds(len(r.store.userOrder), limit, offset)
	out := make([]*entity.User, 0, to-from)
	for _, id := range r.store.userOrder[from:to] {
		out = append(out, cloneUser(r.store.users[id]))
	}
	return out, nil
}

// findByEmail requiere el lock.
func (r *UserRepository) findByEmail(email string) *entity.User {
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}
