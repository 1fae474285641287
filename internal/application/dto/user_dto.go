package dto

import "time"

// CreateUserRequest entrada para crear un usuario de catálogo.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin bodeguero vendedor"`
}

// UpdateUserRequest entrada para actualizar un usuario.
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=admin bodeguero vendedor"`
	Active *bool   `json:"active"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
