package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrLotNotFound       = errors.New("lote no encontrado")
	ErrInvalidTransition = errors.New("transición de estado inválida")
)

// FieldError una falla de validación sobre un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las fallas de validación de una operación.
// Se reporta completo antes de cualquier mutación: si hay al menos un item,
// la operación no dejó efectos.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un error de validación vacío para ir acumulando.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add agrega una falla de campo.
func (e *ValidationError) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasErrors indica si se acumuló al menos una falla.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implementa error con el detalle de cada campo.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
