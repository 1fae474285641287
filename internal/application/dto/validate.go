package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jdvalencia/almacen-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las etiquetas `validate` del DTO y traduce cada falla a un
// domain.ValidationError itemizado por campo. La validación de negocio
// (existencia, stock, estados) ocurre después en los casos de uso; esto cubre
// la forma del request en la frontera de confianza.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := domain.NewValidationError()
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			out.Add(field, "no cumple la regla %s=%s", fe.Tag(), fe.Param())
			continue
		}
		out.Add(field, "no cumple la regla %s", fe.Tag())
	}
	return out
}
