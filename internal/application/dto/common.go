package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse cuerpo de error HTTP. Todos los errores de la API usan esta forma.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse respuesta genérica de operaciones sin payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida un DTO con las reglas declaradas en sus tags `validate`.
func Validate(s any) error {
	return validate.Struct(s)
}
