package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnprocessable   = errors.New("unprocessable entity")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrUnknownCategory = errors.New("category does not exist")
)
