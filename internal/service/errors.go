package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all services. Handlers translate them to HTTP
// status codes; anything that does not match is a store failure and maps to
// a generic 500 (internal detail is logged, never sent to the caller).
var (
	ErrNotFound  = errors.New("recurso no encontrado")
	ErrForbidden = errors.New("sin permisos")
	ErrInvalid   = errors.New("datos invalidos")
)

// invalidf builds a business-rule violation that handlers map to 400.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...)
}
