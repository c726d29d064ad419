package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt entero que en JSON se acepta como número o como string numérico ("3").
// Arrays, objetos, booleanos o strings no numéricos son un error de forma.
type FlexInt int64

// UnmarshalJSON implementa json.Unmarshaler. null no modifica el valor.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("flexint: %w", err)
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("flexint: valor no entero %s", string(b))
	}
	*f = FlexInt(n)
	return nil
}

// Int64 devuelve el valor como int64.
func (f FlexInt) Int64() int64 { return int64(f) }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HealthResponse cuerpo de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
