package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo uniforme de error HTTP: {success:false, code, message}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse respuesta genérica de escritura.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// Numeric valor numérico que puede llegar como número JSON o como cadena ("2", "10.50").
// Un puntero nil significa que el campo no vino o vino null.
type Numeric string

// UnmarshalJSON acepta números y cadenas; rechaza objetos, arrays y booleanos.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", string(b))
	}
	*n = Numeric(num.String())
	return nil
}

// Empty indica ausencia de valor ("" tras recortar).
func (n *Numeric) Empty() bool { return n == nil || *n == "" }

// Int64 interpreta el valor como entero.
func (n Numeric) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Decimal interpreta el valor como decimal.
func (n Numeric) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(n))
}
