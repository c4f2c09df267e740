// Package shipping resolves a postal code (CEP) into a delivery address
// and offers the simulated carrier options shown at checkout.
package shipping

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCEP means the input does not have 8 digits. Returned
	// before any lookup is attempted.
	ErrInvalidCEP = errors.New("CEP inválido: informe 8 dígitos")

	// ErrCEPNotFound means the lookup service does not know the code.
	ErrCEPNotFound = errors.New("CEP não encontrado")
)

// NormalizeCEP strips everything that is not a digit and validates the
// length. "01310-100" and "01310100" normalize to the same value.
func NormalizeCEP(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cep := b.String()
	if len(cep) != 8 {
		return "", ErrInvalidCEP
	}
	return cep, nil
}
