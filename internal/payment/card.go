package payment

import (
	"errors"
	"strings"
	"unicode"
)

// CardDetails is what the checkout form submits for credit/debit.
// Validation is purely shape-based, nothing is checked with an issuer.
type CardDetails struct {
	Number       string `json:"number"`
	Name         string `json:"name"`
	Expiry       string `json:"expiry"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments"`
}

var (
	ErrInvalidCardNumber = errors.New("número do cartão inválido")
	ErrInvalidCardName   = errors.New("nome do titular inválido")
	ErrInvalidExpiry     = errors.New("validade inválida, use MM/AA")
	ErrInvalidCVV        = errors.New("CVV inválido")
)

func (c CardDetails) Validate() error {
	// 16 digits grouped in fours: "4111 1111 1111 1111"
	if len(FormatCardNumber(c.Number)) != 19 {
		return ErrInvalidCardNumber
	}
	if len(strings.TrimSpace(c.Name)) < 3 {
		return ErrInvalidCardName
	}
	if !validExpiry(c.Expiry) {
		return ErrInvalidExpiry
	}
	if len(digitsOnly(c.CVV)) < 3 {
		return ErrInvalidCVV
	}
	return nil
}

func validExpiry(expiry string) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}
	for i, r := range expiry {
		if i == 2 {
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	month := int(expiry[0]-'0')*10 + int(expiry[1]-'0')
	return month >= 1 && month <= 12
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the digits in blocks of four, capped at a
// 16-digit card ("1234 5678 9012 3456").
func FormatCardNumber(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash after the month ("1228" -> "12/28").
func FormatExpiry(value string) string {
	digits := digitsOnly(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// DetectBrand guesses the card brand from the first digit, the same
// heuristic the storefront shows while typing.
func DetectBrand(number string) string {
	digits := digitsOnly(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case strings.HasPrefix(digits, "5"):
		return "Mastercard"
	case strings.HasPrefix(digits, "3"):
		return "American Express"
	default:
		return "Cartão"
	}
}
