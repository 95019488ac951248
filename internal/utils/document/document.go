// Package document normalizes Brazilian identity documents (CPF, CNPJ) to
// their digits-only canonical form.
package document

import (
	"fmt"
	"strings"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
)

// NormalizeCPF strips formatting from a CPF and enforces its 11-digit length.
func NormalizeCPF(value string) (string, error) {
	return Normalize(value, 11, "CPF")
}

// NormalizeCNPJ strips formatting from a CNPJ and enforces its 14-digit length.
func NormalizeCNPJ(value string) (string, error) {
	return Normalize(value, 14, "CNPJ")
}

// Normalize removes every non-digit character from value and verifies the
// result has exactly expectedDigits digits. The field name is used in error
// messages only.
func Normalize(value string, expectedDigits int, field string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}

	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != expectedDigits {
		return "", fmt.Errorf("%w: %s must contain %d digits", apperrors.ErrValidation, field, expectedDigits)
	}
	return digits, nil
}
