package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/utils/document"
)

func TestNormalizeCPF(t *testing.T) {
	got, err := document.NormalizeCPF("123.456.789-09")
	assert.NoError(t, err)
	assert.Equal(t, "12345678909", got)

	_, err = document.NormalizeCPF("123.456.789")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = document.NormalizeCPF("   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNormalizeCNPJ(t *testing.T) {
	got, err := document.NormalizeCNPJ("12.345.678/0001-90")
	assert.NoError(t, err)
	assert.Equal(t, "12345678000190", got)

	_, err = document.NormalizeCNPJ("12345678")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
