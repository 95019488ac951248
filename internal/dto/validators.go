package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jvamontagens/assembly_backend/internal/utils/document"
)

// Custom binding rules for Brazilian identity documents, usable as
// `binding:"cpf"` and `binding:"cnpj"` tags on request structs.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		_, err := document.NormalizeCPF(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		_, err := document.NormalizeCNPJ(fl.Field().String())
		return err == nil
	})
}
