package utils

import (
	"Barcode-API/internal/utils/barcode"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return barcode.Valid(fl.Field().String())
	})
}
