package middleware

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nguyentranbao-ct/product-catalog/internal/models"
)

type Validator struct {
	validate *validator.Validate
}

// NewValidator reports fields by their json, query, param or header name and knows the
// `sortkey` rule.
func NewValidator() *Validator {
	validate := validator.New()

	commonTags := []string{
		"json",
		"param",
		"query",
		"header",
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range commonTags {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	_ = validate.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
		return models.SortKey(fl.Field().String()).Valid()
	})

	return &Validator{validate: validate}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
