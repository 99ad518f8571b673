package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("call_type", validateCallType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports validation errors under the JSON name the caller sent.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateCallType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "onboarding" || value == "follow-up"
}
