package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	govalidator "github.com/go-playground/validator/v10"
)

// New builds the shared validator instance with the project's custom rules
// registered. Registration failures are programmer errors, hence the panic.
func New() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("nowhitespace", validateNoWhitespace); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct runs struct-tag validation and flattens the result into a
// json-field -> message map; nil means the value passed.
func ValidateStruct(v *govalidator.Validate, obj any) map[string]string {
	err := v.Struct(obj)
	if err == nil {
		return nil
	}
	fieldErrs := make(map[string]string)
	for _, e := range err.(govalidator.ValidationErrors) {
		fieldErrs[jsonFieldName(obj, e.StructField())] = messageFor(e)
	}
	return fieldErrs
}

func validateNoWhitespace(fl govalidator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func jsonFieldName(obj any, structField string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	field, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}
	tag := strings.Split(field.Tag.Get("json"), ",")[0]
	if tag == "" || tag == "-" {
		return structField
	}
	return tag
}

func messageFor(e govalidator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "nowhitespace":
		return "must not contain whitespace"
	default:
		return "this field is invalid"
	}
}
