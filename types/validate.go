package types

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, not Go struct field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// Passwords need at least one uppercase letter, one lowercase letter and
	// one digit. validator has no lookahead syntax, so this is a custom rule.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var hasUpper, hasLower, hasDigit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		return hasUpper && hasLower && hasDigit
	})

	return v
}

// Validate checks a DTO against its tags and returns a field-grouped
// validation error, or nil when the payload is well-formed.
func Validate(payload any) *ApiError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewBadRequestError(err.Error())
	}

	var messages []string
	grouped := make(map[string][]string)
	var order []string
	for _, fe := range fieldErrors {
		msg := messageFor(fe)
		messages = append(messages, msg)
		if _, seen := grouped[fe.Field()]; !seen {
			order = append(order, fe.Field())
		}
		grouped[fe.Field()] = append(grouped[fe.Field()], msg)
	}

	fields := make([]ValidationError, 0, len(order))
	for _, field := range order {
		fields = append(fields, ValidationError{Field: field, Errors: grouped[field]})
	}

	return NewValidationError(messages, fields)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters long"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "len":
		return fe.Field() + " must be " + fe.Param() + " characters"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "uuid4":
		return fe.Field() + " must be a valid UUID"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "password":
		return fe.Field() + " must contain at least one uppercase letter, one lowercase letter, and one number"
	default:
		return fe.Field() + " is invalid"
	}
}
