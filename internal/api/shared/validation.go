package shared

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validationMessage renders a field error in the wording clients of this API
// expect, e.g. `length must be at least 6 characters long`. The field name is
// prepended by domain.ValidationError.
func validationMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min", "gte":
		if isString {
			return fmt.Sprintf("length must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("length must be less than or equal to %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("length must be less than or equal to %s bytes long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return "is invalid"
	}
}
