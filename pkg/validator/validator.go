package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator instance.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Get().Struct(s)
}

// StructCtx validates s, handing ctx to validations registered with
// RegisterValidationCtx.
func StructCtx(ctx context.Context, s any) error {
	return Get().StructCtx(ctx, s)
}

// RegisterValidationCtx adds a custom tag whose check needs request-scoped
// values, such as the network an address must belong to.
func RegisterValidationCtx(tag string, fn validator.FuncCtx) error {
	return Get().RegisterValidationCtx(tag, fn)
}

// RegisterValidation adds a custom tag. It is safe to call more than once
// for the same tag; the last registration wins.
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().RegisterValidation(tag, fn)
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Namespace()
			tag := e.Tag()
			param := e.Param()

			switch tag {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s is required", field))
			case "min":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must have at least %s entries", field, param))
			case "eq":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be %s", field, param))
			case "oneof":
				errMsgs = append(errMsgs, fmt.Sprintf("%s must be one of [%s]", field, param))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s failed %s validation", field, tag))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	if err == nil {
		return ""
	}
	return "invalid request"
}
