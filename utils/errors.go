package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// HandleValidationErrors converts a ReadJSON failure into an error envelope.
// For validator errors only the first one is surfaced; clients show a single
// message at a time.
func HandleValidationErrors(err error, ctx iris.Context) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		Error(ctx, validationMessage(validationErrs[0]))
		return
	}
	Error(ctx, err.Error())
}

func validationMessage(e validator.FieldError) string {
	field := lowerFirst(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s items", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long.", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at max %s characters long.", field, e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s digits", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s should be at least %s", field, e.Param())
	case "url":
		return field + " must be valid url"
	case "oneof":
		return field + " must be " + strings.Join(strings.Fields(e.Param()), " or ")
	case "eqfield":
		return "password do not match"
	}
	return field + " is invalid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
