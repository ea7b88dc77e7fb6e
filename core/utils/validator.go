package utils

import (
	stderrors "errors"
	"fmt"
	"strings"

	"romantic-api/core/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into Echo.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if stderrors.As(err, &invalid) {
		fields := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return errors.NewAppError(errors.ErrInvalidInput,
			"validation failed: "+strings.Join(fields, ", "), err)
	}
	return errors.NewAppError(errors.ErrInvalidInput, "validation failed", err)
}
