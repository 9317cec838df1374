package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error envelope for all handlers
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindingError renders validator failures as a readable message instead of
// the raw validator dump.
func bindingError(err error) ErrorResponse {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field())
		}
		return ErrorResponse{Error: "invalid fields: " + strings.Join(fields, ", ")}
	}
	return ErrorResponse{Error: "invalid request body"}
}
