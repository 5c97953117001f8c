package service

import (
	"errors"
	"fmt"

	"resto-board/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRequest runs struct-tag validation and converts failures into a
// domain error the handlers map to HTTP 400.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		field := errs[0]
		return model.NewDomainError(
			model.ErrCodeValidation,
			fmt.Sprintf("field %s failed validation on %s", field.Field(), field.Tag()),
		)
	}
	return model.NewDomainError(model.ErrCodeValidation, "request validation failed")
}
