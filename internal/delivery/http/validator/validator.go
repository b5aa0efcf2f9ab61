// Package validator adapts go-playground/validator to echo.
package validator

import (
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the request validator with the custom "weekday" tag registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("weekday", isWeekday)

	return &CustomValidator{validator: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func isWeekday(fl validator.FieldLevel) bool {
	_, ok := entity.ParseWeekday(fl.Field().String())

	return ok
}
