package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/churn-service/internal/domain"
	apperrors "github.com/spec-kit/churn-service/pkg/util"
)

// RecordValidator checks a customer record against the field bounds and enums.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator builds a validator reporting fields by their JSON names.
func NewRecordValidator() *RecordValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RecordValidator{validate: v}
}

// Validate returns a VALIDATION_FAILED DomainError with per-field details.
func (v *RecordValidator) Validate(record domain.CustomerRecord) error {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewInternalError(err)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = describe(fe)
	}
	return apperrors.NewValidationError("invalid customer record", details)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
