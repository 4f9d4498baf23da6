package repositories

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"gantt-lab/domain"
	domainerrors "gantt-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so ValidationError.Field matches the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and converts the first failure into the
// domain ValidationError shape.
func validateStruct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domainerrors.NewValidationError(
			fmt.Sprintf("%s failed on constraint %s", fe.Field(), fe.Tag()),
			fe.Field(),
			constraintName(fe.Tag()),
		)
	}
	return err
}

func constraintName(tag string) string {
	switch tag {
	case "required":
		return "nonEmpty"
	case "min", "max", "len":
		return "length"
	case "hexcolor":
		return "hexFormat"
	default:
		return tag
	}
}

// validateNonEmpty rejects strings that are empty once trimmed; the required
// tag alone lets whitespace-only values through.
func validateNonEmpty(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewValidationError(
			fmt.Sprintf("%s cannot be empty", field), field, "nonEmpty")
	}
	return nil
}

func validateDateRange(start, end domain.Date) error {
	if start.IsZero() || end.IsZero() {
		return domainerrors.NewValidationError(
			"dates must be valid calendar dates", "date", "format")
	}
	if end.Before(start) {
		return domainerrors.NewValidationError(
			"end date must be greater than or equal to start date",
			"endDate", "dateRange")
	}
	return nil
}
