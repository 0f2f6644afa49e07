package validator

import (
	"reflect"
	"strings"
	"time"

	"hospital-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// TimeLayout is the HH:MM format used for visiting hours.
const TimeLayout = "15:04"

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so form errors line up with inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(TimeLayout, fl.Field().String())
		return err == nil
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ValidateStruct validates i and converts any failure into an
// apperror.ValidationError keyed by field name.
func (cv *CustomValidator) ValidateStruct(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); !ok {
		return err
	}
	return apperror.NewValidationErrors(cv.FormatValidationErrors(err))
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := fieldKey(e)
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "email":
				errors[key] = field + " must be a valid email address"
			case "min":
				errors[key] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[key] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[key] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[key] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[key] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "hhmm":
				errors[key] = field + " must be a time in HH:MM format"
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldKey returns the namespaced field without the root struct name, so a
// nested failure reads "schedule[1].day" rather than just "day".
func fieldKey(e validator.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return e.Field()
}
