package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an optional leading plus followed by 10-15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so messages match request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	// max counts runes; bcrypt limits passwords in bytes.
	_ = v.RegisterValidation("max_bytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	})
	_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		return ServiceType(fl.Field().String()).IsValid()
	})

	return v
}

// ValidPhone reports whether s is an optional plus followed by 10-15 digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateStruct checks the `validate` tags of s and converts failures
// into a *ValidationError with human-readable messages.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "required"
	case "email":
		return "invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max_bytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "phone":
		return "invalid phone number"
	case "service_type":
		return "unknown service type"
	case "latitude", "longitude":
		return "out of range"
	case "gte", "lte":
		return "out of range"
	}
	return "invalid value"
}
