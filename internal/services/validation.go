package services

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/go-playground/validator/v10"
)

func newValidator(now func() time.Time) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so the client can map errors onto form fields
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	oneOf := func(set []string) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return slices.Contains(set, fl.Field().String())
		}
	}
	_ = v.RegisterValidation("degree", oneOf(domain.Degrees))
	_ = v.RegisterValidation("branch", oneOf(domain.Branches))
	_ = v.RegisterValidation("employment", oneOf(domain.EmploymentTypes))
	_ = v.RegisterValidation("interest", oneOf(domain.Interests))
	_ = v.RegisterValidation("gradyear", func(fl validator.FieldLevel) bool {
		y := int(fl.Field().Int())
		return y >= domain.MinGraduationYear && y <= domain.MaxGraduationYear(now())
	})

	return v
}

// toValidationError flattens validator output into per-field messages.
// Anything else is returned unchanged.
func toValidationError(err error, now time.Time) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = fieldMessage(fe, now)
	}
	return &ValidationError{Fields: fields}
}

// fieldKey drops the struct name and any slice index: "interests[2]" -> "interests".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.Index(ns, "["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func fieldMessage(fe validator.FieldError, now time.Time) string {
	field := fieldKey(fe)
	switch fe.Tag() {
	case "required":
		switch field {
		case "full_name":
			return "Enter your name"
		case "has_consented_terms":
			return "You must agree to the Terms"
		case "has_consented_privacy":
			return "You must agree to the Privacy Policy"
		case "graduation_year":
			return "Select graduation year"
		case "degree":
			return "Select degree"
		case "branch":
			return "Select branch"
		case "employment_type":
			return "Select employment type"
		}
		return "This field is required"
	case "min":
		if field == "full_name" {
			return "Enter your name"
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gradyear":
		return fmt.Sprintf("Year must be between %d and %d", domain.MinGraduationYear, domain.MaxGraduationYear(now))
	case "degree":
		return "Select degree"
	case "branch":
		return "Select branch"
	case "employment":
		return "Select employment type"
	case "interest":
		return "Unknown interest"
	case "unique":
		return "Interests must not repeat"
	case "e164":
		return "Phone must be in international format, e.g. +919800000000"
	case "url":
		return "Avatar must be a valid URL"
	case "email":
		return "Enter a valid email"
	}
	return "Invalid value"
}
