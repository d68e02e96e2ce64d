package errors

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckVar validates a single value against a validator tag such as
// "gte=0,lte=255". The field name is used in the error message.
//
// Returns an ErrCodeValidation error naming the field, the offending value,
// and the violated rule.
func CheckVar(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return Validation("%s: %v is out of range (%s)", field, value, ruleOf(err, tag))
	}
	return nil
}

// CheckFloat is CheckVar for floats that must also be finite. NaN and
// ±Inf are rejected before tag is applied; an empty tag checks finiteness
// only.
func CheckFloat(field string, value float64, tag string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Validation("%s: %v is not a finite number", field, value)
	}
	if tag == "" {
		return nil
	}
	return CheckVar(field, value, tag)
}

// CheckStruct validates a struct using its `validate` tags.
// All field violations are joined into one ErrCodeValidation message.
func CheckStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Wrap(ErrCodeValidation, err, "validate %T", v)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %v fails %s", fe.Namespace(), fe.Value(), formatRule(fe)))
	}
	return Validation("%s", strings.Join(msgs, "; "))
}

func ruleOf(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return formatRule(fieldErrs[0])
	}
	return fallback
}

func formatRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
