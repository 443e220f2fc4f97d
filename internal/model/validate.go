package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// ValidationError reports a field value that failed its format rule.
// A setter that returns a ValidationError leaves the field unchanged.
type ValidationError struct {
	Field string
	Value string
	Want  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Field, e.Value, e.Want)
}

var (
	nonAlphaRe = regexp.MustCompile(`[^a-zA-Z]`)
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe     = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Vaccines is the fixed set of accepted vaccine names.
var Vaccines = []string{"pfizer", "moderna", "AstraZeneca"}

func validateNumber(field, value string, min *float64) error {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &ValidationError{Field: field, Value: value, Want: "a number"}
	}
	if min != nil && n < *min {
		return &ValidationError{Field: field, Value: value, Want: fmt.Sprintf("a number >= %v", *min)}
	}
	return nil
}

func validateName(field, value string) error {
	if nonAlphaRe.MatchString(value) {
		return &ValidationError{Field: field, Value: value, Want: "only letters"}
	}
	return nil
}

func validateVaccine(field, value string) error {
	for _, v := range Vaccines {
		if value == v {
			return nil
		}
	}
	return &ValidationError{Field: field, Value: value, Want: "one of pfizer, moderna, AstraZeneca"}
}

func validateDate(field, value string) error {
	if !dateRe.MatchString(value) {
		return &ValidationError{Field: field, Value: value, Want: "YYYY-MM-DD"}
	}
	return nil
}

func validateTime(field, value string) error {
	if !timeRe.MatchString(value) {
		return &ValidationError{Field: field, Value: value, Want: "HH:MM"}
	}
	return nil
}
