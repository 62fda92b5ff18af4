package common

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the calendar date format accepted by date inputs
const DateLayout = "2006-01-02"

// AddError appends an error issue
func AddError(fieldName, message string, issues *[]ValidationIssue) {
	*issues = append(*issues, ValidationIssue{
		Type:    IssueError,
		Field:   fieldName,
		Message: message,
	})
}

// ValidateRequired reports a missing value for a required field
func ValidateRequired(empty bool, fieldName, label string, issues *[]ValidationIssue) {
	if empty {
		AddError(fieldName, fmt.Sprintf("%s is required", label), issues)
	}
}

// ValidateEmail validates an email address
func ValidateEmail(value, fieldName string, issues *[]ValidationIssue) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value[strings.LastIndex(value, "@")+1:], ".") {
		AddError(fieldName, "enter a valid email address", issues)
	}
}

// ValidatePhone accepts 10 to 15 digits with an optional leading plus and
// common separators
func ValidatePhone(value, fieldName string, issues *[]ValidationIssue) {
	if value == "" {
		return
	}
	digits := 0
	for i, r := range value {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			AddError(fieldName, "phone number may only contain digits", issues)
			return
		}
	}
	if digits < 10 || digits > 15 {
		AddError(fieldName, "phone number must have 10 to 15 digits", issues)
	}
}

// ValidateEnumValue validates that a string value is within allowed values
func ValidateEnumValue(value, fieldName string, allowed []string, issues *[]ValidationIssue) {
	if value == "" || len(allowed) == 0 {
		return
	}
	for _, a := range allowed {
		if a == value {
			return
		}
	}
	AddError(fieldName, fmt.Sprintf("invalid value: %s (must be one of: %s)", value, strings.Join(allowed, "|")), issues)
}

// ValidatePositive requires a strictly positive number
func ValidatePositive(value float64, fieldName, label string, issues *[]ValidationIssue) {
	if value <= 0 {
		AddError(fieldName, fmt.Sprintf("%s must be greater than zero", label), issues)
	}
}

// ValidateAtMost rejects a number above max
func ValidateAtMost(value, max float64, fieldName, label string, issues *[]ValidationIssue) {
	if value > max {
		AddError(fieldName, fmt.Sprintf("%s cannot be more than %g", label, max), issues)
	}
}

// ValidateMaxPercent bounds a percentage to 0..100
func ValidateMaxPercent(value float64, fieldName string, issues *[]ValidationIssue) {
	if value < 0 || value > 100 {
		AddError(fieldName, "must be between 0 and 100", issues)
	}
}

// ValidateOrdered requires upper >= lower; the issue is attached to the upper field
func ValidateOrdered(lower, upper float64, upperField, message string, issues *[]ValidationIssue) {
	if upper < lower {
		AddError(upperField, message, issues)
	}
}

// ParseDate parses a YYYY-MM-DD date, reporting an issue on failure
func ParseDate(value, fieldName string, issues *[]ValidationIssue) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		AddError(fieldName, "use the YYYY-MM-DD date format", issues)
		return time.Time{}, false
	}
	return t, true
}

// ValidateClock checks a HH:MM 24-hour time
func ValidateClock(value, fieldName string, issues *[]ValidationIssue) {
	if value == "" {
		return
	}
	if _, err := time.Parse("15:04", value); err != nil {
		AddError(fieldName, "use the HH:MM 24-hour time format", issues)
	}
}
