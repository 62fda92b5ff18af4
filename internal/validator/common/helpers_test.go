package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func messages(issues []ValidationIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantIssue bool
	}{
		{name: "empty is skipped", value: ""},
		{name: "plain address", value: "ada@example.com"},
		{name: "subdomain", value: "ada.obi@mail.example.ng"},
		{name: "missing at", value: "ada.example.com", wantIssue: true},
		{name: "no top level domain", value: "ada@localhost", wantIssue: true},
		{name: "display name form", value: "Ada <ada@example.com>", wantIssue: true},
		{name: "spaces", value: "ada obi@example.com", wantIssue: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issues []ValidationIssue
			ValidateEmail(tt.value, "email", &issues)
			if tt.wantIssue {
				assert.Equal(t, []string{"enter a valid email address"}, messages(issues))
				assert.Equal(t, "email", issues[0].Field)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "empty is skipped", value: ""},
		{name: "local number", value: "08012345678"},
		{name: "international", value: "+234 801 234 5678"},
		{name: "separators", value: "(0801) 234-5678"},
		{name: "too short", value: "12345", wantMsg: "phone number must have 10 to 15 digits"},
		{name: "too long", value: "1234567890123456", wantMsg: "phone number must have 10 to 15 digits"},
		{name: "letters", value: "0801CALLME", wantMsg: "phone number may only contain digits"},
		{name: "plus not leading", value: "0801+2345678", wantMsg: "phone number may only contain digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issues []ValidationIssue
			ValidatePhone(tt.value, "phoneNumber", &issues)
			if tt.wantMsg == "" {
				assert.Empty(t, issues)
				return
			}
			assert.Equal(t, []string{tt.wantMsg}, messages(issues))
		})
	}
}

func TestNumericChecks(t *testing.T) {
	var issues []ValidationIssue

	ValidatePositive(1, "price", "Price", &issues)
	ValidatePositive(0, "price", "Price", &issues)
	ValidatePositive(-3, "bedrooms", "Bedrooms", &issues)
	ValidateAtMost(50, 50, "maxGuests", "Maximum guests", &issues)
	ValidateAtMost(1e300, 50, "maxGuests", "Maximum guests", &issues)
	ValidateMaxPercent(100, "weeklyDiscount", &issues)
	ValidateMaxPercent(100.5, "weeklyDiscount", &issues)
	ValidateOrdered(3, 3, "maxStay", "too short", &issues)
	ValidateOrdered(5, 2, "maxStay", "Maximum stay cannot be shorter than minimum stay", &issues)

	assert.Equal(t, []string{
		"Price must be greater than zero",
		"Bedrooms must be greater than zero",
		"Maximum guests cannot be more than 50",
		"must be between 0 and 100",
		"Maximum stay cannot be shorter than minimum stay",
	}, messages(issues))
}

func TestValidateRequiredAndEnum(t *testing.T) {
	var issues []ValidationIssue

	ValidateRequired(false, "state", "State", &issues)
	ValidateRequired(true, "area", "Area", &issues)
	ValidateEnumValue("", "paymentMethod", []string{"card"}, &issues)
	ValidateEnumValue("cash", "paymentMethod", nil, &issues)
	ValidateEnumValue("card", "paymentMethod", []string{"card", "transfer"}, &issues)
	ValidateEnumValue("cheque", "paymentMethod", []string{"card", "transfer"}, &issues)

	assert.Equal(t, []string{
		"Area is required",
		"invalid value: cheque (must be one of: card|transfer)",
	}, messages(issues))
}

func TestParseDateAndClock(t *testing.T) {
	var issues []ValidationIssue

	d, ok := ParseDate("2026-12-01", "availableFrom", &issues)
	assert.True(t, ok)
	assert.Equal(t, 12, int(d.Month()))

	_, ok = ParseDate("", "availableFrom", &issues)
	assert.False(t, ok)
	_, ok = ParseDate("01/12/2026", "availableFrom", &issues)
	assert.False(t, ok)

	ValidateClock("14:00", "checkInTime", &issues)
	ValidateClock("", "checkInTime", &issues)
	ValidateClock("2pm", "checkOutTime", &issues)

	assert.Equal(t, []string{
		"use the YYYY-MM-DD date format",
		"use the HH:MM 24-hour time format",
	}, messages(issues))
}

func TestFieldErrorsKeepsFirstPerField(t *testing.T) {
	issues := []ValidationIssue{
		{Type: IssueError, Field: "price", Message: "Price is required"},
		{Type: IssueError, Field: "price", Message: "Price must be greater than zero"},
		{Type: "warn", Field: "area", Message: "unusual area"},
		{Type: IssueError, Message: "no field"},
		{Type: IssueError, Field: "email", Message: "enter a valid email address"},
	}

	assert.Equal(t, map[string]string{
		"price": "Price is required",
		"email": "enter a valid email address",
	}, FieldErrors(issues))
}
