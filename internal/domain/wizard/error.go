package wizard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// Error codes
const (
	CodeStepInvalid   = "WIZARD_STEP_INVALID"
	CodeJumpRejected  = "WIZARD_JUMP_REJECTED"
	CodeReadOnly      = "WIZARD_READ_ONLY"
	CodeNotReady      = "WIZARD_NOT_READY"
	CodeUnknownField  = "WIZARD_UNKNOWN_FIELD"
	CodeFieldHidden   = "WIZARD_FIELD_HIDDEN"
	CodeInvalidValue  = "WIZARD_INVALID_VALUE"
	CodeUnknownEvent  = "WIZARD_UNKNOWN_EVENT"
	CodeDiscriminator = "WIZARD_INVALID_DISCRIMINATOR"
)

// WizardError represents domain-specific errors of the wizard engine.
// None of them are fatal: every one leaves the state usable.
type WizardError struct {
	Code    string
	Message string
	Fields  map[field.ID]string
}

// Error implements the error interface
func (e WizardError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	ids := make([]string, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, strings.Join(ids, ", "))
}

// Is matches on the error code so callers can use errors.Is with the
// sentinel values below
func (e WizardError) Is(target error) bool {
	t, ok := target.(WizardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Common wizard errors
var (
	// ErrStepInvalid indicates Next was rejected by the step validator
	ErrStepInvalid = WizardError{Code: CodeStepInvalid, Message: "Step has invalid fields"}

	// ErrJumpRejected indicates a jump beyond the furthest visited step
	ErrJumpRejected = WizardError{Code: CodeJumpRejected, Message: "Step has not been reached yet"}

	// ErrReadOnly indicates an edit while a submission is in flight
	ErrReadOnly = WizardError{Code: CodeReadOnly, Message: "Submission in progress"}

	// ErrNotReady indicates the final payload was requested before the last step passed validation
	ErrNotReady = WizardError{Code: CodeNotReady, Message: "Wizard is not complete"}

	// ErrUnknownField indicates an event named a field outside the catalog
	ErrUnknownField = WizardError{Code: CodeUnknownField, Message: "Unknown field"}

	// ErrFieldHidden indicates an edit to a field that is not currently visible
	ErrFieldHidden = WizardError{Code: CodeFieldHidden, Message: "Field is not visible"}

	// ErrInvalidValue indicates input that cannot be stored in the field
	ErrInvalidValue = WizardError{Code: CodeInvalidValue, Message: "Invalid value"}
)

func newError(code, message string) WizardError {
	return WizardError{Code: code, Message: message}
}
