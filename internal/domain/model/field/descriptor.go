// Package field describes the individual inputs of the submission wizards and
// the raw values they hold.
package field

import "github.com/YoshitsuguKoike/propbrief/internal/domain/model"

// ID uniquely identifies a field within a catalog
type ID string

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// StepID names the step that owns a field
type StepID string

// String returns the string representation
func (s StepID) String() string {
	return string(s)
}

const (
	StepBasic        StepID = "basic"
	StepFeatures     StepID = "features"
	StepPricing      StepID = "pricing"
	StepHouseRules   StepID = "house-rules"
	StepContact      StepID = "contact"
	StepLocation     StepID = "location"
	StepRequirements StepID = "requirements"
)

// Descriptor is the static definition of one field
type Descriptor struct {
	ID       ID
	Label    string
	Kind     Kind
	Step     StepID
	Required bool
	Options  []string

	// ClearOnDiscriminatorChange resets the value when a discriminator change
	// hides the field.
	ClearOnDiscriminatorChange bool

	// ResetOn resets the value when any listed discriminator changes, even if
	// the field stays visible.
	ResetOn []model.DiscriminatorKind

	// DependsOn names the parent field; editing the parent clears this field.
	DependsOn ID
}

// ResetsOn reports whether a change of kind forces a reset
func (d Descriptor) ResetsOn(kind model.DiscriminatorKind) bool {
	for _, k := range d.ResetOn {
		if k == kind {
			return true
		}
	}
	return false
}

// HasOption reports whether s is one of the allowed options.
// Fields without options accept anything.
func (d Descriptor) HasOption(s string) bool {
	if len(d.Options) == 0 {
		return true
	}
	for _, o := range d.Options {
		if o == s {
			return true
		}
	}
	return false
}
