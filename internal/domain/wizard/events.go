package wizard

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// Event is one user action fed to Apply
type Event interface {
	Name() string
}

// SetDiscriminator changes one top-level choice
type SetDiscriminator struct {
	Kind  model.DiscriminatorKind
	Value string
}

// SetField stores a typed value for a field
type SetField struct {
	Field field.ID
	Value field.Value
}

// Next validates the current step and advances
type Next struct{}

// Previous moves back one step without validation
type Previous struct{}

// Jump moves to an already visited step
type Jump struct {
	Target int
}

// Reset discards everything and returns to the initial empty form
type Reset struct{}

func (SetDiscriminator) Name() string { return "set-discriminator" }
func (SetField) Name() string         { return "set-field" }
func (Next) Name() string             { return "next" }
func (Previous) Name() string         { return "previous" }
func (Jump) Name() string             { return "jump" }
func (Reset) Name() string            { return "reset" }
func (Seed) Name() string             { return "seed" }
