package wizard

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// Seed pre-populates a wizard entered from a matching flow
type Seed struct {
	MatchedBriefID string               `json:"matchedBriefId,omitempty" yaml:"matchedBriefId,omitempty"`
	Discriminators model.Discriminators `json:"discriminators" yaml:"discriminators"`
}

// State is the complete, explicit state of one wizard instance.
// Invariant: 0 <= CurrentStep <= FurthestVisitedStep <= stepCount-1.
type State struct {
	Discriminators      model.Discriminators `json:"discriminators"`
	Values              Values               `json:"values"`
	Touched             map[field.ID]bool    `json:"touched"`
	Errors              map[field.ID]string  `json:"errors"`
	CurrentStep         int                  `json:"currentStep"`
	FurthestVisitedStep int                  `json:"furthestVisitedStep"`
	Ready               bool                 `json:"ready"`
	MatchedBriefID      string               `json:"matchedBriefId,omitempty"`
}

// NewState creates the initial state for a catalog
func NewState(c *Catalog, seed Seed) State {
	d := seed.Discriminators
	d.Flow = c.Flow()
	return State{
		Discriminators: d.Normalize(),
		Values:         Values{},
		Touched:        map[field.ID]bool{},
		Errors:         map[field.ID]string{},
		MatchedBriefID: seed.MatchedBriefID,
	}
}

// Clone deep-copies the state so reducers never share maps
func (s State) Clone() State {
	out := s
	out.Values = s.Values.Clone()
	out.Touched = make(map[field.ID]bool, len(s.Touched))
	for k, v := range s.Touched {
		out.Touched[k] = v
	}
	out.Errors = make(map[field.ID]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	return out
}

// clearField resets a value to empty and drops its touched flag and error
func (s *State) clearField(id field.ID) {
	delete(s.Values, id)
	delete(s.Touched, id)
	delete(s.Errors, id)
}

// clampSteps keeps the step indices inside the active step set
func (s *State) clampSteps(stepCount int) {
	last := stepCount - 1
	if last < 0 {
		last = 0
	}
	if s.FurthestVisitedStep > last {
		s.FurthestVisitedStep = last
	}
	if s.CurrentStep > s.FurthestVisitedStep {
		s.CurrentStep = s.FurthestVisitedStep
	}
	if s.CurrentStep < 0 {
		s.CurrentStep = 0
	}
}
