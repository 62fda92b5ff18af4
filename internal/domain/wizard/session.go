package wizard

import (
	"sync"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
)

// Session owns one wizard state and exposes the read side used by renderers.
// While a submission is in flight the state is read-only.
type Session struct {
	mu         sync.Mutex
	catalog    *Catalog
	state      State
	submitting bool
}

// NewSession starts a wizard for the catalog
func NewSession(c *Catalog, seed Seed) *Session {
	return &Session{
		catalog: c,
		state:   NewState(c, seed),
	}
}

// Catalog returns the catalog driving the session
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns a copy of the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Apply feeds one event to the reducer. The state is replaced even when an
// error is returned, see Apply.
func (s *Session) Apply(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrReadOnly
	}
	next, err := Apply(s.catalog, s.state, e)
	s.state = next
	return err
}

// Steps resolves the active step set
func (s *Session) Steps() []StepDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Steps(s.state.Discriminators)
}

// StepCount returns the number of active steps
func (s *Session) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.StepCount(s.state.Discriminators)
}

// CurrentVisibleFields lists the visible fields of step, or nil for an
// index outside the active step set
func (s *Session) CurrentVisibleFields(step int) []field.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps := s.catalog.Steps(s.state.Discriminators)
	if step < 0 || step >= len(steps) {
		return nil
	}
	return steps[step].VisibleFields(s.state.Values, s.state.Discriminators)
}

// FieldError returns the inline error of a field
func (s *Session) FieldError(id field.ID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.state.Errors[id]
	return msg, ok
}

// CanAdvance reports whether Next would pass on the current step
func (s *Session) CanAdvance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	steps := s.catalog.Steps(s.state.Discriminators)
	if s.state.CurrentStep >= len(steps) {
		return false
	}
	return len(steps[s.state.CurrentStep].Validate(s.state.Values, s.state.Discriminators)) == 0
}

// CanGoBack reports whether Previous would move
func (s *Session) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.submitting && s.state.CurrentStep > 0
}

// CanJumpTo reports whether Jump(step) would be accepted
func (s *Session) CanJumpTo(step int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.submitting && canJump(s.state, step)
}

// FinalPayload assembles the payload. It is only available once Next has
// passed on the last step. Only visible values reach the builder.
func (s *Session) FinalPayload() (payload.Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalPayload()
}

func (s *Session) finalPayload() (payload.Payload, error) {
	if !s.state.Ready {
		return nil, ErrNotReady
	}
	if i, _ := s.catalog.firstInvalidStep(s.state.Values, s.state.Discriminators); i >= 0 {
		return nil, ErrNotReady
	}
	return payload.Build(s.state.Discriminators, VisibleValues(s.catalog, s.state))
}

// BeginSubmit marks the session read-only and returns the payload to send
// with a snapshot of the state it was built from
func (s *Session) BeginSubmit() (payload.Payload, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return nil, State{}, ErrReadOnly
	}
	p, err := s.finalPayload()
	if err != nil {
		return nil, State{}, err
	}
	s.submitting = true
	return p, s.state.Clone(), nil
}

// EndSubmit releases the read-only lock. A successful submission resets the
// wizard; a failed one keeps every value so the user can try again.
func (s *Session) EndSubmit(succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if succeeded {
		s.state = NewState(s.catalog, Seed{})
	}
}

// Submitting reports whether a submission is in flight
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// VisibleValues returns only the values of fields visible under the state's
// discriminators
func VisibleValues(c *Catalog, st State) Values {
	out := make(Values, len(st.Values))
	for id, v := range st.Values {
		if c.IsVisible(id, st.Discriminators, st.Values) {
			out[id] = v
		}
	}
	return out
}
