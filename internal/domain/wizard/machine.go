package wizard

import (
	"fmt"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// Apply is the wizard reducer. It never mutates s. The returned state is the
// one to keep even when an error is returned: a rejected Next carries the
// field errors it attached, every other rejection returns s unchanged.
func Apply(c *Catalog, s State, e Event) (State, error) {
	switch ev := e.(type) {
	case SetDiscriminator:
		return applyDiscriminator(c, s, ev)
	case SetField:
		return applyField(c, s, ev)
	case Next:
		return applyNext(c, s)
	case Previous:
		out := s.Clone()
		if out.CurrentStep > 0 {
			out.CurrentStep--
			out.Ready = false
		}
		return out, nil
	case Jump:
		if !canJump(s, ev.Target) {
			return s, ErrJumpRejected
		}
		out := s.Clone()
		if out.CurrentStep != ev.Target {
			out.CurrentStep = ev.Target
			out.Ready = false
		}
		return out, nil
	case Reset:
		return NewState(c, Seed{}), nil
	case Seed:
		return NewState(c, ev), nil
	default:
		return s, newError(CodeUnknownEvent, fmt.Sprintf("unsupported event %T", e))
	}
}

func applyDiscriminator(c *Catalog, s State, ev SetDiscriminator) (State, error) {
	next, err := s.Discriminators.With(ev.Kind, ev.Value)
	if err != nil {
		return s, newError(CodeDiscriminator, err.Error())
	}
	if len(s.Discriminators.Changed(next)) == 0 {
		return s, nil
	}
	out, cleared := OnDiscriminatorChange(c, s, next)
	for _, id := range cleared {
		if i := c.stepIndexOf(id, out.Discriminators); i >= 0 && i < out.CurrentStep {
			out.CurrentStep = i
		}
	}
	out.FurthestVisitedStep = out.CurrentStep
	out.clampSteps(c.StepCount(out.Discriminators))
	out.Ready = false
	return out, nil
}

func applyField(c *Catalog, s State, ev SetField) (State, error) {
	desc, ok := c.Descriptor(ev.Field)
	if !ok {
		return s, newError(CodeUnknownField, fmt.Sprintf("unknown field %q", ev.Field))
	}
	if !c.IsVisible(desc.ID, s.Discriminators, s.Values) {
		return s, newError(CodeFieldHidden, fmt.Sprintf("%s is not available for this listing", desc.Label))
	}
	if !ev.Value.IsEmpty() && ev.Value.Kind() != desc.Kind {
		return s, newError(CodeInvalidValue, fmt.Sprintf("%s expects a %s value", desc.Label, desc.Kind))
	}

	out := s.Clone()
	prev := s.Values.Value(desc.ID)
	changed := !(prev.IsEmpty() && ev.Value.IsEmpty()) && !prev.Equal(ev.Value)

	if ev.Value.IsEmpty() {
		delete(out.Values, desc.ID)
	} else {
		out.Values[desc.ID] = ev.Value
	}
	out.Touched[desc.ID] = true
	if changed {
		clearDependents(c, &out, desc.ID)
		out.Ready = false
	}

	if _, had := out.Errors[desc.ID]; had {
		errs := c.validateStep(desc.Step, out.Values, out.Discriminators)
		if msg, bad := errs[desc.ID]; bad {
			out.Errors[desc.ID] = msg
		} else {
			delete(out.Errors, desc.ID)
		}
	}
	return out, nil
}

func applyNext(c *Catalog, s State) (State, error) {
	steps := c.Steps(s.Discriminators)
	if len(steps) == 0 {
		return s, ErrStepInvalid
	}
	out := s.Clone()
	out.clampSteps(len(steps))
	step := steps[out.CurrentStep]

	for _, id := range step.Fields {
		delete(out.Errors, id)
	}
	for _, kind := range c.gates[step.ID] {
		delete(out.Errors, field.ID(kind))
	}

	errs := step.Validate(out.Values, out.Discriminators)
	if len(errs) > 0 {
		for id, msg := range errs {
			out.Errors[id] = msg
		}
		out.Ready = false
		return out, WizardError{Code: CodeStepInvalid, Message: fmt.Sprintf("%s has invalid fields", step.Title), Fields: errs}
	}

	if out.CurrentStep == len(steps)-1 {
		// earlier steps may have been emptied by a jump back or a discriminator change
		if i, errs := c.firstInvalidStep(out.Values, out.Discriminators); i >= 0 {
			for id, msg := range errs {
				out.Errors[id] = msg
			}
			out.CurrentStep = i
			out.Ready = false
			return out, WizardError{Code: CodeStepInvalid, Message: fmt.Sprintf("%s has invalid fields", steps[i].Title), Fields: errs}
		}
		out.Ready = true
		return out, nil
	}
	out.CurrentStep++
	if out.CurrentStep > out.FurthestVisitedStep {
		out.FurthestVisitedStep = out.CurrentStep
	}
	return out, nil
}

func canJump(s State, target int) bool {
	return target >= 0 && target <= s.FurthestVisitedStep
}

// DiscriminatorError returns the error attached to a discriminator slot, if any
func (s State) DiscriminatorError(kind model.DiscriminatorKind) string {
	return s.Errors[field.ID(kind)]
}
