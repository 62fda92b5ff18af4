package wizardflow

import (
	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

var discriminatorKinds = []model.DiscriminatorKind{
	model.DiscriminatorTransactionType,
	model.DiscriminatorPropertyCategory,
	model.DiscriminatorRentalType,
	model.DiscriminatorRole,
}

// Snapshot renders the session's current step for display. Everything is
// derived from one copy of the state.
func Snapshot(id string, sess *wizard.Session) dto.WizardDTO {
	c := sess.Catalog()
	st := sess.State()
	submitting := sess.Submitting()
	steps := c.Steps(st.Discriminators)

	out := dto.WizardDTO{
		ID:                  id,
		Flow:                string(st.Discriminators.Flow),
		Discriminators:      discriminatorMap(st.Discriminators),
		CurrentStep:         st.CurrentStep,
		FurthestVisitedStep: st.FurthestVisitedStep,
		StepCount:           len(steps),
		Ready:               st.Ready,
		Submitting:          submitting,
		CanGoBack:           !submitting && st.CurrentStep > 0,
		MatchedBriefID:      st.MatchedBriefID,
	}
	for _, kind := range discriminatorKinds {
		if msg := st.DiscriminatorError(kind); msg != "" {
			if out.DiscriminatorErrors == nil {
				out.DiscriminatorErrors = map[string]string{}
			}
			out.DiscriminatorErrors[string(kind)] = msg
		}
	}

	if st.CurrentStep < len(steps) {
		step := steps[st.CurrentStep]
		out.CanAdvance = !submitting && len(step.Validate(st.Values, st.Discriminators)) == 0
		out.Step = StepView(c, step, st)
	}
	return out
}

// StepView renders the visible fields of one step
func StepView(c *wizard.Catalog, step wizard.StepDescriptor, st wizard.State) dto.StepDTO {
	view := dto.StepDTO{
		Index:  step.Index,
		ID:     string(step.ID),
		Title:  step.Title,
		Fields: []dto.FieldDTO{},
	}
	for _, id := range step.VisibleFields(st.Values, st.Discriminators) {
		desc, _ := c.Descriptor(id)
		view.Fields = append(view.Fields, FieldView(desc, st))
	}
	return view
}

// FieldView renders one field with its value and inline error
func FieldView(desc field.Descriptor, st wizard.State) dto.FieldDTO {
	v := st.Values.Value(desc.ID)
	return dto.FieldDTO{
		ID:       string(desc.ID),
		Label:    desc.Label,
		Kind:     string(desc.Kind),
		Required: desc.Required,
		Options:  desc.Options,
		Value:    v,
		Display:  v.Display(),
		Error:    st.Errors[desc.ID],
	}
}

func discriminatorMap(d model.Discriminators) map[string]string {
	m := map[string]string{}
	if d.TransactionType != "" {
		m[string(model.DiscriminatorTransactionType)] = string(d.TransactionType)
	}
	if d.PropertyCategory != "" {
		m[string(model.DiscriminatorPropertyCategory)] = string(d.PropertyCategory)
	}
	if d.RentalType != "" {
		m[string(model.DiscriminatorRentalType)] = string(d.RentalType)
	}
	if d.Role != "" {
		m[string(model.DiscriminatorRole)] = string(d.Role)
	}
	return m
}
