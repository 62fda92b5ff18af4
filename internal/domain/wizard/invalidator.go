package wizard

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// OnDiscriminatorChange moves the state to the next discriminators and clears
// every value that stopped being relevant. A field is cleared when
//   - it is marked ClearOnDiscriminatorChange and is hidden under next,
//   - one of the changed discriminators is listed in its ResetOn, or
//   - the field it depends on was cleared.
//
// Fields that stay visible and are not reset keep their value. The returned
// slice lists the cleared fields in declaration order.
func OnDiscriminatorChange(c *Catalog, old State, next model.Discriminators) (State, []field.ID) {
	next.Flow = c.Flow()
	next = next.Normalize()

	out := old.Clone()
	changed := old.Discriminators.Changed(next)
	if len(changed) == 0 {
		return out, nil
	}
	out.Discriminators = next

	cleared := map[field.ID]bool{}
	var order []field.ID
	for _, desc := range c.fields {
		if !mustClear(c, desc, old, next, changed) && !cleared[desc.DependsOn] {
			continue
		}
		cleared[desc.ID] = true
		if hasValue(old, desc.ID) {
			order = append(order, desc.ID)
		}
		out.clearField(desc.ID)
	}
	for _, kind := range changed {
		delete(out.Errors, field.ID(kind))
	}
	return out, order
}

func mustClear(c *Catalog, desc field.Descriptor, old State, next model.Discriminators, changed []model.DiscriminatorKind) bool {
	if desc.ClearOnDiscriminatorChange && !c.IsVisible(desc.ID, next, old.Values) {
		return true
	}
	for _, kind := range changed {
		if desc.ResetsOn(kind) {
			return true
		}
	}
	return false
}

func hasValue(s State, id field.ID) bool {
	return !s.Values.Value(id).IsEmpty() || s.Touched[id]
}

// clearDependents clears every field that transitively depends on parent
func clearDependents(c *Catalog, s *State, parent field.ID) {
	cleared := map[field.ID]bool{parent: true}
	for _, desc := range c.fields {
		if desc.DependsOn != "" && cleared[desc.DependsOn] {
			cleared[desc.ID] = true
			s.clearField(desc.ID)
		}
	}
}
