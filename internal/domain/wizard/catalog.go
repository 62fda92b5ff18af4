// Package wizard is the client-local decision engine behind the property brief
// and preference submission flows. It decides which fields are visible, clears
// values that stop being relevant, validates steps and gates navigation.
package wizard

import (
	"fmt"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/validator/common"
)

// Values holds the raw value of every field that has one
type Values map[field.ID]field.Value

// Value returns the stored value, or a kind-less empty value
func (v Values) Value(id field.ID) field.Value {
	return v[id]
}

// Clone copies the map
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Rule decides whether a field is relevant for the given discriminators.
// values carries the current form state for the rare rule that reads a
// sibling field.
type Rule func(d model.Discriminators, values Values) bool

// RegionLookup is the already-loaded gazetteer of states, LGAs and areas
type RegionLookup interface {
	States() []string
	LGAs(state string) []string
	Areas(state, lga string) []string
}

// Check is a cross-field validation attached to a step. It only runs after
// the required-field pass and only sees visible values.
type Check func(ctx CheckContext, issues *[]common.ValidationIssue)

// CheckContext is what a Check can read
type CheckContext struct {
	Discriminators model.Discriminators
	Values         Values
	Regions        RegionLookup
	visible        func(field.ID) bool
}

// Visible reports whether a field is visible in this context
func (c CheckContext) Visible(id field.ID) bool {
	return c.visible(id)
}

// Get returns a value only when the field is visible
func (c CheckContext) Get(id field.ID) field.Value {
	if !c.visible(id) {
		return field.Value{}
	}
	return c.Values.Value(id)
}

// StepDescriptor is one resolved step of the active step set
type StepDescriptor struct {
	Index  int
	ID     field.StepID
	Title  string
	Fields []field.ID

	catalog *Catalog
}

// Validate returns field-level errors for the step. Hidden fields are never required.
func (s StepDescriptor) Validate(values Values, d model.Discriminators) map[field.ID]string {
	return s.catalog.validateStep(s.ID, values, d)
}

// VisibleFields lists the step's fields that are currently relevant
func (s StepDescriptor) VisibleFields(values Values, d model.Discriminators) []field.ID {
	var out []field.ID
	for _, id := range s.Fields {
		if s.catalog.IsVisible(id, d, values) {
			out = append(out, id)
		}
	}
	return out
}

// Catalog is the static definition of one flow: its fields, rule table,
// step plan and validation checks
type Catalog struct {
	flow       model.Flow
	fields     []field.Descriptor
	index      map[field.ID]int
	rules      map[field.ID]Rule
	stepTitles map[field.StepID]string
	stepPlan   func(d model.Discriminators) []field.StepID
	gates      map[field.StepID][]model.DiscriminatorKind
	checks     map[field.StepID][]Check
	regions    RegionLookup
}

// Flow returns the flow this catalog drives
func (c *Catalog) Flow() model.Flow {
	return c.flow
}

// WithRegions returns a copy of the catalog that validates locations against lookup
func (c *Catalog) WithRegions(lookup RegionLookup) *Catalog {
	cp := *c
	cp.regions = lookup
	return &cp
}

// Descriptor returns the descriptor for id
func (c *Catalog) Descriptor(id field.ID) (field.Descriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return field.Descriptor{}, false
	}
	return c.fields[i], true
}

// Descriptors returns all descriptors in declaration order
func (c *Catalog) Descriptors() []field.Descriptor {
	out := make([]field.Descriptor, len(c.fields))
	copy(out, c.fields)
	return out
}

// IsVisible is total: unknown ids and ids without a rule are visible
func (c *Catalog) IsVisible(id field.ID, d model.Discriminators, values Values) bool {
	rule, ok := c.rules[id]
	if !ok {
		return true
	}
	return rule(d, values)
}

// Steps resolves the ordered step set for the discriminators
func (c *Catalog) Steps(d model.Discriminators) []StepDescriptor {
	plan := c.stepPlan(d)
	steps := make([]StepDescriptor, 0, len(plan))
	for i, id := range plan {
		steps = append(steps, StepDescriptor{
			Index:   i,
			ID:      id,
			Title:   c.stepTitles[id],
			Fields:  c.fieldsOf(id),
			catalog: c,
		})
	}
	return steps
}

// StepCount returns the number of steps for the discriminators
func (c *Catalog) StepCount(d model.Discriminators) int {
	return len(c.stepPlan(d))
}

// ParseInput converts raw input for a field into its typed value
func (c *Catalog) ParseInput(id field.ID, raw any) (field.Value, error) {
	desc, ok := c.Descriptor(id)
	if !ok {
		return field.Value{}, newError(CodeUnknownField, fmt.Sprintf("unknown field %q", id))
	}
	v, err := field.FromAny(desc.Kind, raw)
	if err != nil {
		return field.Value{}, newError(CodeInvalidValue, fmt.Sprintf("%s: %v", desc.Label, err))
	}
	return v, nil
}

// Verify checks the structural invariants of the catalog: every rule has a
// descriptor, every descriptor belongs to a step that some plan uses, and
// dependencies point at fields of the same catalog.
func (c *Catalog) Verify() error {
	for id := range c.rules {
		if _, ok := c.index[id]; !ok {
			return fmt.Errorf("rule for undeclared field %q", id)
		}
	}
	planned := map[field.StepID]bool{}
	for _, tx := range append([]model.TransactionType{""}, model.AllTransactionTypes...) {
		seen := map[field.StepID]bool{}
		for _, s := range c.stepPlan(model.Discriminators{Flow: c.flow, TransactionType: tx}) {
			if seen[s] {
				return fmt.Errorf("step %q appears twice for %q", s, tx)
			}
			seen[s] = true
			planned[s] = true
		}
	}
	for _, d := range c.fields {
		if !d.Kind.IsValid() {
			return fmt.Errorf("field %q has invalid kind %q", d.ID, d.Kind)
		}
		if !planned[d.Step] {
			return fmt.Errorf("field %q owned by unplanned step %q", d.ID, d.Step)
		}
		if d.DependsOn != "" {
			if _, ok := c.index[d.DependsOn]; !ok {
				return fmt.Errorf("field %q depends on undeclared field %q", d.ID, d.DependsOn)
			}
		}
	}
	return nil
}

func (c *Catalog) fieldsOf(step field.StepID) []field.ID {
	var ids []field.ID
	for _, d := range c.fields {
		if d.Step == step {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// firstInvalidStep validates the whole active plan and returns the index and
// errors of the first failing step, or -1 when every step passes
func (c *Catalog) firstInvalidStep(values Values, d model.Discriminators) (int, map[field.ID]string) {
	for i, step := range c.stepPlan(d) {
		if errs := c.validateStep(step, values, d); len(errs) > 0 {
			return i, errs
		}
	}
	return -1, nil
}

// stepIndexOf returns the index of the step that owns id in the active plan
func (c *Catalog) stepIndexOf(id field.ID, d model.Discriminators) int {
	desc, ok := c.Descriptor(id)
	if !ok {
		return -1
	}
	for i, s := range c.stepPlan(d) {
		if s == desc.Step {
			return i
		}
	}
	return -1
}

func newCatalog(flow model.Flow, fields []field.Descriptor, rules map[field.ID]Rule) *Catalog {
	index := make(map[field.ID]int, len(fields))
	for i, d := range fields {
		if _, dup := index[d.ID]; dup {
			panic(fmt.Sprintf("wizard: duplicate field %q in %s catalog", d.ID, flow))
		}
		index[d.ID] = i
	}
	return &Catalog{
		flow:       flow,
		fields:     fields,
		index:      index,
		rules:      rules,
		stepTitles: map[field.StepID]string{},
		gates:      map[field.StepID][]model.DiscriminatorKind{},
		checks:     map[field.StepID][]Check{},
	}
}

// ForFlow returns the catalog for a flow
func ForFlow(flow model.Flow) (*Catalog, error) {
	switch flow {
	case model.FlowBrief:
		return NewBriefCatalog(), nil
	case model.FlowPreference:
		return NewPreferenceCatalog(), nil
	default:
		return nil, fmt.Errorf("unknown flow: %q", flow)
	}
}

// Rule combinators

func always(model.Discriminators, Values) bool { return true }

func txIn(types ...model.TransactionType) Rule {
	return func(d model.Discriminators, _ Values) bool {
		for _, t := range types {
			if d.TransactionType == t {
				return true
			}
		}
		return false
	}
}

func categoryIn(categories ...model.PropertyCategory) Rule {
	return func(d model.Discriminators, _ Values) bool {
		for _, c := range categories {
			if d.PropertyCategory == c {
				return true
			}
		}
		return false
	}
}

func rentalIs(r model.RentalType) Rule {
	return func(d model.Discriminators, _ Values) bool {
		return d.RentalType == r
	}
}

func allOf(rules ...Rule) Rule {
	return func(d model.Discriminators, v Values) bool {
		for _, r := range rules {
			if !r(d, v) {
				return false
			}
		}
		return true
	}
}

func anyOf(rules ...Rule) Rule {
	return func(d model.Discriminators, v Values) bool {
		for _, r := range rules {
			if r(d, v) {
				return true
			}
		}
		return false
	}
}

func not(rule Rule) Rule {
	return func(d model.Discriminators, v Values) bool {
		return !rule(d, v)
	}
}
