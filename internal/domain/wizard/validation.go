package wizard

import (
	"fmt"
	"strings"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/validator/common"
)

// validateStep runs the discriminator gates, the required-field pass, option
// checks and the step's cross-field checks. It never mutates its inputs.
func (c *Catalog) validateStep(step field.StepID, values Values, d model.Discriminators) map[field.ID]string {
	var issues []common.ValidationIssue

	for _, kind := range c.gates[step] {
		validateDiscriminator(kind, d, &issues)
	}

	visible := func(id field.ID) bool { return c.IsVisible(id, d, values) }

	for _, desc := range c.fields {
		if desc.Step != step || !visible(desc.ID) {
			continue
		}
		v := values.Value(desc.ID)
		if desc.Required {
			common.ValidateRequired(v.IsEmpty(), string(desc.ID), desc.Label, &issues)
		}
		if v.IsEmpty() || len(desc.Options) == 0 {
			continue
		}
		switch v.Kind() {
		case field.KindText:
			common.ValidateEnumValue(v.TextValue(), string(desc.ID), desc.Options, &issues)
		case field.KindList:
			for _, item := range v.ListValue() {
				common.ValidateEnumValue(item, string(desc.ID), desc.Options, &issues)
			}
		}
	}

	ctx := CheckContext{
		Discriminators: d,
		Values:         values,
		Regions:        c.regions,
		visible:        visible,
	}
	for _, check := range c.checks[step] {
		check(ctx, &issues)
	}

	raw := common.FieldErrors(issues)
	out := make(map[field.ID]string, len(raw))
	for k, msg := range raw {
		out[field.ID(k)] = msg
	}
	return out
}

func validateDiscriminator(kind model.DiscriminatorKind, d model.Discriminators, issues *[]common.ValidationIssue) {
	name := string(kind)
	switch kind {
	case model.DiscriminatorTransactionType:
		if d.TransactionType == "" {
			common.AddError(name, "Select a transaction type", issues)
		}
	case model.DiscriminatorPropertyCategory:
		switch {
		case d.PropertyCategory == "":
			common.AddError(name, "Select a property category", issues)
		case d.TransactionType != "" && !d.TransactionType.AcceptsCategory(d.PropertyCategory):
			common.AddError(name, fmt.Sprintf("%s is not available for %s", d.PropertyCategory, d.TransactionType.Label()), issues)
		}
	case model.DiscriminatorRentalType:
		if d.TransactionType == model.TransactionRent && d.RentalType == "" {
			common.AddError(name, "Select rent or lease", issues)
		}
	case model.DiscriminatorRole:
		if d.Role == "" {
			common.AddError(name, "Tell us whether you are the owner or an agent", issues)
		}
	}
}

func containsFold(items []string, s string) bool {
	_, ok := matchFold(items, s)
	return ok
}

// matchFold returns the item equal to s under case folding
func matchFold(items []string, s string) (string, bool) {
	for _, item := range items {
		if strings.EqualFold(item, s) {
			return item, true
		}
	}
	return "", false
}
