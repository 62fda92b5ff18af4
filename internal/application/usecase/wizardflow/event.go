// Package wizardflow translates between wizard sessions and their wire form
package wizardflow

import (
	"fmt"
	"strings"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// Event type names accepted on the wire
const (
	EventSetDiscriminator = "set-discriminator"
	EventSetField         = "set-field"
	EventNext             = "next"
	EventPrevious         = "previous"
	EventJump             = "jump"
	EventReset            = "reset"
	EventSeed             = "seed"
)

// seedOrder applies primary choices before the ones they constrain
var seedOrder = []model.DiscriminatorKind{
	model.DiscriminatorTransactionType,
	model.DiscriminatorPropertyCategory,
	model.DiscriminatorRentalType,
	model.DiscriminatorRole,
}

// DecodeEvent converts an EventInput into a wizard event. Field values are
// parsed against the catalog so the reducer only ever sees typed values.
func DecodeEvent(c *wizard.Catalog, in dto.EventInput) (wizard.Event, error) {
	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case EventSetDiscriminator:
		kind := model.DiscriminatorKind(in.Kind)
		if !kind.IsValid() {
			return nil, wizard.WizardError{Code: wizard.CodeDiscriminator, Message: fmt.Sprintf("unknown discriminator %q", in.Kind)}
		}
		value, err := scalar(in.Value)
		if err != nil {
			return nil, wizard.WizardError{Code: wizard.CodeDiscriminator, Message: err.Error()}
		}
		return wizard.SetDiscriminator{Kind: kind, Value: value}, nil

	case EventSetField:
		id := field.ID(in.Field)
		v, err := c.ParseInput(id, in.Value)
		if err != nil {
			return nil, err
		}
		return wizard.SetField{Field: id, Value: v}, nil

	case EventNext:
		return wizard.Next{}, nil
	case EventPrevious:
		return wizard.Previous{}, nil
	case EventJump:
		return wizard.Jump{Target: in.Target}, nil
	case EventReset:
		return wizard.Reset{}, nil

	case EventSeed:
		d := model.Discriminators{Flow: c.Flow()}
		for _, kind := range seedOrder {
			value, ok := in.Discriminators[string(kind)]
			if !ok {
				continue
			}
			next, err := d.With(kind, value)
			if err != nil {
				return nil, wizard.WizardError{Code: wizard.CodeDiscriminator, Message: err.Error()}
			}
			d = next
		}
		for k := range in.Discriminators {
			if !model.DiscriminatorKind(k).IsValid() {
				return nil, wizard.WizardError{Code: wizard.CodeDiscriminator, Message: fmt.Sprintf("unknown discriminator %q", k)}
			}
		}
		return wizard.Seed{MatchedBriefID: in.MatchedBriefID, Discriminators: d}, nil

	default:
		return nil, wizard.WizardError{Code: wizard.CodeUnknownEvent, Message: fmt.Sprintf("unknown event type %q", in.Type)}
	}
}

func scalar(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("discriminator value must be a string, got %T", raw)
	}
}
