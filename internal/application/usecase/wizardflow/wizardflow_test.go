package wizardflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

func TestDecodeEvent(t *testing.T) {
	c := wizard.NewBriefCatalog()

	tests := []struct {
		name string
		in   dto.EventInput
		want wizard.Event
	}{
		{
			name: "discriminator",
			in:   dto.EventInput{Type: "set-discriminator", Kind: "transactionType", Value: "rent"},
			want: wizard.SetDiscriminator{Kind: model.DiscriminatorTransactionType, Value: "rent"},
		},
		{
			name: "formatted amount",
			in:   dto.EventInput{Type: "set-field", Field: "price", Value: "1,500,000"},
			want: wizard.SetField{Field: field.Price, Value: field.Amount(1500000)},
		},
		{
			name: "yaml integer",
			in:   dto.EventInput{Type: "set-field", Field: "bedrooms", Value: 3},
			want: wizard.SetField{Field: field.Bedrooms, Value: field.Number(3)},
		},
		{
			name: "list",
			in:   dto.EventInput{Type: "set-field", Field: "documents", Value: []any{"C of O", "Survey plan"}},
			want: wizard.SetField{Field: field.Documents, Value: field.List("C of O", "Survey plan")},
		},
		{
			name: "clear",
			in:   dto.EventInput{Type: "set-field", Field: "price"},
			want: wizard.SetField{Field: field.Price, Value: field.Empty(field.KindAmount)},
		},
		{name: "next", in: dto.EventInput{Type: "Next"}, want: wizard.Next{}},
		{name: "previous", in: dto.EventInput{Type: "previous"}, want: wizard.Previous{}},
		{name: "jump", in: dto.EventInput{Type: "jump", Target: 1}, want: wizard.Jump{Target: 1}},
		{name: "reset", in: dto.EventInput{Type: "reset"}, want: wizard.Reset{}},
		{
			name: "seed applies rental type after transaction type",
			in: dto.EventInput{Type: "seed", MatchedBriefID: "b-1", Discriminators: map[string]string{
				"rentalType":      "lease",
				"transactionType": "rent",
			}},
			want: wizard.Seed{MatchedBriefID: "b-1", Discriminators: model.Discriminators{
				Flow: model.FlowBrief, TransactionType: model.TransactionRent, RentalType: model.RentalLease,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEvent(c, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	c := wizard.NewBriefCatalog()

	tests := []struct {
		name string
		in   dto.EventInput
		want error
	}{
		{"unknown type", dto.EventInput{Type: "submit"}, wizard.WizardError{Code: wizard.CodeUnknownEvent}},
		{"unknown discriminator", dto.EventInput{Type: "set-discriminator", Kind: "colour", Value: "red"}, wizard.WizardError{Code: wizard.CodeDiscriminator}},
		{"non-string discriminator", dto.EventInput{Type: "set-discriminator", Kind: "transactionType", Value: 3}, wizard.WizardError{Code: wizard.CodeDiscriminator}},
		{"unknown field", dto.EventInput{Type: "set-field", Field: "colour", Value: "red"}, wizard.ErrUnknownField},
		{"bad amount", dto.EventInput{Type: "set-field", Field: "price", Value: "lots"}, wizard.ErrInvalidValue},
		{"bad seed value", dto.EventInput{Type: "seed", Discriminators: map[string]string{"transactionType": "barter"}}, wizard.WizardError{Code: wizard.CodeDiscriminator}},
		{"bad seed kind", dto.EventInput{Type: "seed", Discriminators: map[string]string{"colour": "red"}}, wizard.WizardError{Code: wizard.CodeDiscriminator}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(c, tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSnapshot(t *testing.T) {
	sess := wizard.NewSession(wizard.NewBriefCatalog(), wizard.Seed{MatchedBriefID: "b-9"})
	require.NoError(t, sess.Apply(wizard.SetDiscriminator{Kind: model.DiscriminatorTransactionType, Value: "rent"}))
	require.NoError(t, sess.Apply(wizard.SetDiscriminator{Kind: model.DiscriminatorRentalType, Value: "lease"}))
	require.NoError(t, sess.Apply(wizard.SetField{Field: field.Price, Value: field.Amount(2500000)}))
	require.Error(t, sess.Apply(wizard.Next{}))

	snap := Snapshot("abc", sess)
	assert.Equal(t, "abc", snap.ID)
	assert.Equal(t, "brief", snap.Flow)
	assert.Equal(t, "b-9", snap.MatchedBriefID)
	assert.Equal(t, map[string]string{"transactionType": "rent", "rentalType": "lease"}, snap.Discriminators)
	assert.Contains(t, snap.DiscriminatorErrors, "propertyCategory")
	assert.Equal(t, 3, snap.StepCount)
	assert.False(t, snap.CanAdvance)
	assert.False(t, snap.CanGoBack)
	assert.False(t, snap.Ready)

	assert.Equal(t, 0, snap.Step.Index)
	var ids []string
	var price dto.FieldDTO
	for _, f := range snap.Step.Fields {
		ids = append(ids, f.ID)
		if f.ID == "price" {
			price = f
		}
	}
	assert.Contains(t, ids, "leaseHold")
	assert.NotContains(t, ids, "shortletDuration")
	assert.Equal(t, "2,500,000", price.Display)
	assert.Equal(t, "amount", price.Kind)

	var lease dto.FieldDTO
	for _, f := range snap.Step.Fields {
		if f.ID == "leaseHold" {
			lease = f
		}
	}
	assert.NotEmpty(t, lease.Error)
}
