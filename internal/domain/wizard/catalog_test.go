package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

func brief(tx model.TransactionType, cat model.PropertyCategory) model.Discriminators {
	return model.Discriminators{Flow: model.FlowBrief, TransactionType: tx, PropertyCategory: cat}
}

func TestCatalogsVerify(t *testing.T) {
	for _, flow := range []model.Flow{model.FlowBrief, model.FlowPreference} {
		c, err := ForFlow(flow)
		require.NoError(t, err)
		assert.NoError(t, c.Verify(), flow)
	}

	_, err := ForFlow("auction")
	assert.Error(t, err)
}

func TestStepFieldsPartition(t *testing.T) {
	for _, c := range []*Catalog{NewBriefCatalog(), NewPreferenceCatalog()} {
		for _, tx := range model.AllTransactionTypes {
			owner := map[field.ID]int{}
			for _, step := range c.Steps(model.Discriminators{Flow: c.Flow(), TransactionType: tx}) {
				for _, id := range step.Fields {
					prev, dup := owner[id]
					assert.False(t, dup, "%s owned by steps %d and %d", id, prev, step.Index)
					owner[id] = step.Index
				}
			}
		}
	}
}

func TestBriefStepCounts(t *testing.T) {
	c := NewBriefCatalog()
	tests := []struct {
		tx   model.TransactionType
		want int
	}{
		{model.TransactionSale, 3},
		{model.TransactionRent, 3},
		{model.TransactionJointVenture, 3},
		{model.TransactionShortlet, 5},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.tx), func(t *testing.T) {
			steps := c.Steps(brief(tt.tx, ""))
			require.Len(t, steps, tt.want)
			for i, s := range steps {
				assert.Equal(t, i, s.Index)
				assert.NotEmpty(t, s.Title)
			}
			assert.Equal(t, tt.want, c.StepCount(brief(tt.tx, "")))
		})
	}
}

func TestBriefVisibility(t *testing.T) {
	c := NewBriefCatalog()
	tests := []struct {
		name    string
		d       model.Discriminators
		visible []field.ID
		hidden  []field.ID
	}{
		{
			name:    "sale land",
			d:       brief(model.TransactionSale, model.CategoryLand),
			visible: []field.ID{field.LandSize, field.MeasurementType, field.Documents, field.Price},
			hidden:  []field.ID{field.PropertyCondition, field.TypeOfBuilding, field.Bedrooms, field.LeaseHold, field.Features},
		},
		{
			name:    "sale residential",
			d:       brief(model.TransactionSale, model.CategoryResidential),
			visible: []field.ID{field.PropertyCondition, field.TypeOfBuilding, field.Bedrooms, field.LandSize, field.Features},
			hidden:  []field.ID{field.ShortletDuration, field.TenantCriteria, field.JVConditions},
		},
		{
			name:    "shortlet residential",
			d:       brief(model.TransactionShortlet, model.CategoryResidential),
			visible: []field.ID{field.ShortletDuration, field.MaxGuests, field.StreetAddress, field.NightlyPrice, field.HouseRules, field.PaymentMethod},
			hidden:  []field.ID{field.LandSize, field.MeasurementType, field.Documents, field.LeaseHold},
		},
		{
			name:    "shortlet commercial",
			d:       brief(model.TransactionShortlet, model.CategoryCommercial),
			visible: []field.ID{field.ShortletDuration, field.MaxGuests, field.StreetAddress},
			hidden:  []field.ID{field.LandSize},
		},
		{
			name:    "shortlet without category",
			d:       brief(model.TransactionShortlet, ""),
			visible: []field.ID{field.ShortletDuration, field.MaxGuests, field.StreetAddress},
			hidden:  []field.ID{field.LandSize, field.Bedrooms},
		},
		{
			name:    "rent commercial",
			d:       brief(model.TransactionRent, model.CategoryCommercial),
			visible: []field.ID{field.LandSize, field.TenantCriteria, field.Bedrooms},
			hidden:  []field.ID{field.LeaseHold, field.Documents},
		},
		{
			name:   "rent residential",
			d:      brief(model.TransactionRent, model.CategoryResidential),
			hidden: []field.ID{field.LandSize},
		},
		{
			name:    "rent lease",
			d:       model.Discriminators{Flow: model.FlowBrief, TransactionType: model.TransactionRent, PropertyCategory: model.CategoryLand, RentalType: model.RentalLease},
			visible: []field.ID{field.LeaseHold},
		},
		{
			name:    "joint venture residential",
			d:       brief(model.TransactionJointVenture, model.CategoryResidential),
			visible: []field.ID{field.LandSize, field.Documents, field.JVConditions},
			hidden:  []field.ID{field.PropertyCondition, field.TypeOfBuilding, field.Bedrooms, field.TenantCriteria},
		},
		{
			name:    "unknown field",
			d:       brief(model.TransactionSale, model.CategoryLand),
			visible: []field.ID{"somethingNew"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, id := range tt.visible {
				assert.True(t, c.IsVisible(id, tt.d, Values{}), "%s should be visible", id)
			}
			for _, id := range tt.hidden {
				assert.False(t, c.IsVisible(id, tt.d, Values{}), "%s should be hidden", id)
			}
		})
	}
}

func TestPreferenceVisibility(t *testing.T) {
	c := NewPreferenceCatalog()
	pref := func(tx model.TransactionType, cat model.PropertyCategory) model.Discriminators {
		return model.Discriminators{Flow: model.FlowPreference, TransactionType: tx, PropertyCategory: cat}
	}

	assert.True(t, c.IsVisible(field.PrefBedrooms, pref(model.TransactionSale, model.CategoryResidential), nil))
	assert.False(t, c.IsVisible(field.PrefBedrooms, pref(model.TransactionJointVenture, model.CategoryResidential), nil))
	assert.True(t, c.IsVisible(field.PrefLandSize, pref(model.TransactionJointVenture, model.CategoryResidential), nil))
	assert.True(t, c.IsVisible(field.PrefLandSize, pref(model.TransactionSale, model.CategoryLand), nil))
	assert.False(t, c.IsVisible(field.PrefFeatures, pref(model.TransactionShortlet, model.CategoryResidential), nil))
	assert.True(t, c.IsVisible(field.GuestCount, pref(model.TransactionShortlet, model.CategoryResidential), nil))
	assert.True(t, c.IsVisible(field.LeaseDuration, pref(model.TransactionRent, model.CategoryCommercial), nil))
	assert.True(t, c.IsVisible(field.DeveloperCompany, pref(model.TransactionJointVenture, model.CategoryLand), nil))
}

func TestParseInput(t *testing.T) {
	c := NewBriefCatalog()

	v, err := c.ParseInput(field.Price, "₦1,500,000")
	require.NoError(t, err)
	assert.Equal(t, int64(1500000), v.AmountValue())

	_, err = c.ParseInput(field.Price, "abc")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = c.ParseInput("nope", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseInputRejectsNonFiniteNumbers(t *testing.T) {
	c := NewBriefCatalog()

	for _, raw := range []string{"Inf", "-inf", "NaN", "1e400"} {
		_, err := c.ParseInput(field.LandSize, raw)
		assert.ErrorIs(t, err, ErrInvalidValue, raw)
	}
}

func TestStepValidateBoundsCounts(t *testing.T) {
	c := NewBriefCatalog()
	d := brief(model.TransactionShortlet, model.CategoryResidential)
	steps := c.Steps(d)

	tests := []struct {
		name  string
		step  int
		id    field.ID
		value float64
		want  string
	}{
		{"huge bedrooms", 0, field.Bedrooms, 1e300, "Bedrooms cannot be more than 100"},
		{"huge guests", 0, field.MaxGuests, 1e9, "Maximum guests cannot be more than 500"},
		{"long minimum stay", 2, field.MinStay, 400, "Minimum stay cannot be more than 365"},
		{"long maximum stay", 2, field.MaxStay, 1e300, "Maximum stay cannot be more than 365"},
		{"bedrooms at bound", 0, field.Bedrooms, 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := steps[tt.step].Validate(Values{tt.id: field.Number(tt.value)}, d)
			if tt.want == "" {
				assert.NotContains(t, errs, tt.id)
				return
			}
			assert.Equal(t, tt.want, errs[tt.id])
		})
	}

	pd := model.Discriminators{Flow: model.FlowPreference, TransactionType: model.TransactionShortlet, PropertyCategory: model.CategoryResidential}
	var errs map[field.ID]string
	for _, step := range NewPreferenceCatalog().Steps(pd) {
		for id, msg := range step.Validate(Values{field.PrefBedrooms: field.Number(1e300), field.GuestCount: field.Number(1e300)}, pd) {
			if id == field.PrefBedrooms || id == field.GuestCount {
				if errs == nil {
					errs = map[field.ID]string{}
				}
				errs[id] = msg
			}
		}
	}
	assert.Equal(t, "Bedrooms cannot be more than 100", errs[field.PrefBedrooms])
	assert.Equal(t, "Number of guests cannot be more than 500", errs[field.GuestCount])
}

type fakeRegions map[string][]string

func (f fakeRegions) States() []string {
	var out []string
	for s := range f {
		out = append(out, s)
	}
	return out
}

func (f fakeRegions) LGAs(state string) []string { return f[state] }

func (f fakeRegions) Areas(string, string) []string { return nil }

func TestStepValidateLocationAgainstRegions(t *testing.T) {
	c := NewBriefCatalog().WithRegions(fakeRegions{"Lagos": {"Ikeja", "Eti-Osa"}})
	d := brief(model.TransactionSale, model.CategoryLand)
	step := c.Steps(d)[0]

	values := Values{
		field.State:           field.Text("Kano"),
		field.LocalGovernment: field.Text("Ikeja"),
		field.Area:            field.Text("GRA"),
		field.Price:           field.Amount(1000),
		field.LandSize:        field.Number(1),
		field.MeasurementType: field.Text("plot"),
	}
	errs := step.Validate(values, d)
	assert.Contains(t, errs, field.State)

	values[field.State] = field.Text("lagos")
	errs = step.Validate(values, d)
	assert.Empty(t, errs)

	values[field.LocalGovernment] = field.Text("Kosofe")
	errs = step.Validate(values, d)
	assert.Contains(t, errs, field.LocalGovernment)
}

func TestStepValidateNeverRequiresHiddenFields(t *testing.T) {
	c := NewBriefCatalog()
	d := brief(model.TransactionSale, model.CategoryLand)
	errs := c.Steps(d)[0].Validate(Values{}, d)

	assert.Contains(t, errs, field.State)
	assert.Contains(t, errs, field.Price)
	assert.Contains(t, errs, field.LandSize)
	assert.NotContains(t, errs, field.Bedrooms)
	assert.NotContains(t, errs, field.ShortletDuration)
	assert.NotContains(t, errs, field.LeaseHold)
}

func TestStepValidateGates(t *testing.T) {
	c := NewBriefCatalog()

	errs := c.Steps(model.Discriminators{Flow: model.FlowBrief})[0].Validate(Values{}, model.Discriminators{Flow: model.FlowBrief})
	assert.Contains(t, errs, field.ID(model.DiscriminatorTransactionType))
	assert.Contains(t, errs, field.ID(model.DiscriminatorPropertyCategory))

	rent := brief(model.TransactionRent, model.CategoryResidential)
	errs = c.Steps(rent)[0].Validate(Values{}, rent)
	assert.Contains(t, errs, field.ID(model.DiscriminatorRentalType))

	contact := c.Steps(rent)[2]
	errs = contact.Validate(Values{}, rent)
	assert.Contains(t, errs, field.ID(model.DiscriminatorRole))
	assert.Equal(t, "You must accept the disclosure to continue", errs[field.ConsentAccepted])
}
