package wizard

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/validator/common"
)

var (
	prefBuilt = allOf(
		not(txIn(model.TransactionJointVenture)),
		categoryIn(model.CategoryResidential, model.CategoryCommercial),
	)
	prefLand = anyOf(
		categoryIn(model.CategoryLand),
		txIn(model.TransactionJointVenture),
	)
)

func preferenceRules() map[field.ID]Rule {
	return map[field.ID]Rule{
		field.PrefState:            always,
		field.PrefLocalGovernments: always,
		field.PrefAreas:            always,
		field.CustomLocation:       always,
		field.MinBudget:            always,
		field.MaxBudget:            always,

		field.PrefBedrooms:          prefBuilt,
		field.PrefBuildingType:      prefBuilt,
		field.PrefPropertyCondition: allOf(txIn(model.TransactionSale, model.TransactionRent), categoryIn(model.CategoryResidential, model.CategoryCommercial)),
		field.PrefLandSize:          prefLand,
		field.PrefMeasurementType:   prefLand,
		field.PrefDocuments:         txIn(model.TransactionSale, model.TransactionJointVenture),
		field.PrefFeatures:          allOf(not(categoryIn(model.CategoryLand)), not(txIn(model.TransactionShortlet))),
		field.LeaseDuration:         txIn(model.TransactionRent),
		field.CheckInDate:           txIn(model.TransactionShortlet),
		field.CheckOutDate:          txIn(model.TransactionShortlet),
		field.GuestCount:            txIn(model.TransactionShortlet),
		field.DeveloperCompany:      txIn(model.TransactionJointVenture),
		field.CACNumber:             txIn(model.TransactionJointVenture),
		field.AdditionalNotes:       always,
	}
}

func preferenceFields() []field.Descriptor {
	clearable := func(d field.Descriptor) field.Descriptor {
		d.ClearOnDiscriminatorChange = true
		return d
	}
	return []field.Descriptor{
		clearable(field.Descriptor{ID: field.PrefState, Label: "Preferred state", Kind: field.KindText, Step: field.StepLocation, Required: true, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.PrefLocalGovernments, Label: "Preferred local governments", Kind: field.KindList, Step: field.StepLocation, Required: true, ResetOn: categorySensitive, DependsOn: field.PrefState}),
		clearable(field.Descriptor{ID: field.PrefAreas, Label: "Preferred areas", Kind: field.KindList, Step: field.StepLocation, ResetOn: categorySensitive, DependsOn: field.PrefLocalGovernments}),
		clearable(field.Descriptor{ID: field.CustomLocation, Label: "Other location", Kind: field.KindText, Step: field.StepLocation}),
		clearable(field.Descriptor{ID: field.MinBudget, Label: "Minimum budget", Kind: field.KindAmount, Step: field.StepLocation, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.MaxBudget, Label: "Maximum budget", Kind: field.KindAmount, Step: field.StepLocation, Required: true, ResetOn: categorySensitive}),

		clearable(field.Descriptor{ID: field.PrefBedrooms, Label: "Bedrooms", Kind: field.KindNumber, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.PrefBuildingType, Label: "Building type", Kind: field.KindText, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.PrefPropertyCondition, Label: "Property condition", Kind: field.KindText, Step: field.StepRequirements, Options: conditionOptions}),
		clearable(field.Descriptor{ID: field.PrefLandSize, Label: "Minimum land size", Kind: field.KindNumber, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.PrefMeasurementType, Label: "Measurement type", Kind: field.KindText, Step: field.StepRequirements, Options: measurementOptions}),
		clearable(field.Descriptor{ID: field.PrefDocuments, Label: "Required documents", Kind: field.KindList, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.PrefFeatures, Label: "Desired features", Kind: field.KindList, Step: field.StepRequirements, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.LeaseDuration, Label: "Lease duration", Kind: field.KindText, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.CheckInDate, Label: "Check-in date", Kind: field.KindText, Step: field.StepRequirements, Required: true}),
		clearable(field.Descriptor{ID: field.CheckOutDate, Label: "Check-out date", Kind: field.KindText, Step: field.StepRequirements, Required: true}),
		clearable(field.Descriptor{ID: field.GuestCount, Label: "Number of guests", Kind: field.KindNumber, Step: field.StepRequirements, Required: true}),
		clearable(field.Descriptor{ID: field.DeveloperCompany, Label: "Company name", Kind: field.KindText, Step: field.StepRequirements, Required: true}),
		clearable(field.Descriptor{ID: field.CACNumber, Label: "CAC registration number", Kind: field.KindText, Step: field.StepRequirements}),
		clearable(field.Descriptor{ID: field.AdditionalNotes, Label: "Additional notes", Kind: field.KindText, Step: field.StepRequirements}),

		{ID: field.FullName, Label: "Full name", Kind: field.KindText, Step: field.StepContact, Required: true},
		{ID: field.Email, Label: "Email", Kind: field.KindText, Step: field.StepContact, Required: true},
		{ID: field.PhoneNumber, Label: "Phone number", Kind: field.KindText, Step: field.StepContact, Required: true},
	}
}

// NewPreferenceCatalog builds the "submit a preference" flow. The transaction
// type reads as buyer, tenant, developer or guest.
func NewPreferenceCatalog() *Catalog {
	c := newCatalog(model.FlowPreference, preferenceFields(), preferenceRules())
	c.stepPlan = func(model.Discriminators) []field.StepID {
		return []field.StepID{field.StepLocation, field.StepRequirements, field.StepContact}
	}
	c.stepTitles = map[field.StepID]string{
		field.StepLocation:     "Location and budget",
		field.StepRequirements: "Requirements",
		field.StepContact:      "Contact",
	}
	c.gates = map[field.StepID][]model.DiscriminatorKind{
		field.StepLocation: {model.DiscriminatorTransactionType, model.DiscriminatorPropertyCategory},
	}
	c.checks = map[field.StepID][]Check{
		field.StepLocation:     {checkLocation(field.PrefState, field.PrefLocalGovernments), checkBudget},
		field.StepRequirements: {checkRequirements, checkStay},
		field.StepContact:      {checkContact},
	}
	return c
}

func checkBudget(ctx CheckContext, issues *[]common.ValidationIssue) {
	maxBudget := ctx.Get(field.MaxBudget)
	if !maxBudget.IsEmpty() && maxBudget.AmountValue() == 0 {
		common.AddError(string(field.MaxBudget), "Maximum budget must be greater than zero", issues)
	}
	if minBudget := ctx.Get(field.MinBudget); !minBudget.IsEmpty() && !maxBudget.IsEmpty() {
		common.ValidateOrdered(float64(minBudget.AmountValue()), float64(maxBudget.AmountValue()), string(field.MaxBudget), "Maximum budget cannot be below the minimum budget", issues)
	}
}

func checkRequirements(ctx CheckContext, issues *[]common.ValidationIssue) {
	if v := ctx.Get(field.PrefBedrooms); !v.IsEmpty() {
		common.ValidatePositive(v.NumberValue(), string(field.PrefBedrooms), "Bedrooms", issues)
		common.ValidateAtMost(v.NumberValue(), maxRooms, string(field.PrefBedrooms), "Bedrooms", issues)
	}
	if ctx.Discriminators.PropertyCategory == model.CategoryLand && ctx.Get(field.PrefLandSize).IsEmpty() {
		common.AddError(string(field.PrefLandSize), "Minimum land size is required for land", issues)
	}
	if size := ctx.Get(field.PrefLandSize); !size.IsEmpty() {
		common.ValidatePositive(size.NumberValue(), string(field.PrefLandSize), "Minimum land size", issues)
		if ctx.Get(field.PrefMeasurementType).IsEmpty() {
			common.AddError(string(field.PrefMeasurementType), "Measurement type is required with a land size", issues)
		}
	}
}

func checkStay(ctx CheckContext, issues *[]common.ValidationIssue) {
	if !ctx.Visible(field.CheckInDate) {
		return
	}
	in, okIn := common.ParseDate(ctx.Get(field.CheckInDate).TextValue(), string(field.CheckInDate), issues)
	out, okOut := common.ParseDate(ctx.Get(field.CheckOutDate).TextValue(), string(field.CheckOutDate), issues)
	if okIn && okOut && !out.After(in) {
		common.AddError(string(field.CheckOutDate), "Check-out date must be after the check-in date", issues)
	}
	if v := ctx.Get(field.GuestCount); !v.IsEmpty() {
		common.ValidatePositive(v.NumberValue(), string(field.GuestCount), "Number of guests", issues)
		common.ValidateAtMost(v.NumberValue(), maxGuests, string(field.GuestCount), "Number of guests", issues)
	}
}
