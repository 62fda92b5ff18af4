package wizard

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/validator/common"
)

var (
	measurementOptions = []string{"plot", "acre", "sqm", "hectare"}
	conditionOptions   = []string{"new", "good", "renovated", "needs-renovation"}
	durationOptions    = []string{"daily", "weekly", "monthly"}
	paymentOptions     = []string{"bank-transfer", "card", "cash"}

	// location, price and feature choices are re-entered whenever the
	// transaction type or category changes
	categorySensitive = []model.DiscriminatorKind{
		model.DiscriminatorTransactionType,
		model.DiscriminatorPropertyCategory,
	}
)

// Brief visibility rules. Each field has exactly one entry; when several
// conditions apply they are combined with anyOf.
var (
	builtForListing = allOf(
		txIn(model.TransactionSale, model.TransactionRent, model.TransactionShortlet),
		categoryIn(model.CategoryResidential, model.CategoryCommercial),
	)
	landSizeVisible = anyOf(
		txIn(model.TransactionSale, model.TransactionJointVenture),
		allOf(txIn(model.TransactionRent), categoryIn(model.CategoryCommercial)),
	)
	shortletOnly = txIn(model.TransactionShortlet)
)

func briefRules() map[field.ID]Rule {
	return map[field.ID]Rule{
		field.State:           always,
		field.LocalGovernment: always,
		field.Area:            always,
		field.Price:           always,

		field.LeaseHold:         allOf(txIn(model.TransactionRent), rentalIs(model.RentalLease)),
		field.LandSize:          landSizeVisible,
		field.MeasurementType:   landSizeVisible,
		field.PropertyCondition: builtForListing,
		field.TypeOfBuilding:    builtForListing,
		field.Bedrooms:          builtForListing,
		field.ShortletDuration:  shortletOnly,
		field.StreetAddress:     shortletOnly,
		field.MaxGuests:         shortletOnly,

		field.Documents:      txIn(model.TransactionSale, model.TransactionJointVenture),
		field.Features:       categoryIn(model.CategoryResidential, model.CategoryCommercial, model.CategoryMixedDevelopment),
		field.TenantCriteria: txIn(model.TransactionRent),
		field.JVConditions:   txIn(model.TransactionJointVenture),
		field.AdditionalInfo: always,

		field.AvailableFrom:   shortletOnly,
		field.MinStay:         shortletOnly,
		field.MaxStay:         shortletOnly,
		field.NightlyPrice:    shortletOnly,
		field.WeeklyDiscount:  shortletOnly,
		field.CleaningFee:     shortletOnly,
		field.SecurityDeposit: shortletOnly,
		field.PaymentMethod:   shortletOnly,

		field.HouseRules:     shortletOnly,
		field.CheckInTime:    shortletOnly,
		field.CheckOutTime:   shortletOnly,
		field.SmokingAllowed: shortletOnly,
		field.PetsAllowed:    shortletOnly,
		field.PartiesAllowed: shortletOnly,
	}
}

func briefFields() []field.Descriptor {
	clearable := func(d field.Descriptor) field.Descriptor {
		d.ClearOnDiscriminatorChange = true
		return d
	}
	return []field.Descriptor{
		clearable(field.Descriptor{ID: field.State, Label: "State", Kind: field.KindText, Step: field.StepBasic, Required: true, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.LocalGovernment, Label: "Local government", Kind: field.KindText, Step: field.StepBasic, Required: true, ResetOn: categorySensitive, DependsOn: field.State}),
		clearable(field.Descriptor{ID: field.Area, Label: "Area", Kind: field.KindText, Step: field.StepBasic, Required: true, ResetOn: categorySensitive, DependsOn: field.LocalGovernment}),
		clearable(field.Descriptor{ID: field.Price, Label: "Price", Kind: field.KindAmount, Step: field.StepBasic, Required: true, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.LeaseHold, Label: "Lease hold", Kind: field.KindAmount, Step: field.StepBasic, Required: true}),
		clearable(field.Descriptor{ID: field.LandSize, Label: "Land size", Kind: field.KindNumber, Step: field.StepBasic}),
		clearable(field.Descriptor{ID: field.MeasurementType, Label: "Measurement type", Kind: field.KindText, Step: field.StepBasic, Options: measurementOptions}),
		clearable(field.Descriptor{ID: field.PropertyCondition, Label: "Property condition", Kind: field.KindText, Step: field.StepBasic, Required: true, Options: conditionOptions}),
		clearable(field.Descriptor{ID: field.TypeOfBuilding, Label: "Type of building", Kind: field.KindText, Step: field.StepBasic, Required: true}),
		clearable(field.Descriptor{ID: field.Bedrooms, Label: "Bedrooms", Kind: field.KindNumber, Step: field.StepBasic, Required: true}),
		clearable(field.Descriptor{ID: field.ShortletDuration, Label: "Shortlet duration", Kind: field.KindText, Step: field.StepBasic, Required: true, Options: durationOptions}),
		clearable(field.Descriptor{ID: field.StreetAddress, Label: "Street address", Kind: field.KindText, Step: field.StepBasic, Required: true}),
		clearable(field.Descriptor{ID: field.MaxGuests, Label: "Maximum guests", Kind: field.KindNumber, Step: field.StepBasic, Required: true}),

		clearable(field.Descriptor{ID: field.Documents, Label: "Documents on property", Kind: field.KindList, Step: field.StepFeatures, Required: true}),
		clearable(field.Descriptor{ID: field.Features, Label: "Features", Kind: field.KindList, Step: field.StepFeatures, ResetOn: categorySensitive}),
		clearable(field.Descriptor{ID: field.TenantCriteria, Label: "Tenant criteria", Kind: field.KindList, Step: field.StepFeatures}),
		clearable(field.Descriptor{ID: field.JVConditions, Label: "Joint venture conditions", Kind: field.KindList, Step: field.StepFeatures}),
		clearable(field.Descriptor{ID: field.AdditionalInfo, Label: "Additional information", Kind: field.KindText, Step: field.StepFeatures}),

		clearable(field.Descriptor{ID: field.AvailableFrom, Label: "Available from", Kind: field.KindText, Step: field.StepPricing, Required: true}),
		clearable(field.Descriptor{ID: field.MinStay, Label: "Minimum stay", Kind: field.KindNumber, Step: field.StepPricing, Required: true}),
		clearable(field.Descriptor{ID: field.MaxStay, Label: "Maximum stay", Kind: field.KindNumber, Step: field.StepPricing}),
		clearable(field.Descriptor{ID: field.NightlyPrice, Label: "Nightly price", Kind: field.KindAmount, Step: field.StepPricing, Required: true}),
		clearable(field.Descriptor{ID: field.WeeklyDiscount, Label: "Weekly discount (%)", Kind: field.KindNumber, Step: field.StepPricing}),
		clearable(field.Descriptor{ID: field.CleaningFee, Label: "Cleaning fee", Kind: field.KindAmount, Step: field.StepPricing}),
		clearable(field.Descriptor{ID: field.SecurityDeposit, Label: "Security deposit", Kind: field.KindAmount, Step: field.StepPricing}),
		clearable(field.Descriptor{ID: field.PaymentMethod, Label: "Payment method", Kind: field.KindText, Step: field.StepPricing, Required: true, Options: paymentOptions}),

		clearable(field.Descriptor{ID: field.HouseRules, Label: "House rules", Kind: field.KindList, Step: field.StepHouseRules}),
		clearable(field.Descriptor{ID: field.CheckInTime, Label: "Check-in time", Kind: field.KindText, Step: field.StepHouseRules, Required: true}),
		clearable(field.Descriptor{ID: field.CheckOutTime, Label: "Check-out time", Kind: field.KindText, Step: field.StepHouseRules, Required: true}),
		clearable(field.Descriptor{ID: field.SmokingAllowed, Label: "Smoking allowed", Kind: field.KindBool, Step: field.StepHouseRules}),
		clearable(field.Descriptor{ID: field.PetsAllowed, Label: "Pets allowed", Kind: field.KindBool, Step: field.StepHouseRules}),
		clearable(field.Descriptor{ID: field.PartiesAllowed, Label: "Parties allowed", Kind: field.KindBool, Step: field.StepHouseRules}),

		{ID: field.FullName, Label: "Full name", Kind: field.KindText, Step: field.StepContact, Required: true},
		{ID: field.Email, Label: "Email", Kind: field.KindText, Step: field.StepContact, Required: true},
		{ID: field.PhoneNumber, Label: "Phone number", Kind: field.KindText, Step: field.StepContact, Required: true},
		{ID: field.ConsentAccepted, Label: "Consent", Kind: field.KindBool, Step: field.StepContact},
	}
}

func briefStepPlan(d model.Discriminators) []field.StepID {
	if d.TransactionType == model.TransactionShortlet {
		return []field.StepID{field.StepBasic, field.StepFeatures, field.StepPricing, field.StepHouseRules, field.StepContact}
	}
	return []field.StepID{field.StepBasic, field.StepFeatures, field.StepContact}
}

// NewBriefCatalog builds the "post a property brief" flow
func NewBriefCatalog() *Catalog {
	c := newCatalog(model.FlowBrief, briefFields(), briefRules())
	c.stepPlan = briefStepPlan
	c.stepTitles = map[field.StepID]string{
		field.StepBasic:      "Property details",
		field.StepFeatures:   "Features and documents",
		field.StepPricing:    "Availability and pricing",
		field.StepHouseRules: "House rules",
		field.StepContact:    "Contact and consent",
	}
	c.gates = map[field.StepID][]model.DiscriminatorKind{
		field.StepBasic:   {model.DiscriminatorTransactionType, model.DiscriminatorPropertyCategory, model.DiscriminatorRentalType},
		field.StepContact: {model.DiscriminatorRole},
	}
	c.checks = map[field.StepID][]Check{
		field.StepBasic:      {checkLocation(field.State, field.LocalGovernment), checkBriefBasic},
		field.StepPricing:    {checkShortletPricing},
		field.StepHouseRules: {checkHouseRules},
		field.StepContact:    {checkContact, checkConsent},
	}
	return c
}

// upper bounds for whole-number counts
const (
	maxRooms      = 100
	maxGuests     = 500
	maxStayNights = 365
)

func checkBriefBasic(ctx CheckContext, issues *[]common.ValidationIssue) {
	if ctx.Discriminators.PropertyCategory == model.CategoryLand && ctx.Visible(field.LandSize) && ctx.Get(field.LandSize).IsEmpty() {
		common.AddError(string(field.LandSize), "Land size is required for land", issues)
	}
	if size := ctx.Get(field.LandSize); !size.IsEmpty() {
		common.ValidatePositive(size.NumberValue(), string(field.LandSize), "Land size", issues)
		if ctx.Get(field.MeasurementType).IsEmpty() {
			common.AddError(string(field.MeasurementType), "Measurement type is required with a land size", issues)
		}
	}
	if v := ctx.Get(field.Bedrooms); !v.IsEmpty() {
		common.ValidatePositive(v.NumberValue(), string(field.Bedrooms), "Bedrooms", issues)
		common.ValidateAtMost(v.NumberValue(), maxRooms, string(field.Bedrooms), "Bedrooms", issues)
	}
	if v := ctx.Get(field.MaxGuests); !v.IsEmpty() {
		common.ValidatePositive(v.NumberValue(), string(field.MaxGuests), "Maximum guests", issues)
		common.ValidateAtMost(v.NumberValue(), maxGuests, string(field.MaxGuests), "Maximum guests", issues)
	}
	if v := ctx.Get(field.Price); !v.IsEmpty() && v.AmountValue() == 0 {
		common.AddError(string(field.Price), "Price must be greater than zero", issues)
	}
}

func checkShortletPricing(ctx CheckContext, issues *[]common.ValidationIssue) {
	common.ParseDate(ctx.Get(field.AvailableFrom).TextValue(), string(field.AvailableFrom), issues)
	minStay := ctx.Get(field.MinStay)
	if !minStay.IsEmpty() {
		common.ValidatePositive(minStay.NumberValue(), string(field.MinStay), "Minimum stay", issues)
		common.ValidateAtMost(minStay.NumberValue(), maxStayNights, string(field.MinStay), "Minimum stay", issues)
	}
	if maxStay := ctx.Get(field.MaxStay); !maxStay.IsEmpty() {
		common.ValidateAtMost(maxStay.NumberValue(), maxStayNights, string(field.MaxStay), "Maximum stay", issues)
		if !minStay.IsEmpty() {
			common.ValidateOrdered(minStay.NumberValue(), maxStay.NumberValue(), string(field.MaxStay), "Maximum stay cannot be shorter than the minimum stay", issues)
		}
	}
	if v := ctx.Get(field.NightlyPrice); !v.IsEmpty() && v.AmountValue() == 0 {
		common.AddError(string(field.NightlyPrice), "Nightly price must be greater than zero", issues)
	}
	if v := ctx.Get(field.WeeklyDiscount); !v.IsEmpty() {
		common.ValidateMaxPercent(v.NumberValue(), string(field.WeeklyDiscount), issues)
	}
}

func checkHouseRules(ctx CheckContext, issues *[]common.ValidationIssue) {
	common.ValidateClock(ctx.Get(field.CheckInTime).TextValue(), string(field.CheckInTime), issues)
	common.ValidateClock(ctx.Get(field.CheckOutTime).TextValue(), string(field.CheckOutTime), issues)
}

func checkContact(ctx CheckContext, issues *[]common.ValidationIssue) {
	common.ValidateEmail(ctx.Get(field.Email).TextValue(), string(field.Email), issues)
	common.ValidatePhone(ctx.Get(field.PhoneNumber).TextValue(), string(field.PhoneNumber), issues)
}

func checkConsent(ctx CheckContext, issues *[]common.ValidationIssue) {
	if ctx.Visible(field.ConsentAccepted) && !ctx.Get(field.ConsentAccepted).BoolValue() {
		common.AddError(string(field.ConsentAccepted), "You must accept the disclosure to continue", issues)
	}
}

// checkLocation validates the state and LGA against the gazetteer when one is wired.
// Areas stay free text so new estates can be entered.
func checkLocation(stateID, lgaID field.ID) Check {
	return func(ctx CheckContext, issues *[]common.ValidationIssue) {
		if ctx.Regions == nil {
			return
		}
		state := ctx.Get(stateID)
		if state.IsEmpty() {
			return
		}
		name, ok := matchFold(ctx.Regions.States(), state.TextValue())
		if !ok {
			common.AddError(string(stateID), "Select a valid state", issues)
			return
		}
		lgas := ctx.Regions.LGAs(name)
		lga := ctx.Get(lgaID)
		switch lga.Kind() {
		case field.KindList:
			for _, item := range lga.ListValue() {
				if !containsFold(lgas, item) {
					common.AddError(string(lgaID), "Select local governments in "+state.TextValue(), issues)
					return
				}
			}
		case field.KindText:
			if !lga.IsEmpty() && !containsFold(lgas, lga.TextValue()) {
				common.AddError(string(lgaID), "Select a local government in "+state.TextValue(), issues)
			}
		}
	}
}
