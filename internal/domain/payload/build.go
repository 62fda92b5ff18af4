package payload

import (
	"errors"
	"fmt"
	"math"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// ErrIncomplete indicates the discriminators do not select a variant
var ErrIncomplete = errors.New("payload: transaction type and property category must be selected")

// Build assembles the variant selected by the discriminators from the flat
// field values. Amounts are already raw integers; empty optional values are
// omitted and groups that the category does not use are left nil.
func Build(d model.Discriminators, r Reader) (Payload, error) {
	if !d.TransactionType.IsValid() || !d.PropertyCategory.IsValid() {
		return nil, ErrIncomplete
	}
	if !d.TransactionType.AcceptsCategory(d.PropertyCategory) {
		return nil, fmt.Errorf("payload: %s does not accept %s", d.TransactionType, d.PropertyCategory)
	}
	v := values{r}
	switch d.Flow {
	case model.FlowBrief:
		return buildBrief(d, v)
	case model.FlowPreference:
		return buildPreference(d, v), nil
	default:
		return nil, fmt.Errorf("payload: unknown flow %q", d.Flow)
	}
}

func buildBrief(d model.Discriminators, v values) (Payload, error) {
	loc := Location{
		State:           v.text(field.State),
		LocalGovernment: v.text(field.LocalGovernment),
		Area:            v.text(field.Area),
	}
	owner := v.contact()
	price := v.amount(field.Price)
	info := v.text(field.AdditionalInfo)
	role := d.Role

	details := PropertyDetails{
		Category: d.PropertyCategory,
		LandSize: v.landSize(field.LandSize, field.MeasurementType),
		Features: v.list(field.Features),
	}
	if d.PropertyCategory.IsBuilt() {
		details.Building = &Building{
			PropertyCondition: v.text(field.PropertyCondition),
			TypeOfBuilding:    v.text(field.TypeOfBuilding),
			Bedrooms:          v.count(field.Bedrooms),
		}
	}

	switch d.TransactionType {
	case model.TransactionSale:
		return NewSaleBrief(loc, price, details, v.list(field.Documents), info, owner, role), nil
	case model.TransactionRent:
		if d.RentalType == "" {
			return nil, errors.New("payload: rental type must be selected for rent")
		}
		return NewRentBrief(loc, price, d.RentalType, v.optAmount(field.LeaseHold), details, v.list(field.TenantCriteria), info, owner, role), nil
	case model.TransactionJointVenture:
		return NewJointVentureBrief(loc, price, details, v.list(field.Documents), v.list(field.JVConditions), info, owner, role), nil
	default:
		sd := ShortletDetails{
			Category:      d.PropertyCategory,
			Duration:      v.text(field.ShortletDuration),
			StreetAddress: v.text(field.StreetAddress),
			MaxGuests:     v.count(field.MaxGuests),
			Features:      details.Features,
		}
		if details.Building != nil {
			sd.Building = *details.Building
		}
		availability := Availability{
			AvailableFrom: v.text(field.AvailableFrom),
			MinStay:       v.count(field.MinStay),
			MaxStay:       v.optCount(field.MaxStay),
		}
		pricing := Pricing{
			NightlyPrice:    v.amount(field.NightlyPrice),
			WeeklyDiscount:  v.optNumber(field.WeeklyDiscount),
			CleaningFee:     v.optAmount(field.CleaningFee),
			SecurityDeposit: v.optAmount(field.SecurityDeposit),
			PaymentMethod:   v.text(field.PaymentMethod),
		}
		rules := HouseRules{
			Rules:          v.list(field.HouseRules),
			CheckInTime:    v.text(field.CheckInTime),
			CheckOutTime:   v.text(field.CheckOutTime),
			SmokingAllowed: v.flag(field.SmokingAllowed),
			PetsAllowed:    v.flag(field.PetsAllowed),
			PartiesAllowed: v.flag(field.PartiesAllowed),
		}
		return NewShortletBrief(loc, price, sd, availability, pricing, rules, info, owner, role), nil
	}
}

func buildPreference(d model.Discriminators, v values) Payload {
	loc := PreferenceLocation{
		State:            v.text(field.PrefState),
		LocalGovernments: nonNil(v.list(field.PrefLocalGovernments)),
		Areas:            v.list(field.PrefAreas),
		CustomLocation:   v.text(field.CustomLocation),
	}
	budget := Budget{
		MinPrice: v.optAmount(field.MinBudget),
		MaxPrice: v.amount(field.MaxBudget),
	}
	req := Requirements{
		Category:          d.PropertyCategory,
		Bedrooms:          v.optCount(field.PrefBedrooms),
		BuildingType:      v.text(field.PrefBuildingType),
		PropertyCondition: v.text(field.PrefPropertyCondition),
		LandSize:          v.landSize(field.PrefLandSize, field.PrefMeasurementType),
	}
	contact := v.contact()
	notes := v.text(field.AdditionalNotes)

	switch d.TransactionType {
	case model.TransactionSale:
		return NewBuyerPreference(loc, budget, req, v.list(field.PrefDocuments), v.list(field.PrefFeatures), notes, contact)
	case model.TransactionRent:
		return NewTenantPreference(loc, budget, req, v.text(field.LeaseDuration), v.list(field.PrefFeatures), notes, contact)
	case model.TransactionJointVenture:
		dev := Developer{
			CompanyName: v.text(field.DeveloperCompany),
			CACNumber:   v.text(field.CACNumber),
		}
		return NewDeveloperPreference(loc, budget, req, v.list(field.PrefDocuments), dev, notes, contact)
	default:
		booking := Booking{
			CheckInDate:  v.text(field.CheckInDate),
			CheckOutDate: v.text(field.CheckOutDate),
			GuestCount:   v.count(field.GuestCount),
		}
		return NewGuestPreference(loc, budget, req, booking, notes, contact)
	}
}

const maxCount = math.MaxInt32

type values struct {
	r Reader
}

func (v values) text(id field.ID) string {
	return v.r.Value(id).TextValue()
}

func (v values) amount(id field.ID) int64 {
	return v.r.Value(id).AmountValue()
}

func (v values) optAmount(id field.ID) *int64 {
	val := v.r.Value(id)
	if val.IsEmpty() {
		return nil
	}
	n := val.AmountValue()
	return &n
}

// count rounds a whole-number field; out-of-range input collapses to the
// nearest bound so the conversion stays defined
func (v values) count(id field.ID) int {
	n := math.Round(v.r.Value(id).NumberValue())
	switch {
	case math.IsNaN(n):
		return 0
	case n > maxCount:
		return maxCount
	case n < -maxCount:
		return -maxCount
	}
	return int(n)
}

func (v values) optCount(id field.ID) *int {
	if v.r.Value(id).IsEmpty() {
		return nil
	}
	n := v.count(id)
	return &n
}

func (v values) optNumber(id field.ID) *float64 {
	val := v.r.Value(id)
	if val.IsEmpty() {
		return nil
	}
	n := val.NumberValue()
	return &n
}

func (v values) list(id field.ID) []string {
	items := v.r.Value(id).ListValue()
	if len(items) == 0 {
		return nil
	}
	return items
}

func (v values) flag(id field.ID) bool {
	return v.r.Value(id).BoolValue()
}

func (v values) landSize(sizeID, unitID field.ID) *LandSize {
	size := v.r.Value(sizeID)
	if size.IsEmpty() {
		return nil
	}
	return &LandSize{Size: size.NumberValue(), MeasurementType: v.text(unitID)}
}

func (v values) contact() Contact {
	return Contact{
		FullName:    v.text(field.FullName),
		Email:       v.text(field.Email),
		PhoneNumber: v.text(field.PhoneNumber),
	}
}
