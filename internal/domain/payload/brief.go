package payload

import "github.com/YoshitsuguKoike/propbrief/internal/domain/model"

// SaleBrief lists a property for sale
type SaleBrief struct {
	Location        Location            `json:"location"`
	Price           int64               `json:"price"`
	PropertyDetails PropertyDetails     `json:"propertyDetails"`
	DocOnProperty   []string            `json:"docOnProperty"`
	AdditionalInfo  string              `json:"additionalInfo,omitempty"`
	Owner           Contact             `json:"owner"`
	Role            model.SubmitterRole `json:"submitterRole"`
}

// NewSaleBrief creates a sale brief
func NewSaleBrief(loc Location, price int64, details PropertyDetails, docs []string, info string, owner Contact, role model.SubmitterRole) SaleBrief {
	return SaleBrief{
		Location:        loc,
		Price:           price,
		PropertyDetails: details,
		DocOnProperty:   nonNil(docs),
		AdditionalInfo:  info,
		Owner:           owner,
		Role:            role,
	}
}

func (SaleBrief) Variant() Variant                       { return VariantSaleBrief }
func (SaleBrief) Flow() model.Flow                       { return model.FlowBrief }
func (SaleBrief) TransactionType() model.TransactionType { return model.TransactionSale }
func (SaleBrief) sealed()                                {}

// RentBrief lists a property for rent or lease. LeaseHold is only present
// for leases.
type RentBrief struct {
	Location        Location            `json:"location"`
	Price           int64               `json:"price"`
	RentalType      model.RentalType    `json:"rentalType"`
	LeaseHold       *int64              `json:"leaseHold,omitempty"`
	PropertyDetails PropertyDetails     `json:"propertyDetails"`
	TenantCriteria  []string            `json:"tenantCriteria"`
	AdditionalInfo  string              `json:"additionalInfo,omitempty"`
	Owner           Contact             `json:"owner"`
	Role            model.SubmitterRole `json:"submitterRole"`
}

// NewRentBrief creates a rent brief
func NewRentBrief(loc Location, price int64, rental model.RentalType, leaseHold *int64, details PropertyDetails, criteria []string, info string, owner Contact, role model.SubmitterRole) RentBrief {
	if rental != model.RentalLease {
		leaseHold = nil
	}
	return RentBrief{
		Location:        loc,
		Price:           price,
		RentalType:      rental,
		LeaseHold:       leaseHold,
		PropertyDetails: details,
		TenantCriteria:  nonNil(criteria),
		AdditionalInfo:  info,
		Owner:           owner,
		Role:            role,
	}
}

func (RentBrief) Variant() Variant                       { return VariantRentBrief }
func (RentBrief) Flow() model.Flow                       { return model.FlowBrief }
func (RentBrief) TransactionType() model.TransactionType { return model.TransactionRent }
func (RentBrief) sealed()                                {}

// JointVentureBrief offers land or a site for joint development.
// Its property details never carry a building.
type JointVentureBrief struct {
	Location        Location            `json:"location"`
	Price           int64               `json:"price"`
	PropertyDetails PropertyDetails     `json:"propertyDetails"`
	DocOnProperty   []string            `json:"docOnProperty"`
	JVConditions    []string            `json:"jvConditions"`
	AdditionalInfo  string              `json:"additionalInfo,omitempty"`
	Owner           Contact             `json:"owner"`
	Role            model.SubmitterRole `json:"submitterRole"`
}

// NewJointVentureBrief creates a joint-venture brief
func NewJointVentureBrief(loc Location, price int64, details PropertyDetails, docs, conditions []string, info string, owner Contact, role model.SubmitterRole) JointVentureBrief {
	details.Building = nil
	return JointVentureBrief{
		Location:        loc,
		Price:           price,
		PropertyDetails: details,
		DocOnProperty:   nonNil(docs),
		JVConditions:    nonNil(conditions),
		AdditionalInfo:  info,
		Owner:           owner,
		Role:            role,
	}
}

func (JointVentureBrief) Variant() Variant { return VariantJointVentureBrief }
func (JointVentureBrief) Flow() model.Flow { return model.FlowBrief }
func (JointVentureBrief) TransactionType() model.TransactionType {
	return model.TransactionJointVenture
}
func (JointVentureBrief) sealed() {}

// ShortletDetails describes the unit being let
type ShortletDetails struct {
	Category      model.PropertyCategory `json:"category"`
	Building      Building               `json:"building"`
	Duration      string                 `json:"shortletDuration"`
	StreetAddress string                 `json:"streetAddress"`
	MaxGuests     int                    `json:"maxGuests"`
	Features      []string               `json:"features,omitempty"`
}

// Availability bounds the bookable window
type Availability struct {
	AvailableFrom string `json:"availableFrom"`
	MinStay       int    `json:"minStay"`
	MaxStay       *int   `json:"maxStay,omitempty"`
}

// Pricing holds the nightly price and optional extras
type Pricing struct {
	NightlyPrice    int64    `json:"nightlyPrice"`
	WeeklyDiscount  *float64 `json:"weeklyDiscount,omitempty"`
	CleaningFee     *int64   `json:"cleaningFee,omitempty"`
	SecurityDeposit *int64   `json:"securityDeposit,omitempty"`
	PaymentMethod   string   `json:"paymentMethod"`
}

// HouseRules are the guest rules of a shortlet
type HouseRules struct {
	Rules          []string `json:"rules"`
	CheckInTime    string   `json:"checkInTime"`
	CheckOutTime   string   `json:"checkOutTime"`
	SmokingAllowed bool     `json:"smokingAllowed"`
	PetsAllowed    bool     `json:"petsAllowed"`
	PartiesAllowed bool     `json:"partiesAllowed"`
}

// ShortletBrief lists a shortlet. It carries availability, pricing and house
// rules in place of generic property details.
type ShortletBrief struct {
	Location        Location            `json:"location"`
	Price           int64               `json:"price"`
	ShortletDetails ShortletDetails     `json:"shortletDetails"`
	Availability    Availability        `json:"availability"`
	Pricing         Pricing             `json:"pricing"`
	HouseRules      HouseRules          `json:"houseRules"`
	AdditionalInfo  string              `json:"additionalInfo,omitempty"`
	Owner           Contact             `json:"owner"`
	Role            model.SubmitterRole `json:"submitterRole"`
}

// NewShortletBrief creates a shortlet brief
func NewShortletBrief(loc Location, price int64, details ShortletDetails, availability Availability, pricing Pricing, rules HouseRules, info string, owner Contact, role model.SubmitterRole) ShortletBrief {
	rules.Rules = nonNil(rules.Rules)
	return ShortletBrief{
		Location:        loc,
		Price:           price,
		ShortletDetails: details,
		Availability:    availability,
		Pricing:         pricing,
		HouseRules:      rules,
		AdditionalInfo:  info,
		Owner:           owner,
		Role:            role,
	}
}

func (ShortletBrief) Variant() Variant                       { return VariantShortletBrief }
func (ShortletBrief) Flow() model.Flow                       { return model.FlowBrief }
func (ShortletBrief) TransactionType() model.TransactionType { return model.TransactionShortlet }
func (ShortletBrief) sealed()                                {}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
