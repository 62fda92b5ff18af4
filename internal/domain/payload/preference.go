package payload

import "github.com/YoshitsuguKoike/propbrief/internal/domain/model"

// PreferenceLocation is where a seeker wants to be
type PreferenceLocation struct {
	State            string   `json:"state"`
	LocalGovernments []string `json:"localGovernments"`
	Areas            []string `json:"areas,omitempty"`
	CustomLocation   string   `json:"customLocation,omitempty"`
}

// Budget is a price range; the minimum is optional
type Budget struct {
	MinPrice *int64 `json:"minPrice,omitempty"`
	MaxPrice int64  `json:"maxPrice"`
}

// Requirements is what the seeker needs from the property
type Requirements struct {
	Category          model.PropertyCategory `json:"category"`
	Bedrooms          *int                   `json:"bedrooms,omitempty"`
	BuildingType      string                 `json:"buildingType,omitempty"`
	PropertyCondition string                 `json:"propertyCondition,omitempty"`
	LandSize          *LandSize              `json:"landSize,omitempty"`
}

// BuyerPreference is a preference to buy
type BuyerPreference struct {
	Location        PreferenceLocation `json:"location"`
	Budget          Budget             `json:"budget"`
	PropertyDetails Requirements       `json:"propertyDetails"`
	Documents       []string           `json:"documents"`
	Features        []string           `json:"features,omitempty"`
	AdditionalNotes string             `json:"additionalNotes,omitempty"`
	ContactInfo     Contact            `json:"contactInfo"`
}

// NewBuyerPreference creates a buyer preference
func NewBuyerPreference(loc PreferenceLocation, budget Budget, req Requirements, docs, features []string, notes string, contact Contact) BuyerPreference {
	return BuyerPreference{
		Location:        loc,
		Budget:          budget,
		PropertyDetails: req,
		Documents:       nonNil(docs),
		Features:        features,
		AdditionalNotes: notes,
		ContactInfo:     contact,
	}
}

func (BuyerPreference) Variant() Variant                       { return VariantBuyerPreference }
func (BuyerPreference) Flow() model.Flow                       { return model.FlowPreference }
func (BuyerPreference) TransactionType() model.TransactionType { return model.TransactionSale }
func (BuyerPreference) sealed()                                {}

// TenantPreference is a preference to rent
type TenantPreference struct {
	Location        PreferenceLocation `json:"location"`
	Budget          Budget             `json:"budget"`
	PropertyDetails Requirements       `json:"propertyDetails"`
	LeaseDuration   string             `json:"leaseDuration,omitempty"`
	Features        []string           `json:"features,omitempty"`
	AdditionalNotes string             `json:"additionalNotes,omitempty"`
	ContactInfo     Contact            `json:"contactInfo"`
}

// NewTenantPreference creates a tenant preference
func NewTenantPreference(loc PreferenceLocation, budget Budget, req Requirements, leaseDuration string, features []string, notes string, contact Contact) TenantPreference {
	return TenantPreference{
		Location:        loc,
		Budget:          budget,
		PropertyDetails: req,
		LeaseDuration:   leaseDuration,
		Features:        features,
		AdditionalNotes: notes,
		ContactInfo:     contact,
	}
}

func (TenantPreference) Variant() Variant                       { return VariantTenantPreference }
func (TenantPreference) Flow() model.Flow                       { return model.FlowPreference }
func (TenantPreference) TransactionType() model.TransactionType { return model.TransactionRent }
func (TenantPreference) sealed()                                {}

// Developer identifies the company behind a joint-venture preference
type Developer struct {
	CompanyName string `json:"companyName"`
	CACNumber   string `json:"cacNumber,omitempty"`
}

// DeveloperPreference is a developer looking for a joint-venture site
type DeveloperPreference struct {
	Location        PreferenceLocation `json:"location"`
	Budget          Budget             `json:"budget"`
	PropertyDetails Requirements       `json:"propertyDetails"`
	Documents       []string           `json:"documents"`
	Developer       Developer          `json:"developer"`
	AdditionalNotes string             `json:"additionalNotes,omitempty"`
	ContactInfo     Contact            `json:"contactInfo"`
}

// NewDeveloperPreference creates a developer preference
func NewDeveloperPreference(loc PreferenceLocation, budget Budget, req Requirements, docs []string, dev Developer, notes string, contact Contact) DeveloperPreference {
	req.Bedrooms = nil
	req.BuildingType = ""
	req.PropertyCondition = ""
	return DeveloperPreference{
		Location:        loc,
		Budget:          budget,
		PropertyDetails: req,
		Documents:       nonNil(docs),
		Developer:       dev,
		AdditionalNotes: notes,
		ContactInfo:     contact,
	}
}

func (DeveloperPreference) Variant() Variant { return VariantDeveloperPreference }
func (DeveloperPreference) Flow() model.Flow { return model.FlowPreference }
func (DeveloperPreference) TransactionType() model.TransactionType {
	return model.TransactionJointVenture
}
func (DeveloperPreference) sealed() {}

// Booking is the stay a guest wants
type Booking struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestCount   int    `json:"guestCount"`
}

// GuestPreference is a guest looking for a shortlet
type GuestPreference struct {
	Location        PreferenceLocation `json:"location"`
	Budget          Budget             `json:"budget"`
	PropertyDetails Requirements       `json:"propertyDetails"`
	BookingDetails  Booking            `json:"bookingDetails"`
	AdditionalNotes string             `json:"additionalNotes,omitempty"`
	ContactInfo     Contact            `json:"contactInfo"`
}

// NewGuestPreference creates a guest preference
func NewGuestPreference(loc PreferenceLocation, budget Budget, req Requirements, booking Booking, notes string, contact Contact) GuestPreference {
	req.LandSize = nil
	return GuestPreference{
		Location:        loc,
		Budget:          budget,
		PropertyDetails: req,
		BookingDetails:  booking,
		AdditionalNotes: notes,
		ContactInfo:     contact,
	}
}

func (GuestPreference) Variant() Variant                       { return VariantGuestPreference }
func (GuestPreference) Flow() model.Flow                       { return model.FlowPreference }
func (GuestPreference) TransactionType() model.TransactionType { return model.TransactionShortlet }
func (GuestPreference) sealed()                                {}
