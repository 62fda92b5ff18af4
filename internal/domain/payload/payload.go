// Package payload holds the submission payload variants. Each transaction type
// of each flow has its own struct and constructor; groups that depend on the
// property category are pointers tagged omitempty so hidden groups are absent
// from the JSON rather than null.
package payload

import (
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
)

// Variant tags the payload shape
type Variant string

const (
	VariantSaleBrief           Variant = "sale-brief"
	VariantRentBrief           Variant = "rent-brief"
	VariantJointVentureBrief   Variant = "joint-venture-brief"
	VariantShortletBrief       Variant = "shortlet-brief"
	VariantBuyerPreference     Variant = "buyer-preference"
	VariantTenantPreference    Variant = "tenant-preference"
	VariantDeveloperPreference Variant = "developer-preference"
	VariantGuestPreference     Variant = "guest-preference"
)

// String returns string representation
func (v Variant) String() string {
	return string(v)
}

// Payload is the sealed union of submission shapes
type Payload interface {
	Variant() Variant
	Flow() model.Flow
	TransactionType() model.TransactionType
	sealed()
}

// Reader exposes field values to the builder
type Reader interface {
	Value(id field.ID) field.Value
}

// Location is a single brief location
type Location struct {
	State           string `json:"state"`
	LocalGovernment string `json:"localGovernment"`
	Area            string `json:"area"`
}

// Contact identifies the submitter
type Contact struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// LandSize is a size with its unit
type LandSize struct {
	Size            float64 `json:"size"`
	MeasurementType string  `json:"measurementType"`
}

// Building describes a built property
type Building struct {
	PropertyCondition string `json:"propertyCondition"`
	TypeOfBuilding    string `json:"typeOfBuilding"`
	Bedrooms          int    `json:"bedrooms"`
}

// PropertyDetails is the generic description carried by sale, rent and
// joint-venture briefs
type PropertyDetails struct {
	Category model.PropertyCategory `json:"category"`
	Building *Building              `json:"building,omitempty"`
	LandSize *LandSize              `json:"landSize,omitempty"`
	Features []string               `json:"features,omitempty"`
}
