package model

import (
	"fmt"
	"strings"
)

// Flow identifies which submission wizard is running
type Flow string

const (
	FlowBrief      Flow = "brief"
	FlowPreference Flow = "preference"
)

// String returns the string representation
func (f Flow) String() string {
	return string(f)
}

// IsValid validates the flow
func (f Flow) IsValid() bool {
	switch f {
	case FlowBrief, FlowPreference:
		return true
	default:
		return false
	}
}

// TransactionType is the primary discriminator of every submission
type TransactionType string

const (
	TransactionSale         TransactionType = "sale"
	TransactionRent         TransactionType = "rent"
	TransactionJointVenture TransactionType = "joint-venture"
	TransactionShortlet     TransactionType = "shortlet"
)

// AllTransactionTypes lists transaction types in display order
var AllTransactionTypes = []TransactionType{
	TransactionSale,
	TransactionRent,
	TransactionJointVenture,
	TransactionShortlet,
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// IsValid validates the transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSale, TransactionRent, TransactionJointVenture, TransactionShortlet:
		return true
	default:
		return false
	}
}

// Label returns the human readable noun used in disclosure sentences
func (t TransactionType) Label() string {
	switch t {
	case TransactionSale:
		return "sale"
	case TransactionRent:
		return "rental"
	case TransactionJointVenture:
		return "joint venture"
	case TransactionShortlet:
		return "shortlet"
	default:
		return string(t)
	}
}

// PropertyCategory is the secondary top-level discriminator
type PropertyCategory string

const (
	CategoryResidential      PropertyCategory = "residential"
	CategoryCommercial       PropertyCategory = "commercial"
	CategoryLand             PropertyCategory = "land"
	CategoryMixedDevelopment PropertyCategory = "mixed-development"
)

// String returns the string representation
func (c PropertyCategory) String() string {
	return string(c)
}

// IsValid validates the category without regard to transaction type
func (c PropertyCategory) IsValid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryLand, CategoryMixedDevelopment:
		return true
	default:
		return false
	}
}

// IsBuilt reports whether the category describes a standing building
func (c PropertyCategory) IsBuilt() bool {
	return c == CategoryResidential || c == CategoryCommercial
}

// CategoriesFor returns the categories a transaction type accepts
func CategoriesFor(t TransactionType) []PropertyCategory {
	switch t {
	case TransactionSale, TransactionRent:
		return []PropertyCategory{CategoryResidential, CategoryCommercial, CategoryLand}
	case TransactionJointVenture:
		return []PropertyCategory{CategoryResidential, CategoryCommercial, CategoryLand, CategoryMixedDevelopment}
	case TransactionShortlet:
		return []PropertyCategory{CategoryResidential, CategoryCommercial}
	default:
		return nil
	}
}

// AcceptsCategory checks if the category is valid for the transaction type
func (t TransactionType) AcceptsCategory(c PropertyCategory) bool {
	for _, allowed := range CategoriesFor(t) {
		if allowed == c {
			return true
		}
	}
	return false
}

// RentalType distinguishes plain rentals from leases
type RentalType string

const (
	RentalRent  RentalType = "rent"
	RentalLease RentalType = "lease"
)

// String returns the string representation
func (r RentalType) String() string {
	return string(r)
}

// IsValid validates the rental type
func (r RentalType) IsValid() bool {
	return r == RentalRent || r == RentalLease
}

// SubmitterRole is who is filling in the form
type SubmitterRole string

const (
	RoleOwner SubmitterRole = "owner"
	RoleAgent SubmitterRole = "agent"
)

// String returns the string representation
func (r SubmitterRole) String() string {
	return string(r)
}

// IsValid validates the role
func (r SubmitterRole) IsValid() bool {
	return r == RoleOwner || r == RoleAgent
}

// DiscriminatorKind names one slot of the discriminator set
type DiscriminatorKind string

const (
	DiscriminatorTransactionType  DiscriminatorKind = "transactionType"
	DiscriminatorPropertyCategory DiscriminatorKind = "propertyCategory"
	DiscriminatorRentalType       DiscriminatorKind = "rentalType"
	DiscriminatorRole             DiscriminatorKind = "submitterRole"
)

// IsValid validates the discriminator kind
func (k DiscriminatorKind) IsValid() bool {
	switch k {
	case DiscriminatorTransactionType, DiscriminatorPropertyCategory, DiscriminatorRentalType, DiscriminatorRole:
		return true
	default:
		return false
	}
}

// Discriminators is the set of top-level choices every downstream decision reads.
// Zero values mean "not chosen yet".
type Discriminators struct {
	Flow             Flow             `json:"flow" yaml:"flow"`
	TransactionType  TransactionType  `json:"transactionType,omitempty" yaml:"transactionType,omitempty"`
	PropertyCategory PropertyCategory `json:"propertyCategory,omitempty" yaml:"propertyCategory,omitempty"`
	RentalType       RentalType       `json:"rentalType,omitempty" yaml:"rentalType,omitempty"`
	Role             SubmitterRole    `json:"submitterRole,omitempty" yaml:"submitterRole,omitempty"`
}

// With returns a copy with one slot replaced. The value is validated against the slot.
func (d Discriminators) With(kind DiscriminatorKind, value string) (Discriminators, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case DiscriminatorTransactionType:
		t := TransactionType(value)
		if value != "" && !t.IsValid() {
			return d, fmt.Errorf("invalid transaction type: %q", value)
		}
		d.TransactionType = t
	case DiscriminatorPropertyCategory:
		c := PropertyCategory(value)
		if value != "" && !c.IsValid() {
			return d, fmt.Errorf("invalid property category: %q", value)
		}
		d.PropertyCategory = c
	case DiscriminatorRentalType:
		r := RentalType(value)
		if value != "" && !r.IsValid() {
			return d, fmt.Errorf("invalid rental type: %q", value)
		}
		d.RentalType = r
	case DiscriminatorRole:
		r := SubmitterRole(value)
		if value != "" && !r.IsValid() {
			return d, fmt.Errorf("invalid submitter role: %q", value)
		}
		d.Role = r
	default:
		return d, fmt.Errorf("unknown discriminator: %q", kind)
	}
	return d.Normalize(), nil
}

// Normalize drops second-order choices the primary choices no longer allow:
// rental type only exists for rent, and the category must be accepted by the
// transaction type.
func (d Discriminators) Normalize() Discriminators {
	if d.TransactionType != TransactionRent {
		d.RentalType = ""
	}
	if d.TransactionType != "" && d.PropertyCategory != "" && !d.TransactionType.AcceptsCategory(d.PropertyCategory) {
		d.PropertyCategory = ""
	}
	return d
}

// Changed lists the slots that differ between d and other
func (d Discriminators) Changed(other Discriminators) []DiscriminatorKind {
	var kinds []DiscriminatorKind
	if d.TransactionType != other.TransactionType {
		kinds = append(kinds, DiscriminatorTransactionType)
	}
	if d.PropertyCategory != other.PropertyCategory {
		kinds = append(kinds, DiscriminatorPropertyCategory)
	}
	if d.RentalType != other.RentalType {
		kinds = append(kinds, DiscriminatorRentalType)
	}
	if d.Role != other.Role {
		kinds = append(kinds, DiscriminatorRole)
	}
	return kinds
}
