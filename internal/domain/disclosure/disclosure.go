// Package disclosure renders the commission and consent sentence a submitter
// accepts before a brief is sent. Output is a pure function of its inputs.
package disclosure

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/pkg/amount"
)

// AgentRentText is shown to agents listing rentals regardless of the rate table
const AgentRentText = "As an agent listing a rental, you will not be charged any commission on this brief. Any fee you agree with the landlord or tenant remains yours."

// fallbackName stands in for a blank submitter name
const fallbackName = "the submitter"

var (
	// ErrUnknownTransaction indicates a transaction type without a template
	ErrUnknownTransaction = errors.New("disclosure: unknown transaction type")

	// ErrUnknownRole indicates a role without a template
	ErrUnknownRole = errors.New("disclosure: unknown submitter role")

	// ErrNoRate indicates the rate table has no entry for the transaction type
	ErrNoRate = errors.New("disclosure: no rate for transaction type")
)

// Rates are the commission percentages for one transaction type
type Rates struct {
	Owner float64 `json:"owner" yaml:"owner"`
	Agent float64 `json:"agent" yaml:"agent"`
}

// RateTable maps transaction types to their rates
type RateTable map[model.TransactionType]Rates

// DefaultRates is used when no rate file is configured
func DefaultRates() RateTable {
	return RateTable{
		model.TransactionSale:         {Owner: 10, Agent: 50},
		model.TransactionRent:         {Owner: 10, Agent: 0},
		model.TransactionJointVenture: {Owner: 10, Agent: 50},
		model.TransactionShortlet:     {Owner: 7, Agent: 7},
	}
}

// Validate checks every rate is a percentage
func (t RateTable) Validate() error {
	for tx, r := range t {
		if !tx.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownTransaction, tx)
		}
		if r.Owner < 0 || r.Owner > 100 || r.Agent < 0 || r.Agent > 100 {
			return fmt.Errorf("disclosure: rates for %s must be between 0 and 100", tx)
		}
	}
	return nil
}

// Generate returns the disclosure sentence. Owners get one of three templates
// (sale and joint venture, rent, shortlet) with the owner rate. Agents get the
// fixed zero-commission sentence for rent and the agent rate otherwise.
func Generate(tx model.TransactionType, role model.SubmitterRole, name string, rates RateTable) (string, error) {
	if !tx.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransaction, tx)
	}
	if !role.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if role == model.RoleAgent && tx == model.TransactionRent {
		return AgentRentText, nil
	}

	r, ok := rates[tx]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRate, tx)
	}
	who := NormalizeName(name)
	if who == "" {
		who = fallbackName
	}

	if role == model.RoleAgent {
		return fmt.Sprintf("I, %s, confirm that I am authorised to market this property and agree to share %s of the commission I earn on a successful %s.",
			who, percent(r.Agent), tx.Label()), nil
	}

	switch tx {
	case model.TransactionRent:
		return fmt.Sprintf("I, %s, confirm that I own this property and agree to a commission of %s of the first year's rent once a tenant is secured.",
			who, percent(r.Owner)), nil
	case model.TransactionShortlet:
		return fmt.Sprintf("I, %s, confirm that I own this shortlet and agree that %s of every completed booking is retained as a service fee.",
			who, percent(r.Owner)), nil
	default:
		return fmt.Sprintf("I, %s, confirm that I own this property and agree to a commission of %s of the transaction value on a successful %s.",
			who, percent(r.Owner), tx.Label()), nil
	}
}

// NormalizeName applies NFKC and collapses whitespace runs
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(name)), " ")
}

func percent(rate float64) string {
	return amount.FormatDecimal(rate) + "%"
}
