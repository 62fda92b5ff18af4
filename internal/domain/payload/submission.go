package payload

import (
	"io"
	"time"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/oklog/ulid/v2"
)

// ReferencePrefix prefixes every submission reference
const ReferencePrefix = "PB-"

// Submission is the envelope handed to the external submission endpoint
type Submission struct {
	Reference       string                `json:"reference"`
	Flow            model.Flow            `json:"flow"`
	Variant         Variant               `json:"variant"`
	TransactionType model.TransactionType `json:"transactionType"`
	MatchedBriefID  string                `json:"matchedBriefId,omitempty"`
	Disclosure      string                `json:"disclosure,omitempty"`
	Payload         Payload               `json:"payload"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// NewSubmission wraps a payload. entropy feeds the ULID reference so tests can
// pin it.
func NewSubmission(p Payload, matchedBriefID, disclosure string, now time.Time, entropy io.Reader) Submission {
	id := ulid.MustNew(ulid.Timestamp(now), entropy)
	return Submission{
		Reference:       ReferencePrefix + id.String(),
		Flow:            p.Flow(),
		Variant:         p.Variant(),
		TransactionType: p.TransactionType(),
		MatchedBriefID:  matchedBriefID,
		Disclosure:      disclosure,
		Payload:         p,
		CreatedAt:       now.UTC(),
	}
}
