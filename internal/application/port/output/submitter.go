package output

import (
	"context"
	"time"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
)

// Submitter is the external submission endpoint. It accepts one submission
// and reports success or failure; it never retries.
type Submitter interface {
	Submit(ctx context.Context, sub payload.Submission) (*Receipt, error)
}

// Receipt confirms an accepted submission
type Receipt struct {
	Reference   string    // Submission reference (PB-<ULID>)
	Destination string    // Where it went: an URL or an outbox file path
	RemoteID    string    // ID assigned by the remote endpoint, if any
	AcceptedAt  time.Time // When the submitter accepted it
}
