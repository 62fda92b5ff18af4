package submission

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/YoshitsuguKoike/propbrief/internal/app"
	"github.com/YoshitsuguKoike/propbrief/internal/application/dto"
	"github.com/YoshitsuguKoike/propbrief/internal/application/port/output"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// SubmitUseCase hands a completed wizard to the submitter.
// The wizard is read-only while the call is in flight, reset on success and
// left untouched on failure. There is no retry.
type SubmitUseCase struct {
	submitter output.Submitter
	rates     disclosure.RateTable
	logger    app.Logger

	Now  func() time.Time // Time provider (for testing)
	Rand io.Reader        // Random source for ULID generation (for testing)

	mu sync.Mutex // guards Rand
}

// NewSubmitUseCase creates a new SubmitUseCase
func NewSubmitUseCase(submitter output.Submitter, rates disclosure.RateTable, logger app.Logger) *SubmitUseCase {
	if logger == nil {
		logger = app.NopLogger{}
	}
	return &SubmitUseCase{
		submitter: submitter,
		rates:     rates,
		logger:    logger,
		Now:       time.Now,
		Rand:      ulid.DefaultEntropy(),
	}
}

// Disclosure renders the disclosure text for a state. Preferences carry no
// commission and get an empty text.
func (u *SubmitUseCase) Disclosure(st wizard.State) (string, error) {
	d := st.Discriminators
	if d.Flow != model.FlowBrief {
		return "", nil
	}
	return disclosure.Generate(d.TransactionType, d.Role, st.Values.Value(field.FullName).TextValue(), u.rates)
}

// Execute submits the session's final payload
func (u *SubmitUseCase) Execute(ctx context.Context, sess *wizard.Session) (*dto.SubmissionResult, error) {
	p, st, err := sess.BeginSubmit()
	if err != nil {
		return nil, err
	}
	succeeded := false
	defer func() { sess.EndSubmit(succeeded) }()

	text, err := u.Disclosure(st)
	if err != nil {
		return nil, fmt.Errorf("failed to render disclosure: %w", err)
	}

	sub := u.newSubmission(p, st.MatchedBriefID, text)
	u.logger.Debug("submitting %s (%s)", sub.Reference, sub.Variant)

	receipt, err := u.submitter.Submit(ctx, sub)
	if err != nil {
		u.logger.Warn("submission %s failed, wizard kept: %v", sub.Reference, err)
		return nil, &SubmissionError{Reference: sub.Reference, Err: err}
	}
	succeeded = true
	u.logger.Info("submission %s accepted at %s", receipt.Reference, receipt.Destination)

	return &dto.SubmissionResult{
		Reference:   receipt.Reference,
		Variant:     string(sub.Variant),
		Destination: receipt.Destination,
		RemoteID:    receipt.RemoteID,
		Disclosure:  text,
		AcceptedAt:  receipt.AcceptedAt,
	}, nil
}

func (u *SubmitUseCase) newSubmission(p payload.Payload, matchedBriefID, text string) payload.Submission {
	u.mu.Lock()
	defer u.mu.Unlock()
	return payload.NewSubmission(p, matchedBriefID, text, u.Now(), u.Rand)
}

// SubmissionError is a failed submission. The wizard state is preserved so the caller
// can retry without re-entering data.
type SubmissionError struct {
	Reference string
	Err       error
}

// Error implements the error interface
func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s failed: %v", e.Reference, e.Err)
}

// Unwrap returns the submitter error
func (e *SubmissionError) Unwrap() error {
	return e.Err
}
