package submitter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
	"github.com/YoshitsuguKoike/propbrief/internal/application/port/output"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/payload"
	"github.com/YoshitsuguKoike/propbrief/internal/infra/persistence/file"
)

// OutboxSubmitter writes each submission to <dir>/<reference>.json for a
// separate process to deliver
type OutboxSubmitter struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewOutboxSubmitter creates an OutboxSubmitter
func NewOutboxSubmitter(fs afero.Fs, dir string) *OutboxSubmitter {
	return &OutboxSubmitter{fs: fs, dir: dir, now: time.Now}
}

// Submit writes one submission. A reference that already exists is rejected.
func (s *OutboxSubmitter) Submit(ctx context.Context, sub payload.Submission) (*output.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sub.Reference == "" {
		return nil, fmt.Errorf("submission has no reference")
	}

	path := filepath.Join(s.dir, sub.Reference+".json")
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return nil, fmt.Errorf("submission %s already in outbox", sub.Reference)
	}

	if err := file.WriteJSONAtomic(s.fs, path, sub); err != nil {
		return nil, err
	}
	return &output.Receipt{
		Reference:   sub.Reference,
		Destination: path,
		AcceptedAt:  s.now().UTC(),
	}, nil
}

// New picks the submitter from configuration: the HTTP endpoint when one is
// set, the outbox otherwise
func New(cfg config.Config, fs afero.Fs) output.Submitter {
	if cfg.SubmitEndpoint() != "" {
		return NewHTTPSubmitter(nil, cfg.SubmitEndpoint(), cfg.SubmitTimeout())
	}
	return NewOutboxSubmitter(fs, cfg.OutboxDir())
}
