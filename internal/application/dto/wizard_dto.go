package dto

import "time"

// SubmissionResult is the outcome of a successful submission
type SubmissionResult struct {
	Reference   string    `json:"reference"`
	Variant     string    `json:"variant"`
	Destination string    `json:"destination"`
	RemoteID    string    `json:"remoteId,omitempty"`
	Disclosure  string    `json:"disclosure,omitempty"`
	AcceptedAt  time.Time `json:"acceptedAt"`
}

// FieldDTO describes one field for renderers
type FieldDTO struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Value    any      `json:"value"`
	Display  string   `json:"display,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// StepDTO is one step of the active step set
type StepDTO struct {
	Index  int        `json:"index"`
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Fields []FieldDTO `json:"fields"`
}

// WizardDTO is a snapshot of a wizard session for renderers
type WizardDTO struct {
	ID                  string            `json:"id"`
	Flow                string            `json:"flow"`
	Discriminators      map[string]string `json:"discriminators"`
	DiscriminatorErrors map[string]string `json:"discriminatorErrors,omitempty"`
	CurrentStep         int               `json:"currentStep"`
	FurthestVisitedStep int               `json:"furthestVisitedStep"`
	StepCount           int               `json:"stepCount"`
	Ready               bool              `json:"ready"`
	Submitting          bool              `json:"submitting"`
	CanAdvance          bool              `json:"canAdvance"`
	CanGoBack           bool              `json:"canGoBack"`
	MatchedBriefID      string            `json:"matchedBriefId,omitempty"`
	Step                StepDTO           `json:"step"`
}

// EventInput is the wire form of one wizard event, shared by the HTTP API
// and CLI event scripts
type EventInput struct {
	Type           string            `json:"type" yaml:"type"`
	Kind           string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Field          string            `json:"field,omitempty" yaml:"field,omitempty"`
	Value          any               `json:"value,omitempty" yaml:"value,omitempty"`
	Target         int               `json:"target,omitempty" yaml:"target,omitempty"`
	MatchedBriefID string            `json:"matchedBriefId,omitempty" yaml:"matchedBriefId,omitempty"`
	Discriminators map[string]string `json:"discriminators,omitempty" yaml:"discriminators,omitempty"`
}
