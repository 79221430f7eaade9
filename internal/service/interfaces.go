package service

import (
	"context"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/form"
	"github.com/alexanderramin/triage/internal/gateway"
	"github.com/alexanderramin/triage/internal/signature"
)

// DraftState is the rebuilt view after any edit: both snapshot
// projections, the current classification, and any non-fatal storage
// warnings accumulated while persisting. Warnings never imply lost
// in-memory answers.
type DraftState struct {
	Full     domain.FullSnapshot
	Share    domain.ShareSnapshot
	Result   domain.ClassificationResult
	Warnings []string
}

// DraftService owns the edit pipeline: every mutation flows through
// apply → rebuild → reclassify → session-save, in that order, with a
// single writer per phase.
type DraftService interface {
	// Load rehydrates the session draft and row groups; absent state
	// yields a fresh form.
	Load(ctx context.Context) (*DraftState, error)

	// ApplyEdit dispatches one FieldEdited event through the pipeline.
	ApplyEdit(ctx context.Context, ev form.FieldEdited) (*DraftState, error)

	// AddRow appends an empty dynamic row and returns its index.
	AddRow(ctx context.Context, group string) (int, *DraftState, error)

	// Sign attaches a marked signature pad under the given field key.
	Sign(ctx context.Context, key string, pad *signature.Pad) (*DraftState, error)

	// Resume replaces the draft with fields decoded from a share link.
	// Malformed fields are skipped individually.
	Resume(ctx context.Context, link string) (*DraftState, error)

	// Link renders the current share snapshot as a resumable URL.
	Link(ctx context.Context) (string, error)

	// Clear resets the draft and both storage row groups.
	Clear(ctx context.Context) (*DraftState, error)
}

// SubmitOutcome is a successful submission plus any non-fatal storage
// warnings raised while sequencing the post-Ack bookkeeping.
type SubmitOutcome struct {
	Ack      *gateway.Ack
	Warnings []string
}

// SubmitService sends the full snapshot and, on Ack, performs exactly one
// durable-save, one session-clear, and disables further submission, in
// that order. At most one submission is in flight at a time.
type SubmitService interface {
	Submit(ctx context.Context, snap domain.FullSnapshot) (*SubmitOutcome, error)

	// Submitted reports whether a submission already succeeded; the
	// submit action stays disabled afterwards.
	Submitted() bool

	// Confirmation returns the durably stored post-submission payload.
	Confirmation(ctx context.Context) (domain.FullSnapshot, error)
}
