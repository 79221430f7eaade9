package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/gateway"
	"github.com/alexanderramin/triage/internal/repository"
)

type submitService struct {
	gateway gateway.Client
	drafts  repository.DraftRepo
	rows    repository.RowRepo

	mu        sync.Mutex
	inFlight  bool
	submitted bool
}

// NewSubmitService creates the submission sequencer.
func NewSubmitService(gw gateway.Client, drafts repository.DraftRepo, rows repository.RowRepo) SubmitService {
	return &submitService{gateway: gw, drafts: drafts, rows: rows}
}

func (s *submitService) Submit(ctx context.Context, snap domain.FullSnapshot) (*SubmitOutcome, error) {
	s.mu.Lock()
	if s.submitted {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	ack, err := s.gateway.Submit(ctx, snap)
	if err != nil {
		// Failure leaves all prior state untouched; the user may retry.
		return nil, err
	}

	outcome := &SubmitOutcome{Ack: ack}

	// Post-Ack sequencing: durable-save, session-clear, disable. Storage
	// trouble here must not un-succeed the submission.
	if err := s.drafts.SaveDurable(ctx, snap); err != nil {
		outcome.Warnings = append(outcome.Warnings, warn("saving confirmation", err))
	}
	if err := s.drafts.ClearSession(ctx); err != nil {
		outcome.Warnings = append(outcome.Warnings, warn("clearing session draft", err))
	}
	for group := range domain.ValidRowGroups {
		if err := s.rows.ClearRows(ctx, group); err != nil {
			outcome.Warnings = append(outcome.Warnings, warn("clearing rows", err))
		}
	}

	s.mu.Lock()
	s.submitted = true
	s.mu.Unlock()

	return outcome, nil
}

func (s *submitService) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

func (s *submitService) Confirmation(ctx context.Context) (domain.FullSnapshot, error) {
	return s.drafts.LoadDurable(ctx)
}
