package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/triage/internal/classify"
	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/form"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/signature"
	"github.com/alexanderramin/triage/internal/snapshot"
)

type draftService struct {
	reg     *form.Registry
	pads    map[string]*signature.Pad
	table   classify.ScoringTable
	drafts  repository.DraftRepo
	rows    repository.RowRepo
	uow     db.UnitOfWork
	formURL string
	loaded  bool
}

// NewDraftService creates the edit pipeline around an empty registry.
// formURL is the base of generated share links.
func NewDraftService(table classify.ScoringTable, drafts repository.DraftRepo, rows repository.RowRepo, uow db.UnitOfWork, formURL string) DraftService {
	return &draftService{
		reg:     form.NewRegistry(),
		pads:    make(map[string]*signature.Pad),
		table:   table,
		drafts:  drafts,
		rows:    rows,
		uow:     uow,
		formURL: formURL,
	}
}

func (s *draftService) Load(ctx context.Context) (*DraftState, error) {
	var warnings []string
	if !s.loaded {
		warnings = s.rehydrate(ctx)
		s.loaded = true
	}
	// Reads never write back; only edits persist.
	state := s.build()
	state.Warnings = append(warnings, state.Warnings...)
	return state, nil
}

func (s *draftService) ApplyEdit(ctx context.Context, ev form.FieldEdited) (*DraftState, error) {
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	if err := s.reg.Apply(ev); err != nil {
		return nil, err
	}
	return s.rebuild(ctx), nil
}

func (s *draftService) AddRow(ctx context.Context, group string) (int, *DraftState, error) {
	if _, err := s.Load(ctx); err != nil {
		return 0, nil, err
	}
	index, err := s.reg.AddRow(group)
	if err != nil {
		return 0, nil, err
	}
	return index, s.rebuild(ctx), nil
}

func (s *draftService) Sign(ctx context.Context, key string, pad *signature.Pad) (*DraftState, error) {
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	s.pads[key] = pad
	return s.rebuild(ctx), nil
}

func (s *draftService) Resume(ctx context.Context, link string) (*DraftState, error) {
	share := snapshot.DecodeShareLink(link)

	s.reg.Clear()
	s.pads = make(map[string]*signature.Pad)
	s.loaded = true
	for key, raw := range share {
		// Per-field skip: one bad key never aborts the resume.
		_ = s.reg.Apply(form.FieldEdited{Key: key, Value: form.ValueFor(key, raw)})
	}
	return s.rebuild(ctx), nil
}

func (s *draftService) Link(ctx context.Context) (string, error) {
	if _, err := s.Load(ctx); err != nil {
		return "", err
	}
	_, share := snapshot.Build(s.reg, s.pads)
	return snapshot.EncodeShareURL(s.formURL, share), nil
}

func (s *draftService) Clear(ctx context.Context) (*DraftState, error) {
	s.reg.Clear()
	s.pads = make(map[string]*signature.Pad)
	s.loaded = true

	var warnings []string
	if err := s.drafts.ClearSession(ctx); err != nil {
		warnings = append(warnings, warn("clearing session draft", err))
	}
	for group := range domain.ValidRowGroups {
		if err := s.rows.ClearRows(ctx, group); err != nil {
			warnings = append(warnings, warn("clearing rows", err))
		}
	}

	// No rebuild here: clearing must leave the session scope empty
	// rather than write back an empty snapshot.
	state := s.build()
	state.Warnings = warnings
	return state, nil
}

// rehydrate loads persisted rows and the session snapshot into the
// registry. Storage trouble degrades to a fresh in-memory form.
func (s *draftService) rehydrate(ctx context.Context) []string {
	var warnings []string

	for group := range domain.ValidRowGroups {
		rows, err := s.rows.LoadRows(ctx, group)
		if err != nil {
			warnings = append(warnings, warn("loading saved rows", err))
			continue
		}
		_ = s.reg.SetRows(group, rows)
	}

	snap, err := s.drafts.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			warnings = append(warnings, warn("loading session draft", err))
		}
		return warnings
	}
	for key, raw := range snap {
		_ = s.reg.Apply(form.FieldEdited{Key: key, Value: form.ValueFor(key, raw)})
	}
	return warnings
}

// build derives snapshots and the classification from the registry
// without touching storage.
func (s *draftService) build() *DraftState {
	full, share := snapshot.Build(s.reg, s.pads)
	flags := classify.SectionFlags{LegislativeImpact: s.reg.Bool("legislativeImpact")}
	result := classify.Classify(s.reg.Answers(), flags, s.table)
	return &DraftState{Full: full, Share: share, Result: result}
}

// rebuild runs the synchronous tail of the pipeline: snapshots,
// classification, session persistence. It never fails; persistence
// trouble becomes a warning and the in-memory state stands.
func (s *draftService) rebuild(ctx context.Context) *DraftState {
	state := s.build()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDrafts := repository.NewSQLiteDraftRepo(tx)
		txRows := repository.NewSQLiteRowRepo(tx)

		if err := txDrafts.SaveSession(ctx, state.Full); err != nil {
			return err
		}
		for group := range domain.ValidRowGroups {
			if err := txRows.SaveRows(ctx, group, s.reg.Rows(group)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		state.Warnings = append(state.Warnings, warn("saving session draft", err))
	}

	return state
}

func warn(op string, err error) string {
	return fmt.Sprintf("%s: %v (continuing in memory)", op, err)
}
