package repository

import (
	"context"

	"github.com/alexanderramin/triage/internal/domain"
)

// DraftRepo persists whole snapshots in two independent scopes. The
// session scope carries the editable draft between runs and is cleared on
// submit success or explicit clear; the durable scope holds only the last
// submitted payload for the confirmation view and never repopulates the
// editable form. Every write is a whole-value overwrite.
type DraftRepo interface {
	SaveSession(ctx context.Context, snap domain.FullSnapshot) error
	LoadSession(ctx context.Context) (domain.FullSnapshot, error)
	ClearSession(ctx context.Context) error
	SaveDurable(ctx context.Context, snap domain.FullSnapshot) error
	LoadDurable(ctx context.Context) (domain.FullSnapshot, error)
}

// RowRepo persists the ordered dynamic rows of each benefit group
// independently. Loading a group with no prior save yields an empty
// sequence, not an error.
type RowRepo interface {
	SaveRows(ctx context.Context, group string, rows []domain.DynamicRow) error
	LoadRows(ctx context.Context, group string) ([]domain.DynamicRow, error)
	ClearRows(ctx context.Context, group string) error
}
