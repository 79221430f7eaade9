package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
)

const (
	scopeSession = "session"
	scopeDurable = "durable"
)

// SQLiteDraftRepo implements DraftRepo on the snapshots table.
type SQLiteDraftRepo struct {
	db db.DBTX
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo.
func NewSQLiteDraftRepo(db db.DBTX) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: db}
}

func (r *SQLiteDraftRepo) SaveSession(ctx context.Context, snap domain.FullSnapshot) error {
	return r.save(ctx, scopeSession, snap)
}

func (r *SQLiteDraftRepo) LoadSession(ctx context.Context) (domain.FullSnapshot, error) {
	return r.load(ctx, scopeSession)
}

func (r *SQLiteDraftRepo) ClearSession(ctx context.Context) error {
	query := `DELETE FROM snapshots WHERE scope = ?`
	if _, err := r.db.ExecContext(ctx, query, scopeSession); err != nil {
		return storageErr("clearing session snapshot", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) SaveDurable(ctx context.Context, snap domain.FullSnapshot) error {
	return r.save(ctx, scopeDurable, snap)
}

func (r *SQLiteDraftRepo) LoadDurable(ctx context.Context) (domain.FullSnapshot, error) {
	return r.load(ctx, scopeDurable)
}

func (r *SQLiteDraftRepo) save(ctx context.Context, scope string, snap domain.FullSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return storageErr("encoding "+scope+" snapshot", err)
	}

	query := `INSERT INTO snapshots (scope, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`
	_, err = r.db.ExecContext(ctx, query, scope, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return storageErr("saving "+scope+" snapshot", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) load(ctx context.Context, scope string) (domain.FullSnapshot, error) {
	var payload string
	query := `SELECT payload FROM snapshots WHERE scope = ?`
	err := r.db.QueryRowContext(ctx, query, scope).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("loading "+scope+" snapshot", err)
	}

	var snap domain.FullSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, storageErr("decoding "+scope+" snapshot", err)
	}
	return snap, nil
}
