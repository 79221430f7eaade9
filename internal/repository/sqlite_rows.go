package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
)

// SQLiteRowRepo implements RowRepo on the benefit_rows table. SaveRows is
// a delete-then-insert; run it inside a UnitOfWork when the overwrite must
// be atomic.
type SQLiteRowRepo struct {
	db db.DBTX
}

// NewSQLiteRowRepo creates a new SQLiteRowRepo.
func NewSQLiteRowRepo(db db.DBTX) *SQLiteRowRepo {
	return &SQLiteRowRepo{db: db}
}

func (r *SQLiteRowRepo) SaveRows(ctx context.Context, group string, rows []domain.DynamicRow) error {
	if !domain.ValidRowGroups[group] {
		return fmt.Errorf("unknown row group %q", group)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM benefit_rows WHERE group_name = ?`, group); err != nil {
		return storageErr("clearing rows for overwrite", err)
	}

	for i, row := range rows {
		fields, err := json.Marshal(row.Fields)
		if err != nil {
			return storageErr("encoding row fields", err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO benefit_rows (group_name, row_index, fields) VALUES (?, ?, ?)`,
			group, i, string(fields))
		if err != nil {
			return storageErr("inserting row", err)
		}
	}
	return nil
}

func (r *SQLiteRowRepo) LoadRows(ctx context.Context, group string) ([]domain.DynamicRow, error) {
	if !domain.ValidRowGroups[group] {
		return nil, fmt.Errorf("unknown row group %q", group)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT row_index, fields FROM benefit_rows WHERE group_name = ? ORDER BY row_index`, group)
	if err != nil {
		return nil, storageErr("listing rows", err)
	}
	defer rows.Close()

	out := []domain.DynamicRow{}
	for rows.Next() {
		var index int
		var fieldsJSON string
		if err := rows.Scan(&index, &fieldsJSON); err != nil {
			return nil, storageErr("scanning row", err)
		}
		fields := make(map[string]domain.FieldValue)
		if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
			return nil, storageErr("decoding row fields", err)
		}
		out = append(out, domain.DynamicRow{Group: group, Index: index, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating rows", err)
	}
	return out, nil
}

func (r *SQLiteRowRepo) ClearRows(ctx context.Context, group string) error {
	if !domain.ValidRowGroups[group] {
		return fmt.Errorf("unknown row group %q", group)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM benefit_rows WHERE group_name = ?`, group); err != nil {
		return storageErr("clearing rows", err)
	}
	return nil
}
