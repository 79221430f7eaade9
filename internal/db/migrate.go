package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the draft-store schema. Statements are idempotent so
// Migrate can run on every open.
//
// snapshots keeps at most one payload per storage scope: the session scope
// carries the editable draft between runs, the durable scope the last
// submitted confirmation. benefit_rows keeps the ordered dynamic rows per
// group, keyed by position.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		scope    TEXT PRIMARY KEY
		         CHECK(scope IN ('session','durable')),
		payload  TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS benefit_rows (
		group_name TEXT NOT NULL
		           CHECK(group_name IN ('financialBenefits','nonFinancialBenefits')),
		row_index  INTEGER NOT NULL,
		fields     TEXT NOT NULL,
		PRIMARY KEY (group_name, row_index)
	)`,
}

// Migrate applies all schema statements.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
