package postgres

import (
	"context"

	"github.com/pkg/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS validation_reports (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL,
    valid      BOOLEAN NOT NULL,
    node_count INTEGER NOT NULL DEFAULT 0,
    edge_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS validation_diagnostics (
    report_id TEXT NOT NULL REFERENCES validation_reports(id) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    severity  TEXT NOT NULL,
    message   TEXT NOT NULL,
    PRIMARY KEY (report_id, position)
);

CREATE INDEX IF NOT EXISTS idx_validation_reports_created ON validation_reports(created_at DESC);
`

// CreateSchema creates the report tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return errors.Wrap(err, "decision: create schema")
}

// DropSchema drops the report tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS validation_diagnostics, validation_reports CASCADE;`)
	return errors.Wrap(err, "decision: drop schema")
}
