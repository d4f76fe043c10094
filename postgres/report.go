package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meikuraledutech/decision"
	"github.com/pkg/errors"
)

// SaveReport stores a report and its diagnostics in one transaction.
// If r.ID is empty, a UUID is generated and written back to r.
// Returns the report ID.
func (s *PGStore) SaveReport(ctx context.Context, r *decision.Report) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", errors.Wrap(err, "decision: begin tx")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO validation_reports (id, source, valid, node_count, edge_count, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.Source, r.Valid, r.NodeCount, r.EdgeCount, r.CreatedAt,
	); err != nil {
		return "", errors.Wrapf(err, "decision: insert report %s", r.ID)
	}

	for i, d := range r.Diagnostics {
		if _, err := tx.Exec(ctx,
			`INSERT INTO validation_diagnostics (report_id, position, severity, message) VALUES ($1, $2, $3, $4)`,
			r.ID, i, string(d.Severity), d.Message,
		); err != nil {
			return "", errors.Wrapf(err, "decision: insert diagnostic %d", i)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", errors.Wrap(err, "decision: commit")
	}
	return r.ID, nil
}

// GetReport fetches a report with its diagnostics in their original order.
// Returns decision.ErrReportNotFound if no such report exists.
func (s *PGStore) GetReport(ctx context.Context, reportID string) (*decision.Report, error) {
	r := decision.Report{Diagnostics: []decision.Diagnostic{}}
	err := s.db.QueryRow(ctx,
		`SELECT id, source, valid, node_count, edge_count, created_at FROM validation_reports WHERE id = $1`, reportID,
	).Scan(&r.ID, &r.Source, &r.Valid, &r.NodeCount, &r.EdgeCount, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, decision.ErrReportNotFound
		}
		return nil, errors.Wrap(err, "decision: get report")
	}

	rows, err := s.db.Query(ctx,
		`SELECT severity, message FROM validation_diagnostics WHERE report_id = $1 ORDER BY position`, reportID)
	if err != nil {
		return nil, errors.Wrap(err, "decision: query diagnostics")
	}
	defer rows.Close()

	for rows.Next() {
		var d decision.Diagnostic
		var severity string
		if err := rows.Scan(&severity, &d.Message); err != nil {
			return nil, errors.Wrap(err, "decision: scan diagnostic")
		}
		d.Severity = decision.Severity(severity)
		r.Diagnostics = append(r.Diagnostics, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "decision: rows diagnostics")
	}

	return &r, nil
}

// ListReports returns the most recent reports, newest first, without their
// diagnostics. Returns an empty slice (not nil) if none found.
func (s *PGStore) ListReports(ctx context.Context, limit int) ([]decision.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, source, valid, node_count, edge_count, created_at FROM validation_reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "decision: list reports")
	}
	defer rows.Close()

	reports := []decision.Report{}
	for rows.Next() {
		var r decision.Report
		if err := rows.Scan(&r.ID, &r.Source, &r.Valid, &r.NodeCount, &r.EdgeCount, &r.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "decision: scan report")
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "decision: rows reports")
	}

	return reports, nil
}

// DeleteReport removes a report. Diagnostics are cascade-deleted by the DB.
// No error if the report doesn't exist.
func (s *PGStore) DeleteReport(ctx context.Context, reportID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM validation_reports WHERE id = $1`, reportID)
	return errors.Wrap(err, "decision: delete report")
}
