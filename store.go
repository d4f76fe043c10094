package decision

import (
	"context"
	"errors"
)

var ErrReportNotFound = errors.New("decision: report not found")

// Store defines the contract for persisting and retrieving validation reports.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Reports
	SaveReport(ctx context.Context, r *Report) (string, error)
	GetReport(ctx context.Context, reportID string) (*Report, error)
	ListReports(ctx context.Context, limit int) ([]Report, error)
	DeleteReport(ctx context.Context, reportID string) error
}
