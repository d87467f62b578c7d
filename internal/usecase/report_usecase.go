package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/report"
)

// --- Input DTOs ---

// SalesReportInput defines the parameters for a sales report.
type SalesReportInput struct {
	Period string

	// Anchor optionally pins the window to a specific date instead of now.
	Anchor *time.Time
}

// ReportUsecase defines the interface for sales reporting operations.
type ReportUsecase interface {
	// SalesReport resolves the requested period into a window and aggregates
	// the orders inside it.
	SalesReport(ctx context.Context, input *SalesReportInput) (*report.Summary, error)
}
