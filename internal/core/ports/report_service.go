package ports

import (
	"context"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

// CreateReportInput carries the fields of a public report submission. Estado
// and timestamps are always assigned server-side, never taken from the caller.
type CreateReportInput struct {
	Solicitante string
	Categoria   string
	Componente  string
	Descripcion string
}

// UpdateReportInput is a partial update: nil fields are left unchanged.
type UpdateReportInput struct {
	Solicitante *string
	Categoria   *string
	Componente  *string
	Descripcion *string
	Estado      *string
}

// ReportService defines use-case operations for incident reports.
type ReportService interface {
	CreateReport(ctx context.Context, input CreateReportInput) (*domain.Report, error)
	ListReports(ctx context.Context) ([]*domain.Report, error)
	UpdateReport(ctx context.Context, id string, input UpdateReportInput) (*domain.Report, error)
	DeleteReport(ctx context.Context, id string) error
}
