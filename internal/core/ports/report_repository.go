package ports

import (
	"context"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

// ReportRepository defines persistence operations for incident reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	// List returns every report ordered by created_at descending. The result
	// is fully materialized; callers never receive a cursor.
	List(ctx context.Context) ([]*domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	// Update overwrites the mutable fields of the report identified by r.ID
	// and returns the stored record. Last write wins on concurrent updates.
	Update(ctx context.Context, r *domain.Report) (*domain.Report, error)
	Delete(ctx context.Context, id string) error
}
