package ports

import (
	"context"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

// Notifier delivers a notification about a newly created report to the
// configured destination. Delivery is best-effort: callers dispatch it
// asynchronously and only log failures.
type Notifier interface {
	Notify(ctx context.Context, report *domain.Report) error
}
