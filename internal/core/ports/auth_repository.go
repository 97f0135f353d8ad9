package ports

import (
	"context"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

// AuthRepository defines the interface for administrator credential persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
