package ports

import (
	"context"

	"github.com/unerg-ais/reporting-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// EnsureBootstrapAdmin creates the well-known "admin" account with the
	// given password when no such account exists yet.
	EnsureBootstrapAdmin(ctx context.Context, password string) error
}
