package ports

import (
	"context"

	"github.com/agencyops/backoffice/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
	AgencyID string
}

// AuthService defines registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
