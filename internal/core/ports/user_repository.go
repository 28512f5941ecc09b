package ports

import (
	"context"

	"github.com/agencyops/backoffice/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAgencyID returns only the stored agency id for a user (minimal
	// projection); empty string when none is assigned.
	FindAgencyID(ctx context.Context, userID string) (string, error)
	// SetAgencyID persists an agency id onto the user record. Used by scope
	// resolution to back-fill the fallback agency.
	SetAgencyID(ctx context.Context, userID, agencyID string) error
}
