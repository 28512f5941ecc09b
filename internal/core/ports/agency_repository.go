package ports

import (
	"context"

	"github.com/agencyops/backoffice/internal/core/domain"
)

// AgencyRepository defines persistence operations for agencies (tenants).
type AgencyRepository interface {
	Create(ctx context.Context, a *domain.Agency) error
	FindByID(ctx context.Context, id string) (*domain.Agency, error)
	// ListActive returns all active agencies ordered by creation time.
	ListActive(ctx context.Context) ([]*domain.Agency, error)
	// FindOldestActive returns the active agency with the earliest creation
	// time, used as the scope-resolution fallback.
	FindOldestActive(ctx context.Context) (*domain.Agency, error)
}
