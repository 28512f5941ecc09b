package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListHostingFilter carries query parameters for listing hosting services.
type ListHostingFilter struct {
	ClientID string
	Page     int
	Limit    int
}

// HostingRepository defines persistence operations for hosting services.
type HostingRepository interface {
	Create(ctx context.Context, h *domain.HostingService) error
	FindByID(ctx context.Context, sc scope.Context, id string) (*domain.HostingService, error)
	List(ctx context.Context, sc scope.Context, filter ListHostingFilter) ([]*domain.HostingService, int64, error)
	// FindExpiringBetween returns hosting services for one agency whose end
	// date falls in [from, to]. Consumed by the sweep.
	FindExpiringBetween(ctx context.Context, agencyID string, from, to time.Time) ([]*domain.HostingService, error)
}
