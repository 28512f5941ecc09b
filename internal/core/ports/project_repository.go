package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListProjectsFilter carries query parameters for listing projects.
type ListProjectsFilter struct {
	Status   string
	ClientID string
	Page     int
	Limit    int
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, sc scope.Context, id string) (*domain.Project, error)
	List(ctx context.Context, sc scope.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	// FindDeliveriesBetween returns non-completed projects for one agency
	// with a delivery date in [from, to]. Consumed by the sweep.
	FindDeliveriesBetween(ctx context.Context, agencyID string, from, to time.Time) ([]*domain.Project, error)
}
