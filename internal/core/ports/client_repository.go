package ports

import (
	"context"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListClientsFilter carries query parameters for listing clients.
type ListClientsFilter struct {
	Search string // optional: partial match on name or company
	Page   int
	Limit  int
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, sc scope.Context, id string) (*domain.Client, error)
	List(ctx context.Context, sc scope.Context, filter ListClientsFilter) ([]*domain.Client, int64, error)
}
