package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// CreateClientInput carries the data needed to create a client.
type CreateClientInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// ListClientsResult is a page of clients.
type ListClientsResult struct {
	Items      []*domain.Client
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ClientService defines use-case operations on clients.
type ClientService interface {
	Create(ctx context.Context, sc scope.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, sc scope.Context, id string) (*domain.Client, error)
	List(ctx context.Context, sc scope.Context, filter ListClientsFilter) (*ListClientsResult, error)
}

// CreateProjectInput carries the data needed to create a project.
type CreateProjectInput struct {
	ClientID     string
	Name         string
	DeliveryDate time.Time
}

// ListProjectsResult is a page of projects.
type ListProjectsResult struct {
	Items      []*domain.Project
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProjectService defines use-case operations on projects.
type ProjectService interface {
	Create(ctx context.Context, sc scope.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, sc scope.Context, id string) (*domain.Project, error)
	List(ctx context.Context, sc scope.Context, filter ListProjectsFilter) (*ListProjectsResult, error)
}

// CreateHostingInput carries the data needed to create a hosting service.
type CreateHostingInput struct {
	ClientID   string
	DomainName string
	Provider   string
	StartDate  time.Time
	EndDate    time.Time
}

// ListHostingResult is a page of hosting services.
type ListHostingResult struct {
	Items      []*domain.HostingService
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// HostingService defines use-case operations on hosting services.
type HostingService interface {
	Create(ctx context.Context, sc scope.Context, input CreateHostingInput) (*domain.HostingService, error)
	Get(ctx context.Context, sc scope.Context, id string) (*domain.HostingService, error)
	List(ctx context.Context, sc scope.Context, filter ListHostingFilter) (*ListHostingResult, error)
}

// CreateAgencyInput carries the data needed to create an agency.
type CreateAgencyInput struct {
	Name string
	Slug string
}

// AgencyService defines agency management, restricted to super_admin.
type AgencyService interface {
	Create(ctx context.Context, input CreateAgencyInput) (*domain.Agency, error)
	ListActive(ctx context.Context) ([]*domain.Agency, error)
}
