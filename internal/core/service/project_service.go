package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ProjectService implements project management inside a scope context.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, sc scope.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	agencyID, err := creationAgency(sc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:           uuid.NewString(),
		AgencyID:     agencyID,
		ClientID:     input.ClientID,
		Name:         input.Name,
		Status:       domain.ProjectPlanned,
		DeliveryDate: input.DeliveryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("agency_id", sc.AgencyID).Msg("failed to create project")
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, sc scope.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, sc, id)
}

func (s *ProjectService) List(ctx context.Context, sc scope.Context, filter ports.ListProjectsFilter) (*ports.ListProjectsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListProjectsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}
