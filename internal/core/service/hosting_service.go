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

// HostingCatalog implements hosting-service management inside a scope context.
type HostingCatalog struct {
	repo   ports.HostingRepository
	logger zerolog.Logger
}

func NewHostingCatalog(repo ports.HostingRepository, logger zerolog.Logger) *HostingCatalog {
	return &HostingCatalog{repo: repo, logger: logger}
}

func (s *HostingCatalog) Create(ctx context.Context, sc scope.Context, input ports.CreateHostingInput) (*domain.HostingService, error) {
	agencyID, err := creationAgency(sc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	h := &domain.HostingService{
		ID:         uuid.NewString(),
		AgencyID:   agencyID,
		ClientID:   input.ClientID,
		DomainName: input.DomainName,
		Provider:   input.Provider,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error().Err(err).Str("agency_id", sc.AgencyID).Msg("failed to create hosting service")
		return nil, err
	}
	return h, nil
}

func (s *HostingCatalog) Get(ctx context.Context, sc scope.Context, id string) (*domain.HostingService, error) {
	return s.repo.FindByID(ctx, sc, id)
}

func (s *HostingCatalog) List(ctx context.Context, sc scope.Context, filter ports.ListHostingFilter) (*ports.ListHostingResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListHostingResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}
