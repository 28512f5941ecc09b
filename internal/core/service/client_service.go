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

// ClientService implements client management inside a scope context.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Create(ctx context.Context, sc scope.Context, input ports.CreateClientInput) (*domain.Client, error) {
	agencyID, err := creationAgency(sc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Client{
		ID:        uuid.NewString(),
		AgencyID:  agencyID,
		Name:      input.Name,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("agency_id", sc.AgencyID).Msg("failed to create client")
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Get(ctx context.Context, sc scope.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, sc, id)
}

func (s *ClientService) List(ctx context.Context, sc scope.Context, filter ports.ListClientsFilter) (*ports.ListClientsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListClientsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}
