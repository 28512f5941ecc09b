package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
)

// AgencyService implements agency (tenant) management. Route-level RBAC
// restricts it to super_admin.
type AgencyService struct {
	repo   ports.AgencyRepository
	logger zerolog.Logger
}

func NewAgencyService(repo ports.AgencyRepository, logger zerolog.Logger) *AgencyService {
	return &AgencyService{repo: repo, logger: logger}
}

func (s *AgencyService) Create(ctx context.Context, input ports.CreateAgencyInput) (*domain.Agency, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input.Name), " ", "-"))
	}

	now := time.Now().UTC()
	a := &domain.Agency{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create agency")
		return nil, err
	}

	s.logger.Info().Str("agency_id", a.ID).Str("slug", a.Slug).Msg("agency created")
	return a, nil
}

func (s *AgencyService) ListActive(ctx context.Context) ([]*domain.Agency, error) {
	return s.repo.ListActive(ctx)
}
