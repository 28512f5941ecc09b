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

// ReminderService implements reminder CRUD inside a scope context.
type ReminderService struct {
	repo   ports.ReminderRepository
	logger zerolog.Logger
}

func NewReminderService(repo ports.ReminderRepository, logger zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, logger: logger}
}

// Create stores a new reminder for the caller's agency. Writes without a
// resolvable target agency are rejected outright.
func (s *ReminderService) Create(ctx context.Context, sc scope.Context, input ports.CreateReminderInput) (*domain.Reminder, error) {
	agencyID, err := creationAgency(sc)
	if err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		input.Type = domain.ReminderCustom
	}
	if input.DaysBeforeReminder < 0 {
		input.DaysBeforeReminder = 0
	}

	now := time.Now().UTC()
	r := &domain.Reminder{
		ID:                 uuid.NewString(),
		AgencyID:           agencyID,
		Type:               input.Type,
		Title:              input.Title,
		Description:        input.Description,
		DueDate:            input.DueDate,
		DaysBeforeReminder: input.DaysBeforeReminder,
		NotificationStatus: domain.ReminderNotificationPending,
		RelatedEntity:      input.RelatedEntity,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Error().Err(err).Str("agency_id", sc.AgencyID).Msg("failed to create reminder")
		return nil, err
	}

	s.logger.Info().Str("reminder_id", r.ID).Str("agency_id", sc.AgencyID).Msg("reminder created")
	return r, nil
}

func (s *ReminderService) Get(ctx context.Context, sc scope.Context, id string) (*domain.Reminder, error) {
	return s.repo.FindByID(ctx, sc, id)
}

func (s *ReminderService) List(ctx context.Context, sc scope.Context, filter ports.ListRemindersFilter) (*ports.ListRemindersResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListRemindersResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *ReminderService) Complete(ctx context.Context, sc scope.Context, id string) error {
	if sc.Denied() {
		return domain.ErrNoTenantAccess
	}
	return s.repo.MarkCompleted(ctx, sc, id, time.Now().UTC())
}

func (s *ReminderService) Delete(ctx context.Context, sc scope.Context, id string) error {
	if sc.Denied() {
		return domain.ErrNoTenantAccess
	}
	return s.repo.Delete(ctx, sc, id)
}
