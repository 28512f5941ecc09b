package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// NotificationService implements the read/ack side of notifications. Rows
// are created by the sweep; this service only lists them and flips the read
// flag.
type NotificationService struct {
	repo   ports.NotificationRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) List(ctx context.Context, sc scope.Context, filter ports.ListNotificationsFilter) (*ports.ListNotificationsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	unread, err := s.repo.CountUnread(ctx, sc)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to count unread notifications")
		unread = 0
	}

	return &ports.ListNotificationsResult{
		Items:      items,
		Total:      total,
		Unread:     unread,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, sc scope.Context, id string) error {
	return s.repo.MarkRead(ctx, sc, id, time.Now().UTC())
}

func (s *NotificationService) MarkAllRead(ctx context.Context, sc scope.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx, sc, time.Now().UTC())
}
