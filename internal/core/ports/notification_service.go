package ports

import (
	"context"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListNotificationsResult is a page of notifications plus the unread total.
type ListNotificationsResult struct {
	Items      []*domain.Notification
	Total      int64
	Unread     int64
	Page       int
	Limit      int
	TotalPages int
}

// NotificationService defines the read/ack side of notifications.
type NotificationService interface {
	List(ctx context.Context, sc scope.Context, filter ListNotificationsFilter) (*ListNotificationsResult, error)
	MarkRead(ctx context.Context, sc scope.Context, id string) error
	MarkAllRead(ctx context.Context, sc scope.Context) (int64, error)
}

// SweepService generates notifications from the four obligation sources for
// one agency. Intended to be invoked per agency by a scheduler or an
// admin-triggered endpoint.
type SweepService interface {
	// GenerateNotifications returns the number of notifications created in
	// this invocation. The sweep performs no idempotency check: running it
	// twice over unchanged data creates duplicate rows.
	GenerateNotifications(ctx context.Context, agencyID string) (int, error)
}
