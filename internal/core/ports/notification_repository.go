package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListNotificationsFilter carries query parameters for listing notifications.
type ListNotificationsFilter struct {
	UnreadOnly bool
	Page       int
	Limit      int
}

// NotificationRepository defines persistence operations for notifications.
// Rows are append-only; only the read flag is ever updated.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, sc scope.Context, filter ListNotificationsFilter) ([]*domain.Notification, int64, error)
	MarkRead(ctx context.Context, sc scope.Context, id string, at time.Time) error
	// MarkAllRead flags every unread notification in scope and returns how
	// many rows changed.
	MarkAllRead(ctx context.Context, sc scope.Context, at time.Time) (int64, error)
	CountUnread(ctx context.Context, sc scope.Context) (int64, error)
}
