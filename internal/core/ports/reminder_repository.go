package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListRemindersFilter carries query parameters for listing reminders. The
// agency filter always comes from the scope context, never from here.
type ListRemindersFilter struct {
	Type      string // optional: filter by reminder type
	Completed *bool  // optional: filter by completion flag
	Page      int    // 1-based
	Limit     int    // capped by the service
}

// ReminderRepository defines persistence operations for reminders. Every
// read honors the scope context; a denied context yields zero rows.
type ReminderRepository interface {
	Create(ctx context.Context, r *domain.Reminder) error
	FindByID(ctx context.Context, sc scope.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context, sc scope.Context, filter ListRemindersFilter) ([]*domain.Reminder, int64, error)
	// FindPending returns reminders for one agency that are not completed
	// and still have notification status "pending". Consumed by the sweep.
	FindPending(ctx context.Context, agencyID string) ([]*domain.Reminder, error)
	MarkCompleted(ctx context.Context, sc scope.Context, id string, at time.Time) error
	Delete(ctx context.Context, sc scope.Context, id string) error
}
