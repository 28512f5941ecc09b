package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// CreateReminderInput carries the data needed to create a reminder.
type CreateReminderInput struct {
	Type               domain.ReminderType
	Title              string
	Description        string
	DueDate            time.Time
	DaysBeforeReminder int
	RelatedEntity      *domain.EntityRef
}

// ListRemindersResult is a page of reminders.
type ListRemindersResult struct {
	Items      []*domain.Reminder
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReminderService defines use-case operations on reminders. All operations
// run inside the caller's scope context.
type ReminderService interface {
	Create(ctx context.Context, sc scope.Context, input CreateReminderInput) (*domain.Reminder, error)
	Get(ctx context.Context, sc scope.Context, id string) (*domain.Reminder, error)
	List(ctx context.Context, sc scope.Context, filter ListRemindersFilter) (*ListRemindersResult, error)
	Complete(ctx context.Context, sc scope.Context, id string) error
	Delete(ctx context.Context, sc scope.Context, id string) error
}
