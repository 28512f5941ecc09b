package domain

import "time"

// ReminderType is the closed set of reminder categories.
type ReminderType string

const (
	ReminderHostingExpiration ReminderType = "hosting-expiration"
	ReminderServiceRenewal    ReminderType = "service-renewal"
	ReminderPaymentDue        ReminderType = "payment-due"
	ReminderCustom            ReminderType = "custom"
)

// Valid reports whether t is a known reminder type.
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderHostingExpiration, ReminderServiceRenewal, ReminderPaymentDue, ReminderCustom:
		return true
	}
	return false
}

// ReminderNotificationStatus tracks whether a notification for the reminder
// has been dispatched.
type ReminderNotificationStatus string

const (
	ReminderNotificationPending ReminderNotificationStatus = "pending"
	ReminderNotificationSent    ReminderNotificationStatus = "sent"
	ReminderNotificationFailed  ReminderNotificationStatus = "failed"
)

// EntityRef points at a related record by type and id, without embedding it.
type EntityRef struct {
	Type string `json:"type" bson:"type"`
	ID   string `json:"id" bson:"id"`
}

// Reminder is a user-managed obligation with a due date. The sweep considers
// a reminder once its due date comes within DaysBeforeReminder days.
type Reminder struct {
	ID                 string                     `json:"id" bson:"_id,omitempty"`
	AgencyID           string                     `json:"agency_id" bson:"agency_id"`
	Type               ReminderType               `json:"type" bson:"type"`
	Title              string                     `json:"title" bson:"title"`
	Description        string                     `json:"description,omitempty" bson:"description,omitempty"`
	DueDate            time.Time                  `json:"due_date" bson:"due_date"`
	DaysBeforeReminder int                        `json:"days_before_reminder" bson:"days_before_reminder"`
	IsCompleted        bool                       `json:"is_completed" bson:"is_completed"`
	CompletedAt        *time.Time                 `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	NotificationStatus ReminderNotificationStatus `json:"notification_status" bson:"notification_status"`
	RelatedEntity      *EntityRef                 `json:"related_entity,omitempty" bson:"related_entity,omitempty"`
	CreatedAt          time.Time                  `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at" bson:"updated_at"`
}
