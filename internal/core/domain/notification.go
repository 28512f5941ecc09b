package domain

import "time"

// Severity classifies how urgent a notification is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Notification type tags emitted by the obligation sweep.
const (
	NotificationTypeReminder        = "reminder"
	NotificationTypeInvoiceOverdue  = "invoice_overdue"
	NotificationTypeProjectDeadline = "project_deadline"
	NotificationTypeHostingExpiring = "hosting_expiring"
)

// Notification is an append-only record surfaced to users by the polling
// read endpoint. Only IsRead/ReadAt are ever updated after creation.
type Notification struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	AgencyID      string     `json:"agency_id" bson:"agency_id"`
	UserID        string     `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Type          string     `json:"type" bson:"type"`
	Title         string     `json:"title" bson:"title"`
	Message       string     `json:"message" bson:"message"`
	Link          string     `json:"link,omitempty" bson:"link,omitempty"`
	Severity      Severity   `json:"severity" bson:"severity"`
	IsRead        bool       `json:"is_read" bson:"is_read"`
	ReadAt        *time.Time `json:"read_at,omitempty" bson:"read_at,omitempty"`
	RelatedEntity *EntityRef `json:"related_entity,omitempty" bson:"related_entity,omitempty"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
}
