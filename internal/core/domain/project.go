package domain

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Project is an engagement for a client with a delivery deadline. The sweep
// reads DeliveryDate and Status only.
type Project struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	AgencyID     string        `json:"agency_id" bson:"agency_id"`
	ClientID     string        `json:"client_id" bson:"client_id"`
	Name         string        `json:"name" bson:"name"`
	Status       ProjectStatus `json:"status" bson:"status"`
	DeliveryDate time.Time     `json:"delivery_date" bson:"delivery_date"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
