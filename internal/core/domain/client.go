package domain

import "time"

// Client is a customer of an agency. Relationships to projects, invoices and
// hosting services are id references only; joins happen at the repository
// boundary.
type Client struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AgencyID  string    `json:"agency_id" bson:"agency_id"`
	Name      string    `json:"name" bson:"name"`
	Company   string    `json:"company,omitempty" bson:"company,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
