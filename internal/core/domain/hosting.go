package domain

import "time"

// HostingService is a hosting or domain contract with an expiry date. The
// sweep reads EndDate only.
type HostingService struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	AgencyID   string    `json:"agency_id" bson:"agency_id"`
	ClientID   string    `json:"client_id" bson:"client_id"`
	DomainName string    `json:"domain_name" bson:"domain_name"`
	Provider   string    `json:"provider,omitempty" bson:"provider,omitempty"`
	StartDate  time.Time `json:"start_date" bson:"start_date"`
	EndDate    time.Time `json:"end_date" bson:"end_date"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
