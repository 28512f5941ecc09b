package domain

import "time"

// User models an authenticated actor in the system. AgencyID may be empty for
// freshly created users; scope resolution back-fills it from the oldest
// active agency on first use.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	AgencyID     string    `json:"agency_id,omitempty" bson:"agency_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
