package domain

import "time"

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// validInvoiceTransitions defines the allowed state machine transitions.
var validInvoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft: {InvoiceSent, InvoiceCancelled},
	InvoiceSent:  {InvoicePaid, InvoiceCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range validInvoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invoice is a billing document. Only "sent" invoices past their due date are
// picked up by the obligation sweep.
type Invoice struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	AgencyID  string        `json:"agency_id" bson:"agency_id"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	Number    string        `json:"number" bson:"number"`
	Status    InvoiceStatus `json:"status" bson:"status"`
	Amount    float64       `json:"amount" bson:"amount"`
	Currency  string        `json:"currency" bson:"currency"`
	IssuedAt  time.Time     `json:"issued_at" bson:"issued_at"`
	DueDate   time.Time     `json:"due_date" bson:"due_date"`
	PaidAt    *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
