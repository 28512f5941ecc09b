package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ListInvoicesFilter carries query parameters for listing invoices.
type ListInvoicesFilter struct {
	Status   string // optional: filter by invoice status
	ClientID string // optional: filter by client
	Page     int
	Limit    int
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	FindByID(ctx context.Context, sc scope.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, sc scope.Context, filter ListInvoicesFilter) ([]*domain.Invoice, int64, error)
	// FindOverdue returns "sent" invoices for one agency whose due date is
	// strictly before the given day. Consumed by the sweep.
	FindOverdue(ctx context.Context, agencyID string, before time.Time) ([]*domain.Invoice, error)
	UpdateStatus(ctx context.Context, sc scope.Context, id string, status domain.InvoiceStatus, paidAt *time.Time) error
}
