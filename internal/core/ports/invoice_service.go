package ports

import (
	"context"
	"time"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// CreateInvoiceInput carries the data needed to create an invoice.
type CreateInvoiceInput struct {
	ClientID string
	Number   string
	Amount   float64
	Currency string
	DueDate  time.Time
}

// ListInvoicesResult is a page of invoices.
type ListInvoicesResult struct {
	Items      []*domain.Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// InvoiceService defines use-case operations on invoices.
type InvoiceService interface {
	Create(ctx context.Context, sc scope.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, sc scope.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, sc scope.Context, filter ListInvoicesFilter) (*ListInvoicesResult, error)
	// MarkSent transitions draft → sent, making the invoice eligible for
	// the overdue sweep once past its due date.
	MarkSent(ctx context.Context, sc scope.Context, id string) error
	MarkPaid(ctx context.Context, sc scope.Context, id string) error
}
