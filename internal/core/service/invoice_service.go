package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// InvoiceService implements invoice CRUD and status transitions.
type InvoiceService struct {
	repo   ports.InvoiceRepository
	logger zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, logger: logger}
}

func (s *InvoiceService) Create(ctx context.Context, sc scope.Context, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	agencyID, err := creationAgency(sc)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inv := &domain.Invoice{
		ID:        uuid.NewString(),
		AgencyID:  agencyID,
		ClientID:  input.ClientID,
		Number:    input.Number,
		Status:    domain.InvoiceDraft,
		Amount:    input.Amount,
		Currency:  input.Currency,
		IssuedAt:  now,
		DueDate:   input.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("agency_id", sc.AgencyID).Msg("failed to create invoice")
		return nil, err
	}

	s.logger.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("invoice created")
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, sc scope.Context, id string) (*domain.Invoice, error) {
	return s.repo.FindByID(ctx, sc, id)
}

func (s *InvoiceService) List(ctx context.Context, sc scope.Context, filter ports.ListInvoicesFilter) (*ports.ListInvoicesResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListInvoicesResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// MarkSent transitions draft → sent. Only sent invoices past due are picked
// up by the sweep.
func (s *InvoiceService) MarkSent(ctx context.Context, sc scope.Context, id string) error {
	return s.transition(ctx, sc, id, domain.InvoiceSent, nil)
}

func (s *InvoiceService) MarkPaid(ctx context.Context, sc scope.Context, id string) error {
	now := time.Now().UTC()
	return s.transition(ctx, sc, id, domain.InvoicePaid, &now)
}

func (s *InvoiceService) transition(ctx context.Context, sc scope.Context, id string, next domain.InvoiceStatus, paidAt *time.Time) error {
	if sc.Denied() {
		return domain.ErrNoTenantAccess
	}

	inv, err := s.repo.FindByID(ctx, sc, id)
	if err != nil {
		return err
	}
	if !inv.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, sc, id, next, paidAt)
}
