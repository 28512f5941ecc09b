package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/api/metrics"
	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
)

// Look-ahead windows for the deadline-driven sources.
const (
	projectWindowDays = 7
	hostingWindowDays = 30
)

// sweepSource is one independent obligation check. Each returns the candidate
// notifications for a single agency relative to today.
type sweepSource struct {
	name string
	scan func(ctx context.Context, agencyID string, today time.Time) ([]*domain.Notification, error)
}

// SweepService scans the four obligation sources for an agency and appends
// notification rows. Source records are never mutated.
type SweepService struct {
	reminders     ports.ReminderRepository
	invoices      ports.InvoiceRepository
	projects      ports.ProjectRepository
	hosting       ports.HostingRepository
	notifications ports.NotificationRepository
	log           zerolog.Logger
	now           func() time.Time
}

func NewSweepService(
	reminders ports.ReminderRepository,
	invoices ports.InvoiceRepository,
	projects ports.ProjectRepository,
	hosting ports.HostingRepository,
	notifications ports.NotificationRepository,
	log zerolog.Logger,
) *SweepService {
	return &SweepService{
		reminders:     reminders,
		invoices:      invoices,
		projects:      projects,
		hosting:       hosting,
		notifications: notifications,
		log:           log,
		now:           time.Now,
	}
}

// GenerateNotifications runs all four source checks for one agency and
// returns the number of notifications created. Each source is fault-isolated:
// a failing source is logged and contributes zero rows while the others still
// run. There is no idempotency check against earlier runs; sweeping twice
// over unchanged data duplicates rows.
func (s *SweepService) GenerateNotifications(ctx context.Context, agencyID string) (int, error) {
	today := startOfDay(s.now().UTC())
	start := time.Now()

	sources := []sweepSource{
		{name: "reminders", scan: s.reminderCandidates},
		{name: "invoices", scan: s.invoiceCandidates},
		{name: "projects", scan: s.projectCandidates},
		{name: "hosting", scan: s.hostingCandidates},
	}

	created := 0
	for _, src := range sources {
		candidates, err := src.scan(ctx, agencyID, today)
		if err != nil {
			metrics.SweepSourceFailuresTotal.WithLabelValues(src.name).Inc()
			s.log.Error().Err(err).
				Str("agency_id", agencyID).
				Str("source", src.name).
				Msg("sweep: source read failed, skipping")
			continue
		}

		for _, n := range candidates {
			if err := s.notifications.Insert(ctx, n); err != nil {
				s.log.Error().Err(err).
					Str("agency_id", agencyID).
					Str("source", src.name).
					Msg("sweep: failed to insert notification")
				continue
			}
			metrics.NotificationsCreatedTotal.WithLabelValues(n.Type, string(n.Severity)).Inc()
			created++
		}
	}

	metrics.SweepDuration.Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("agency_id", agencyID).
		Int("created", created).
		Msg("sweep completed")

	return created, nil
}

func (s *SweepService) reminderCandidates(ctx context.Context, agencyID string, today time.Time) ([]*domain.Notification, error) {
	pending, err := s.reminders.FindPending(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	var out []*domain.Notification
	for _, r := range pending {
		d := daysUntil(today, r.DueDate)
		if d > r.DaysBeforeReminder && d >= 0 {
			continue
		}

		var msg string
		switch {
		case d < 0:
			msg = fmt.Sprintf("%q was due %d day(s) ago", r.Title, -d)
		case d == 0:
			msg = fmt.Sprintf("%q is due today", r.Title)
		default:
			msg = fmt.Sprintf("%q is due in %d day(s)", r.Title, d)
		}

		out = append(out, s.newNotification(agencyID, domain.NotificationTypeReminder,
			"Reminder due", msg, "/reminders/"+r.ID, reminderSeverity(d),
			&domain.EntityRef{Type: "reminder", ID: r.ID}))
	}
	return out, nil
}

func (s *SweepService) invoiceCandidates(ctx context.Context, agencyID string, today time.Time) ([]*domain.Notification, error) {
	overdue, err := s.invoices.FindOverdue(ctx, agencyID, today)
	if err != nil {
		return nil, err
	}

	var out []*domain.Notification
	for _, inv := range overdue {
		days := -daysUntil(today, inv.DueDate)
		msg := fmt.Sprintf("Invoice %s is %d day(s) overdue", inv.Number, days)
		out = append(out, s.newNotification(agencyID, domain.NotificationTypeInvoiceOverdue,
			"Invoice overdue", msg, "/invoices/"+inv.ID, domain.SeverityError,
			&domain.EntityRef{Type: "invoice", ID: inv.ID}))
	}
	return out, nil
}

func (s *SweepService) projectCandidates(ctx context.Context, agencyID string, today time.Time) ([]*domain.Notification, error) {
	due, err := s.projects.FindDeliveriesBetween(ctx, agencyID, today, today.AddDate(0, 0, projectWindowDays))
	if err != nil {
		return nil, err
	}

	var out []*domain.Notification
	for _, p := range due {
		d := daysUntil(today, p.DeliveryDate)
		msg := fmt.Sprintf("Project %q is due for delivery in %d day(s)", p.Name, d)
		out = append(out, s.newNotification(agencyID, domain.NotificationTypeProjectDeadline,
			"Project deadline approaching", msg, "/projects/"+p.ID, projectSeverity(d),
			&domain.EntityRef{Type: "project", ID: p.ID}))
	}
	return out, nil
}

func (s *SweepService) hostingCandidates(ctx context.Context, agencyID string, today time.Time) ([]*domain.Notification, error) {
	expiring, err := s.hosting.FindExpiringBetween(ctx, agencyID, today, today.AddDate(0, 0, hostingWindowDays))
	if err != nil {
		return nil, err
	}

	var out []*domain.Notification
	for _, h := range expiring {
		d := daysUntil(today, h.EndDate)
		msg := fmt.Sprintf("Hosting for %s expires in %d day(s)", h.DomainName, d)
		out = append(out, s.newNotification(agencyID, domain.NotificationTypeHostingExpiring,
			"Hosting expiring", msg, "/hosting/"+h.ID, hostingSeverity(d),
			&domain.EntityRef{Type: "hosting_service", ID: h.ID}))
	}
	return out, nil
}

func (s *SweepService) newNotification(agencyID, typ, title, msg, link string, severity domain.Severity, ref *domain.EntityRef) *domain.Notification {
	return &domain.Notification{
		ID:            uuid.NewString(),
		AgencyID:      agencyID,
		Type:          typ,
		Title:         title,
		Message:       msg,
		Link:          link,
		Severity:      severity,
		RelatedEntity: ref,
		CreatedAt:     s.now().UTC(),
	}
}

// startOfDay truncates t to UTC midnight.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil returns whole days from today to due, negative when due is past.
// Both sides are normalized to midnight so partial days never round oddly.
func daysUntil(today, due time.Time) int {
	return int(startOfDay(due).Sub(startOfDay(today)).Hours() / 24)
}

func reminderSeverity(daysUntil int) domain.Severity {
	switch {
	case daysUntil < 0:
		return domain.SeverityError
	case daysUntil <= 7:
		return domain.SeverityWarning
	default:
		return domain.SeverityInfo
	}
}

func projectSeverity(daysUntil int) domain.Severity {
	if daysUntil <= 3 {
		return domain.SeverityWarning
	}
	return domain.SeverityInfo
}

func hostingSeverity(daysUntil int) domain.Severity {
	if daysUntil <= 7 {
		return domain.SeverityWarning
	}
	return domain.SeverityInfo
}
