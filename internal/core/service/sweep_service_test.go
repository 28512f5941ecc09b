package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories (only the sweep-facing reads matter here)
// ---------------------------------------------------------------------------

type stubSweepReminders struct {
	pending []*domain.Reminder
	err     error
}

func (r *stubSweepReminders) Create(_ context.Context, _ *domain.Reminder) error { return nil }
func (r *stubSweepReminders) FindByID(_ context.Context, _ scope.Context, _ string) (*domain.Reminder, error) {
	return nil, domain.ErrReminderNotFound
}
func (r *stubSweepReminders) List(_ context.Context, _ scope.Context, _ ports.ListRemindersFilter) ([]*domain.Reminder, int64, error) {
	return nil, 0, nil
}
func (r *stubSweepReminders) FindPending(_ context.Context, _ string) ([]*domain.Reminder, error) {
	return r.pending, r.err
}
func (r *stubSweepReminders) MarkCompleted(_ context.Context, _ scope.Context, _ string, _ time.Time) error {
	return nil
}
func (r *stubSweepReminders) Delete(_ context.Context, _ scope.Context, _ string) error { return nil }

type stubSweepInvoices struct {
	overdue []*domain.Invoice
	err     error
}

func (r *stubSweepInvoices) Create(_ context.Context, _ *domain.Invoice) error { return nil }
func (r *stubSweepInvoices) FindByID(_ context.Context, _ scope.Context, _ string) (*domain.Invoice, error) {
	return nil, domain.ErrInvoiceNotFound
}
func (r *stubSweepInvoices) List(_ context.Context, _ scope.Context, _ ports.ListInvoicesFilter) ([]*domain.Invoice, int64, error) {
	return nil, 0, nil
}
func (r *stubSweepInvoices) FindOverdue(_ context.Context, _ string, _ time.Time) ([]*domain.Invoice, error) {
	return r.overdue, r.err
}
func (r *stubSweepInvoices) UpdateStatus(_ context.Context, _ scope.Context, _ string, _ domain.InvoiceStatus, _ *time.Time) error {
	return nil
}

type stubSweepProjects struct {
	due      []*domain.Project
	err      error
	from, to time.Time
}

func (r *stubSweepProjects) Create(_ context.Context, _ *domain.Project) error { return nil }
func (r *stubSweepProjects) FindByID(_ context.Context, _ scope.Context, _ string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}
func (r *stubSweepProjects) List(_ context.Context, _ scope.Context, _ ports.ListProjectsFilter) ([]*domain.Project, int64, error) {
	return nil, 0, nil
}
func (r *stubSweepProjects) FindDeliveriesBetween(_ context.Context, _ string, from, to time.Time) ([]*domain.Project, error) {
	r.from, r.to = from, to
	if r.err != nil {
		return nil, r.err
	}
	// Honor the bounds like the real repository does.
	var due []*domain.Project
	for _, p := range r.due {
		if !p.DeliveryDate.Before(from) && !p.DeliveryDate.After(to) {
			due = append(due, p)
		}
	}
	return due, nil
}

type stubSweepHosting struct {
	expiring []*domain.HostingService
	err      error
	from, to time.Time
}

func (r *stubSweepHosting) Create(_ context.Context, _ *domain.HostingService) error { return nil }
func (r *stubSweepHosting) FindByID(_ context.Context, _ scope.Context, _ string) (*domain.HostingService, error) {
	return nil, domain.ErrHostingNotFound
}
func (r *stubSweepHosting) List(_ context.Context, _ scope.Context, _ ports.ListHostingFilter) ([]*domain.HostingService, int64, error) {
	return nil, 0, nil
}
func (r *stubSweepHosting) FindExpiringBetween(_ context.Context, _ string, from, to time.Time) ([]*domain.HostingService, error) {
	r.from, r.to = from, to
	if r.err != nil {
		return nil, r.err
	}
	var expiring []*domain.HostingService
	for _, h := range r.expiring {
		if !h.EndDate.Before(from) && !h.EndDate.After(to) {
			expiring = append(expiring, h)
		}
	}
	return expiring, nil
}

type stubNotificationSink struct {
	inserted  []*domain.Notification
	insertErr error
}

func (r *stubNotificationSink) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *n
	r.inserted = append(r.inserted, &clone)
	return nil
}
func (r *stubNotificationSink) List(_ context.Context, _ scope.Context, _ ports.ListNotificationsFilter) ([]*domain.Notification, int64, error) {
	return nil, 0, nil
}
func (r *stubNotificationSink) MarkRead(_ context.Context, _ scope.Context, _ string, _ time.Time) error {
	return nil
}
func (r *stubNotificationSink) MarkAllRead(_ context.Context, _ scope.Context, _ time.Time) (int64, error) {
	return 0, nil
}
func (r *stubNotificationSink) CountUnread(_ context.Context, _ scope.Context) (int64, error) {
	return 0, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// fixedToday is an arbitrary reference day; every test date is built
// relative to it so the sweep's whole-day math stays deterministic.
var fixedToday = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func newSweepForTest(rem *stubSweepReminders, inv *stubSweepInvoices, prj *stubSweepProjects, hst *stubSweepHosting, sink *stubNotificationSink) *SweepService {
	s := NewSweepService(rem, inv, prj, hst, sink, discardLogger)
	// Mid-day clock: candidates must still be compared at day granularity.
	s.now = func() time.Time { return fixedToday.Add(14 * time.Hour) }
	return s
}

func emptySweepStubs() (*stubSweepReminders, *stubSweepInvoices, *stubSweepProjects, *stubSweepHosting, *stubNotificationSink) {
	return &stubSweepReminders{}, &stubSweepInvoices{}, &stubSweepProjects{}, &stubSweepHosting{}, &stubNotificationSink{}
}

func daysFromToday(d int) time.Time {
	return fixedToday.AddDate(0, 0, d)
}

// ---------------------------------------------------------------------------
// Reminder source
// ---------------------------------------------------------------------------

func TestSweep_Reminder_InsideWindow_CreatesOne(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	rem.pending = []*domain.Reminder{{
		ID:                 "rem_1",
		Title:              "Renew SSL",
		DueDate:            daysFromToday(5),
		DaysBeforeReminder: 10,
		NotificationStatus: domain.ReminderNotificationPending,
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, err := svc.GenerateNotifications(context.Background(), "ag_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 notification, got %d", created)
	}

	n := sink.inserted[0]
	if n.Type != domain.NotificationTypeReminder {
		t.Errorf("expected type %q, got %q", domain.NotificationTypeReminder, n.Type)
	}
	if n.Severity != domain.SeverityWarning {
		t.Errorf("due in 5 days must be warning, got %q", n.Severity)
	}
	if n.AgencyID != "ag_1" {
		t.Errorf("notification must carry the swept agency, got %q", n.AgencyID)
	}
	if n.RelatedEntity == nil || n.RelatedEntity.ID != "rem_1" {
		t.Errorf("related entity must point at the reminder: %+v", n.RelatedEntity)
	}
}

func TestSweep_Reminder_OutsideWindow_Skipped(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	rem.pending = []*domain.Reminder{{
		ID:                 "rem_far",
		Title:              "Far away",
		DueDate:            daysFromToday(30),
		DaysBeforeReminder: 7,
		NotificationStatus: domain.ReminderNotificationPending,
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, _ := svc.GenerateNotifications(context.Background(), "ag_1")
	if created != 0 {
		t.Fatalf("reminder outside its window must not notify, got %d", created)
	}
}

func TestSweep_Reminder_Overdue_IsError(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	rem.pending = []*domain.Reminder{{
		ID:                 "rem_late",
		Title:              "Pay domain",
		DueDate:            daysFromToday(-2),
		DaysBeforeReminder: 3,
		NotificationStatus: domain.ReminderNotificationPending,
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, _ := svc.GenerateNotifications(context.Background(), "ag_1")
	if created != 1 {
		t.Fatalf("overdue reminder must notify regardless of window, got %d", created)
	}
	n := sink.inserted[0]
	if n.Severity != domain.SeverityError {
		t.Errorf("overdue reminder must be error severity, got %q", n.Severity)
	}
	if !strings.Contains(n.Message, "2 day(s) ago") {
		t.Errorf("message must state how late it is: %q", n.Message)
	}
}

func TestSweep_Reminder_DueToday_IsWarning(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	rem.pending = []*domain.Reminder{{
		ID:                 "rem_today",
		Title:              "Send report",
		DueDate:            daysFromToday(0).Add(23 * time.Hour), // late same day
		DaysBeforeReminder: 1,
		NotificationStatus: domain.ReminderNotificationPending,
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, _ := svc.GenerateNotifications(context.Background(), "ag_1")
	if created != 1 {
		t.Fatalf("reminder due today must notify, got %d", created)
	}
	n := sink.inserted[0]
	if n.Severity != domain.SeverityWarning {
		t.Errorf("due today must be warning, got %q", n.Severity)
	}
	if !strings.Contains(n.Message, "due today") {
		t.Errorf("message must say due today: %q", n.Message)
	}
}

// ---------------------------------------------------------------------------
// Invoice source
// ---------------------------------------------------------------------------

func TestSweep_Invoice_Overdue_AlwaysError(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	inv.overdue = []*domain.Invoice{{
		ID:      "inv_1",
		Number:  "INV-2025-001",
		Status:  domain.InvoiceSent,
		DueDate: daysFromToday(-3),
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, err := svc.GenerateNotifications(context.Background(), "ag_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 notification, got %d", created)
	}

	n := sink.inserted[0]
	if n.Type != domain.NotificationTypeInvoiceOverdue {
		t.Errorf("expected type %q, got %q", domain.NotificationTypeInvoiceOverdue, n.Type)
	}
	if n.Severity != domain.SeverityError {
		t.Errorf("overdue invoice must always be error, got %q", n.Severity)
	}
	want := "Invoice INV-2025-001 is 3 day(s) overdue"
	if n.Message != want {
		t.Errorf("message mismatch:\n got %q\nwant %q", n.Message, want)
	}
}

// ---------------------------------------------------------------------------
// Project source
// ---------------------------------------------------------------------------

func TestSweep_Project_SeverityByProximity(t *testing.T) {
	cases := []struct {
		days int
		want domain.Severity
	}{
		{0, domain.SeverityWarning},
		{3, domain.SeverityWarning},
		{4, domain.SeverityInfo},
		{7, domain.SeverityInfo},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_days", tc.days), func(t *testing.T) {
			rem, inv, prj, hst, sink := emptySweepStubs()
			prj.due = []*domain.Project{{
				ID:           "prj_1",
				Name:         "Website relaunch",
				Status:       domain.ProjectInProgress,
				DeliveryDate: daysFromToday(tc.days),
			}}
			svc := newSweepForTest(rem, inv, prj, hst, sink)

			created, _ := svc.GenerateNotifications(context.Background(), "ag_1")
			if created != 1 {
				t.Fatalf("expected 1 notification, got %d", created)
			}
			if got := sink.inserted[0].Severity; got != tc.want {
				t.Errorf("delivery in %d days: expected %q, got %q", tc.days, tc.want, got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Hosting source
// ---------------------------------------------------------------------------

func TestSweep_Hosting_SeverityByProximity(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	hst.expiring = []*domain.HostingService{
		{ID: "h_soon", DomainName: "soon.example.com", EndDate: daysFromToday(5)},
		{ID: "h_later", DomainName: "later.example.com", EndDate: daysFromToday(20)},
	}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, _ := svc.GenerateNotifications(context.Background(), "ag_1")
	if created != 2 {
		t.Fatalf("expected 2 notifications, got %d", created)
	}

	bySeverity := map[domain.Severity]int{}
	for _, n := range sink.inserted {
		bySeverity[n.Severity]++
		if n.Type != domain.NotificationTypeHostingExpiring {
			t.Errorf("expected type %q, got %q", domain.NotificationTypeHostingExpiring, n.Type)
		}
	}
	if bySeverity[domain.SeverityWarning] != 1 || bySeverity[domain.SeverityInfo] != 1 {
		t.Errorf("expected one warning and one info, got %v", bySeverity)
	}
}

func TestSweep_Hosting_BeyondWindow_Ignored(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	hst.expiring = []*domain.HostingService{
		{ID: "h_far", DomainName: "far.example.com", EndDate: daysFromToday(45)},
	}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, err := svc.GenerateNotifications(context.Background(), "ag_1")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("expiry past the 30-day window must produce nothing, got %d", created)
	}
	if len(sink.inserted) != 0 {
		t.Errorf("expected no rows, got %d", len(sink.inserted))
	}
}

func TestSweep_QueryBounds_MatchWindows(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	if _, err := svc.GenerateNotifications(context.Background(), "ag_1"); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	// Bounds start at midnight of the sweep day regardless of the clock.
	if !prj.from.Equal(fixedToday) || !prj.to.Equal(fixedToday.AddDate(0, 0, 7)) {
		t.Errorf("project scan must cover today through today+7, got %v .. %v", prj.from, prj.to)
	}
	if !hst.from.Equal(fixedToday) || !hst.to.Equal(fixedToday.AddDate(0, 0, 30)) {
		t.Errorf("hosting scan must cover today through today+30, got %v .. %v", hst.from, hst.to)
	}
}

// ---------------------------------------------------------------------------
// Fault isolation and re-run behaviour
// ---------------------------------------------------------------------------

func TestSweep_SourceFailure_OthersStillRun(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	prj.err = errors.New("collection gone")
	inv.overdue = []*domain.Invoice{{
		ID: "inv_1", Number: "INV-1", Status: domain.InvoiceSent, DueDate: daysFromToday(-1),
	}}
	hst.expiring = []*domain.HostingService{{
		ID: "h_1", DomainName: "a.example.com", EndDate: daysFromToday(10),
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, err := svc.GenerateNotifications(context.Background(), "ag_1")
	if err != nil {
		t.Fatalf("a single failing source must not fail the sweep: %v", err)
	}
	if created != 2 {
		t.Fatalf("surviving sources must still notify; expected 2, got %d", created)
	}
	for _, n := range sink.inserted {
		if n.Type == domain.NotificationTypeProjectDeadline {
			t.Error("failed project source must contribute zero rows")
		}
	}
}

func TestSweep_Rerun_DuplicatesRows(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	inv.overdue = []*domain.Invoice{{
		ID: "inv_1", Number: "INV-1", Status: domain.InvoiceSent, DueDate: daysFromToday(-5),
	}}
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	first, _ := svc.GenerateNotifications(context.Background(), "ag_1")
	second, _ := svc.GenerateNotifications(context.Background(), "ag_1")

	if first != 1 || second != 1 {
		t.Fatalf("each run must create its own row: got %d then %d", first, second)
	}
	if len(sink.inserted) != 2 {
		t.Errorf("re-running over unchanged data must duplicate, got %d rows", len(sink.inserted))
	}
	if sink.inserted[0].ID == sink.inserted[1].ID {
		t.Error("duplicate rows must still get distinct ids")
	}
}

func TestSweep_EmptySources_ReturnsZero(t *testing.T) {
	rem, inv, prj, hst, sink := emptySweepStubs()
	svc := newSweepForTest(rem, inv, prj, hst, sink)

	created, err := svc.GenerateNotifications(context.Background(), "ag_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 0 || len(sink.inserted) != 0 {
		t.Errorf("nothing pending must create nothing, got %d", created)
	}
}
