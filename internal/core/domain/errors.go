package domain

import "errors"

var (
	ErrAgencyNotFound       = errors.New("agency not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrHostingNotFound      = errors.New("hosting service not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrForbidden            = errors.New("access forbidden")

	// ErrAgencyRequired rejects writes from an unscoped context that names
	// no target agency.
	ErrAgencyRequired = errors.New("agency id is required")

	// ErrNoTenantAccess marks the "no resolvable agency and no fallback"
	// state. Callers must treat it as an empty result set or a rejected
	// write, never as unscoped access.
	ErrNoTenantAccess = errors.New("no tenant access")
)
