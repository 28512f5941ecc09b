package scope

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/api/metrics"
	"github.com/agencyops/backoffice/internal/core/domain"
)

// UserAgencyStore is the slice of the user repository the resolver needs.
type UserAgencyStore interface {
	// FindAgencyID returns the stored agency id for a user; empty string
	// when the user has none assigned.
	FindAgencyID(ctx context.Context, userID string) (string, error)
	// SetAgencyID persists an agency id onto the user record.
	SetAgencyID(ctx context.Context, userID, agencyID string) error
}

// AgencyStore is the slice of the agency repository the resolver needs.
type AgencyStore interface {
	// FindOldestActive returns the active agency with the earliest creation
	// time, or domain.ErrAgencyNotFound when none exists.
	FindOldestActive(ctx context.Context) (*domain.Agency, error)
}

// Resolver turns a Principal into a scope Context. Resolution may write: a
// user with no assigned agency gets the fallback agency persisted onto their
// record so later resolutions skip the lookup chain.
type Resolver struct {
	users    UserAgencyStore
	agencies AgencyStore
	cache    Cache
	log      zerolog.Logger
}

func NewResolver(users UserAgencyStore, agencies AgencyStore, cache Cache, log zerolog.Logger) *Resolver {
	return &Resolver{users: users, agencies: agencies, cache: cache, log: log}
}

// Resolve produces the scope Context for a principal. First match wins:
//
//  1. Session already carries an agency id.
//  2. super_admin: unscoped.
//  3. Cache hit younger than the TTL.
//  4. Stored agency id on the user record.
//  5. Oldest active agency as fallback, persisted back onto the user.
//  6. No active agency at all: denied context.
//
// A failed user lookup short-circuits to the denied context. Falling through
// to the fallback chain on a read error could scope a user into the wrong
// agency and overwrite their stored assignment.
func (r *Resolver) Resolve(ctx context.Context, p Principal) Context {
	if p.AgencyID != "" {
		return Context{UserID: p.UserID, Role: p.Role, AgencyID: p.AgencyID}
	}

	if p.Role.IsSuperAdmin() {
		return Context{UserID: p.UserID, Role: p.Role}
	}

	if agencyID, ok := r.cache.Get(ctx, p.UserID); ok {
		metrics.ScopeCacheTotal.WithLabelValues("hit").Inc()
		return Context{UserID: p.UserID, Role: p.Role, AgencyID: agencyID}
	}
	metrics.ScopeCacheTotal.WithLabelValues("miss").Inc()

	agencyID, err := r.users.FindAgencyID(ctx, p.UserID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", p.UserID).Msg("scope: user lookup failed")
		metrics.ScopeDeniedTotal.Inc()
		return Context{UserID: p.UserID, Role: p.Role}
	}
	if agencyID != "" {
		r.cache.Put(ctx, p.UserID, agencyID)
		return Context{UserID: p.UserID, Role: p.Role, AgencyID: agencyID}
	}

	fallback, err := r.agencies.FindOldestActive(ctx)
	if err != nil || fallback == nil {
		if err != nil && !errors.Is(err, domain.ErrAgencyNotFound) {
			r.log.Error().Err(err).Str("user_id", p.UserID).Msg("scope: fallback agency lookup failed")
		}
		metrics.ScopeDeniedTotal.Inc()
		return Context{UserID: p.UserID, Role: p.Role}
	}

	r.persistFallbackAgency(ctx, p.UserID, fallback.ID)
	r.cache.Put(ctx, p.UserID, fallback.ID)
	return Context{UserID: p.UserID, Role: p.Role, AgencyID: fallback.ID}
}

// persistFallbackAgency writes the fallback agency onto the user record so
// future resolutions stop at step 4. Failures are logged only; the caller
// still gets a usable context for this request.
func (r *Resolver) persistFallbackAgency(ctx context.Context, userID, agencyID string) {
	if err := r.users.SetAgencyID(ctx, userID, agencyID); err != nil {
		r.log.Warn().Err(err).
			Str("user_id", userID).
			Str("agency_id", agencyID).
			Msg("scope: failed to persist fallback agency")
	}
}
