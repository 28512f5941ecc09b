package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ctxPrincipal extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a valid role proves
// the middleware ran; anything else means the token is structurally valid
// but operationally unusable.
func ctxPrincipal(c echo.Context) (scope.Principal, error) {
	roleStr, _ := c.Get("role").(string)
	role := domain.Role(roleStr)
	if !role.Valid() {
		return scope.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return scope.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	agencyID, _ := c.Get("agency_id").(string)

	return scope.Principal{UserID: userID, Role: role, AgencyID: agencyID}, nil
}

// resolveScope builds the principal from the request and resolves its scope
// context. Handlers call this once per request before touching a service.
func resolveScope(c echo.Context, r *scope.Resolver) (scope.Context, error) {
	p, err := ctxPrincipal(c)
	if err != nil {
		return scope.Context{}, err
	}
	return r.Resolve(c.Request().Context(), p), nil
}
