package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// NotificationHandler handles the notification read side plus the manual
// sweep trigger.
type NotificationHandler struct {
	service  ports.NotificationService
	sweeper  ports.SweepService
	resolver *scope.Resolver
}

func NewNotificationHandler(service ports.NotificationService, sweeper ports.SweepService, resolver *scope.Resolver) *NotificationHandler {
	return &NotificationHandler{service: service, sweeper: sweeper, resolver: resolver}
}

type listNotificationsResponse struct {
	Data       []*domain.Notification `json:"data"`
	Unread     int64                  `json:"unread"`
	Pagination paginationResponse     `json:"pagination"`
}

type markAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type generateNotificationsResponse struct {
	Created int `json:"created"`
}

// List handles GET /v1/notifications.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread  query     bool  false  "Only unread rows"
// @Param        page    query     int   false  "Page (1-based)"
// @Param        limit   query     int   false  "Rows per page (max 100)"
// @Success      200     {object}  listNotificationsResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), sc, ports.ListNotificationsFilter{
		UnreadOnly: c.QueryParam("unread") == "true",
		Page:       queryInt(c.QueryParam("page")),
		Limit:      queryInt(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listNotificationsResponse{
		Data:   result.Items,
		Unread: result.Unread,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// MarkRead handles POST /v1/notifications/:id/read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id   path  string  true  "Notification id"
// @Success      204  "marked"
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), sc, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles POST /v1/notifications/read-all.
//
// @Summary      Mark every notification in scope read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  markAllReadResponse
// @Router       /v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	updated, err := h.service.MarkAllRead(c.Request().Context(), sc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, markAllReadResponse{Updated: updated})
}

// Generate handles POST /v1/notifications/generate. Admins sweep their own
// agency; a super_admin must name the target agency explicitly because an
// unscoped sweep has no single tenant to attribute rows to.
//
// @Summary      Run the obligation sweep for one agency
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        agency_id  query     string  false  "Target agency (super_admin only)"
// @Success      200        {object}  generateNotificationsResponse
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Router       /v1/notifications/generate [post]
func (h *NotificationHandler) Generate(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	agencyID := sc.AgencyID
	if override := c.QueryParam("agency_id"); override != "" {
		if !sc.Unscoped() {
			return echo.NewHTTPError(http.StatusForbidden, "only super_admin may target another agency")
		}
		agencyID = override
	}
	if agencyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agency_id is required")
	}

	created, err := h.sweeper.GenerateNotifications(c.Request().Context(), agencyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateNotificationsResponse{Created: created})
}
