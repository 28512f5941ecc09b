package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ReminderHandler handles HTTP requests for reminder operations.
type ReminderHandler struct {
	service  ports.ReminderService
	resolver *scope.Resolver
}

func NewReminderHandler(service ports.ReminderService, resolver *scope.Resolver) *ReminderHandler {
	return &ReminderHandler{service: service, resolver: resolver}
}

type entityRefRequest struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

type createReminderRequest struct {
	Type               string            `json:"type" validate:"required,reminder_type"`
	Title              string            `json:"title" validate:"required"`
	Description        string            `json:"description"`
	DueDate            time.Time         `json:"due_date" validate:"required"`
	DaysBeforeReminder int               `json:"days_before_reminder" validate:"min=0"`
	RelatedEntity      *entityRefRequest `json:"related_entity,omitempty"`
}

type listRemindersResponse struct {
	Data       []*domain.Reminder `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/reminders.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReminderRequest  true  "Reminder details"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	input := ports.CreateReminderInput{
		Type:               domain.ReminderType(req.Type),
		Title:              req.Title,
		Description:        req.Description,
		DueDate:            req.DueDate,
		DaysBeforeReminder: req.DaysBeforeReminder,
	}
	if req.RelatedEntity != nil {
		input.RelatedEntity = &domain.EntityRef{Type: req.RelatedEntity.Type, ID: req.RelatedEntity.ID}
	}

	reminder, err := h.service.Create(c.Request().Context(), sc, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reminder)
}

// List handles GET /v1/reminders.
//
// @Summary      List reminders
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        type       query     string  false  "Filter by reminder type"
// @Param        completed  query     bool    false  "Filter by completion flag"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listRemindersResponse
// @Router       /v1/reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	filter := ports.ListRemindersFilter{
		Type:  c.QueryParam("type"),
		Page:  queryInt(c.QueryParam("page")),
		Limit: queryInt(c.QueryParam("limit")),
	}
	if raw := c.QueryParam("completed"); raw != "" {
		completed := raw == "true"
		filter.Completed = &completed
	}

	result, err := h.service.List(c.Request().Context(), sc, filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listRemindersResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/reminders/:id.
//
// @Summary      Get a reminder
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reminder id"
// @Success      200  {object}  domain.Reminder
// @Failure      404  {object}  map[string]string
// @Router       /v1/reminders/{id} [get]
func (h *ReminderHandler) Get(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	reminder, err := h.service.Get(c.Request().Context(), sc, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminder)
}

// Complete handles POST /v1/reminders/:id/complete.
//
// @Summary      Mark a reminder completed
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reminder id"
// @Success      204  "completed"
// @Failure      404  {object}  map[string]string
// @Router       /v1/reminders/{id}/complete [post]
func (h *ReminderHandler) Complete(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	if err := h.service.Complete(c.Request().Context(), sc, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/reminders/:id.
//
// @Summary      Delete a reminder
// @Tags         reminders
// @Security     BearerAuth
// @Param        id   path  string  true  "Reminder id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /v1/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), sc, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
