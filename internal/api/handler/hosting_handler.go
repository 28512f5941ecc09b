package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// HostingHandler handles HTTP requests for hosting service records.
type HostingHandler struct {
	service  ports.HostingService
	resolver *scope.Resolver
}

func NewHostingHandler(service ports.HostingService, resolver *scope.Resolver) *HostingHandler {
	return &HostingHandler{service: service, resolver: resolver}
}

type createHostingRequest struct {
	ClientID   string    `json:"client_id" validate:"required"`
	DomainName string    `json:"domain_name" validate:"required"`
	Provider   string    `json:"provider"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

type listHostingResponse struct {
	Data       []*domain.HostingService `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

// Create handles POST /v1/hosting.
//
// @Summary      Create a hosting service record
// @Tags         hosting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHostingRequest  true  "Hosting details"
// @Success      201   {object}  domain.HostingService
// @Failure      400   {object}  map[string]string
// @Router       /v1/hosting [post]
func (h *HostingHandler) Create(c echo.Context) error {
	var req createHostingRequest
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

	hosting, err := h.service.Create(c.Request().Context(), sc, ports.CreateHostingInput{
		ClientID:   req.ClientID,
		DomainName: req.DomainName,
		Provider:   req.Provider,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, hosting)
}

// List handles GET /v1/hosting.
//
// @Summary      List hosting services
// @Tags         hosting
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listHostingResponse
// @Router       /v1/hosting [get]
func (h *HostingHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), sc, ports.ListHostingFilter{
		ClientID: c.QueryParam("client_id"),
		Page:     queryInt(c.QueryParam("page")),
		Limit:    queryInt(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listHostingResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/hosting/:id.
//
// @Summary      Get a hosting service
// @Tags         hosting
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hosting id"
// @Success      200  {object}  domain.HostingService
// @Failure      404  {object}  map[string]string
// @Router       /v1/hosting/{id} [get]
func (h *HostingHandler) Get(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	hosting, err := h.service.Get(c.Request().Context(), sc, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hosting)
}
