package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
)

// AgencyHandler handles agency management. Routes are restricted to
// super_admin by the role middleware.
type AgencyHandler struct {
	service ports.AgencyService
}

func NewAgencyHandler(service ports.AgencyService) *AgencyHandler {
	return &AgencyHandler{service: service}
}

type createAgencyRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug"`
}

type listAgenciesResponse struct {
	Data []*domain.Agency `json:"data"`
}

// Create handles POST /v1/agencies.
//
// @Summary      Create an agency
// @Tags         agencies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAgencyRequest  true  "Agency details"
// @Success      201   {object}  domain.Agency
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/agencies [post]
func (h *AgencyHandler) Create(c echo.Context) error {
	var req createAgencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	agency, err := h.service.Create(c.Request().Context(), ports.CreateAgencyInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, agency)
}

// List handles GET /v1/agencies.
//
// @Summary      List active agencies
// @Tags         agencies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAgenciesResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/agencies [get]
func (h *AgencyHandler) List(c echo.Context) error {
	agencies, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAgenciesResponse{Data: agencies})
}
