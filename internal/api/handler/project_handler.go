package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ProjectHandler handles HTTP requests for project records.
type ProjectHandler struct {
	service  ports.ProjectService
	resolver *scope.Resolver
}

func NewProjectHandler(service ports.ProjectService, resolver *scope.Resolver) *ProjectHandler {
	return &ProjectHandler{service: service, resolver: resolver}
}

type createProjectRequest struct {
	ClientID     string    `json:"client_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	DeliveryDate time.Time `json:"delivery_date" validate:"required"`
}

type listProjectsResponse struct {
	Data       []*domain.Project  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
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

	project, err := h.service.Create(c.Request().Context(), sc, ports.CreateProjectInput{
		ClientID:     req.ClientID,
		Name:         req.Name,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// List handles GET /v1/projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by status"
// @Param        client_id  query     string  false  "Filter by client"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listProjectsResponse
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), sc, ports.ListProjectsFilter{
		Status:   c.QueryParam("status"),
		ClientID: c.QueryParam("client_id"),
		Page:     queryInt(c.QueryParam("page")),
		Limit:    queryInt(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProjectsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), sc, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
