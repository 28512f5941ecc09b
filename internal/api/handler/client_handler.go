package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service  ports.ClientService
	resolver *scope.Resolver
}

func NewClientHandler(service ports.ClientService, resolver *scope.Resolver) *ClientHandler {
	return &ClientHandler{service: service, resolver: resolver}
}

type createClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
}

type listClientsResponse struct {
	Data       []*domain.Client   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
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

	client, err := h.service.Create(c.Request().Context(), sc, ports.CreateClientInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, client)
}

// List handles GET /v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Partial match on name or company"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Rows per page (max 100)"
// @Success      200     {object}  listClientsResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), sc, ports.ListClientsFilter{
		Search: c.QueryParam("search"),
		Page:   queryInt(c.QueryParam("page")),
		Limit:  queryInt(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listClientsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), sc, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}
