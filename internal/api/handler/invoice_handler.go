package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/internal/core/ports"
	"github.com/agencyops/backoffice/internal/core/scope"
)

// InvoiceHandler handles HTTP requests for invoice operations.
type InvoiceHandler struct {
	service  ports.InvoiceService
	resolver *scope.Resolver
}

func NewInvoiceHandler(service ports.InvoiceService, resolver *scope.Resolver) *InvoiceHandler {
	return &InvoiceHandler{service: service, resolver: resolver}
}

type createInvoiceRequest struct {
	ClientID string    `json:"client_id" validate:"required"`
	Number   string    `json:"number" validate:"required"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	Currency string    `json:"currency" validate:"required"`
	DueDate  time.Time `json:"due_date" validate:"required"`
}

type listInvoicesResponse struct {
	Data       []*domain.Invoice  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/invoices.
//
// @Summary      Create an invoice (draft)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
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

	invoice, err := h.service.Create(c.Request().Context(), sc, ports.CreateInvoiceInput{
		ClientID: req.ClientID,
		Number:   req.Number,
		Amount:   req.Amount,
		Currency: req.Currency,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, invoice)
}

// List handles GET /v1/invoices.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by status"
// @Param        client_id  query     string  false  "Filter by client"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Rows per page (max 100)"
// @Success      200        {object}  listInvoicesResponse
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), sc, ports.ListInvoicesFilter{
		Status:   c.QueryParam("status"),
		ClientID: c.QueryParam("client_id"),
		Page:     queryInt(c.QueryParam("page")),
		Limit:    queryInt(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listInvoicesResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/invoices/:id.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	invoice, err := h.service.Get(c.Request().Context(), sc, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// Send handles POST /v1/invoices/:id/send (draft → sent).
//
// @Summary      Mark an invoice sent
// @Tags         invoices
// @Security     BearerAuth
// @Param        id   path  string  true  "Invoice id"
// @Success      204  "sent"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	if err := h.service.MarkSent(c.Request().Context(), sc, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Pay handles POST /v1/invoices/:id/pay (sent → paid).
//
// @Summary      Mark an invoice paid
// @Tags         invoices
// @Security     BearerAuth
// @Param        id   path  string  true  "Invoice id"
// @Success      204  "paid"
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c echo.Context) error {
	sc, err := resolveScope(c, h.resolver)
	if err != nil {
		return err
	}

	if err := h.service.MarkPaid(c.Request().Context(), sc, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
