package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agencyops/backoffice/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrAgencyNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrInvoiceNotFound, http.StatusNotFound},
		{domain.ErrReminderNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNoTenantAccess, http.StatusForbidden},
		{domain.ErrAgencyRequired, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			code, msg := runErrorHandler(t, tc.err)
			if code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Error("error envelope must carry a message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("load invoice: %w", domain.ErrInvoiceNotFound)
	code, _ := runErrorHandler(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped domain errors must still map, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("expected echo message to pass through, got %q", msg)
	}
}

func TestErrorHandler_UnexpectedError_Masked(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", msg)
	}
}
