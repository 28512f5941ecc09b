// Package api wires the HTTP surface: routes, middleware, validation, and
// the central error handler.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/agencyops/backoffice/docs"
	"github.com/agencyops/backoffice/internal/api/handler"
	"github.com/agencyops/backoffice/internal/api/middleware"
	"github.com/agencyops/backoffice/internal/core/domain"
	"github.com/agencyops/backoffice/pkg/logger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Agency       *handler.AgencyHandler
	Client       *handler.ClientHandler
	Project      *handler.ProjectHandler
	Invoice      *handler.InvoiceHandler
	Hosting      *handler.HostingHandler
	Reminder     *handler.ReminderHandler
	Notification *handler.NotificationHandler
	Health       *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(h Handlers, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Health.Readiness)

	// --- Auth routes ---
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))

	clients := v1.Group("/clients")
	clients.POST("", h.Client.Create)
	clients.GET("", h.Client.List)
	clients.GET("/:id", h.Client.Get)

	projects := v1.Group("/projects")
	projects.POST("", h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.Get)

	invoices := v1.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.Get)
	invoices.POST("/:id/send", h.Invoice.Send)
	invoices.POST("/:id/pay", h.Invoice.Pay)

	hosting := v1.Group("/hosting")
	hosting.POST("", h.Hosting.Create)
	hosting.GET("", h.Hosting.List)
	hosting.GET("/:id", h.Hosting.Get)

	reminders := v1.Group("/reminders")
	reminders.POST("", h.Reminder.Create)
	reminders.GET("", h.Reminder.List)
	reminders.GET("/:id", h.Reminder.Get)
	reminders.POST("/:id/complete", h.Reminder.Complete)
	reminders.DELETE("/:id", h.Reminder.Delete)

	notifications := v1.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.POST("/:id/read", h.Notification.MarkRead)
	notifications.POST("/read-all", h.Notification.MarkAllRead)
	notifications.POST("/generate", h.Notification.Generate, middleware.RequireRole(domain.RoleAdmin))

	// Agency management is reserved for the platform operator.
	agencies := v1.Group("/agencies", middleware.RequireRole(domain.RoleSuperAdmin))
	agencies.POST("", h.Agency.Create)
	agencies.GET("", h.Agency.List)

	return e
}
