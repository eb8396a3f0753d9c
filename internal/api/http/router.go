package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushub/studenthub/internal/api/http/handlers"
	"github.com/campushub/studenthub/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Feedback       *handlers.FeedbackHandler
	Notifications  *handlers.NotificationsHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.Middleware
	Registry       *prometheus.Registry
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.SignUp)
	authGroup.Post("/signin", cfg.Auth.SignIn)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)
	authGroup.Put("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.UpdateProfile)

	feedbackGroup := app.Group("/feedback", cfg.AuthMiddleware.Handle)
	feedbackGroup.Post("", cfg.Feedback.Submit)
	feedbackGroup.Get("", cfg.Feedback.List)
	feedbackGroup.Get("/:id", cfg.Feedback.GetOne)

	notificationsGroup := app.Group("/notifications", cfg.AuthMiddleware.Handle)
	notificationsGroup.Get("", cfg.Notifications.List)
	notificationsGroup.Get("/count", cfg.Notifications.Count)
	notificationsGroup.Put("/:id/read", cfg.Notifications.MarkRead)

	app.Get("/resources", cfg.Catalog.ListResources)
	app.Post("/resources/:id/download", cfg.AuthMiddleware.Handle, cfg.Catalog.DownloadResource)
	app.Get("/departments", cfg.Catalog.ListDepartments)
	app.Get("/announcements", cfg.Catalog.ListAnnouncements)
	app.Post("/init-data", cfg.Catalog.InitData)
}
