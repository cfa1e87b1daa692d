// Package server assembles the Fiber application: global middleware,
// operational endpoints and the project routes.
package server

import (
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "layoutlens/docs"
	"layoutlens/internal/config"
	handlers "layoutlens/internal/http/handler"
	"layoutlens/internal/http/middleware"
	"layoutlens/internal/service"
)

// Deps are the collaborators injected into the application.
type Deps struct {
	Projects service.ProjectService
	Logger   *zap.Logger
	// Registry receives the request metrics when metrics are enabled.
	// A nil registry disables /metrics regardless of config.
	Registry *prometheus.Registry
}

// New builds the Fiber app. Middleware order: tracing, request id, logging,
// metrics, then recover so that panics are logged and counted as 500s.
func New(cfg *config.AppConfig, deps Deps) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "LayoutLens API",
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          handlers.ErrorHandler(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
	}))
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(deps.Logger))

	if cfg.MetricsEnabled && deps.Registry != nil {
		prom, err := middleware.NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	app.Use(recover.New())

	if cfg.SwaggerEnabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	handlers.RegisterRoutes(app, deps.Projects)

	return app, nil
}
