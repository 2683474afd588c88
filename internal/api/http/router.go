package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/churn-service/internal/api/http/handlers"
	"github.com/spec-kit/churn-service/internal/auth"
	"github.com/spec-kit/churn-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Page           *handlers.PageHandler
	Predictions    *handlers.PredictionsHandler
	Operator       *handlers.OperatorHandler
	AuthMiddleware *auth.AuthMiddleware
	// PredictLimiter guards the endpoints that run the model.
	PredictLimiter fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	limit := cfg.PredictLimiter
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Get("/", cfg.Page.Index)
	app.Post("/predict", limit, cfg.Page.Predict)

	api := app.Group("/api/v1")
	api.Get("/schema", cfg.Predictions.Schema)
	api.Get("/model", cfg.Predictions.Model)
	api.Post("/predictions", limit, cfg.Predictions.Create)

	app.Post("/auth/operator/login", cfg.Operator.Login)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleOperator))
	admin.Post("/model/reload", cfg.Operator.ReloadModel)
}
