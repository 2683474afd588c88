package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/churn-service/internal/api/http"
	"github.com/spec-kit/churn-service/internal/api/http/handlers"
	"github.com/spec-kit/churn-service/internal/api/web"
	"github.com/spec-kit/churn-service/internal/auth"
	"github.com/spec-kit/churn-service/internal/classifier"
	"github.com/spec-kit/churn-service/internal/config"
	"github.com/spec-kit/churn-service/internal/events"
	"github.com/spec-kit/churn-service/internal/observability"
	"github.com/spec-kit/churn-service/internal/persistence"
	"github.com/spec-kit/churn-service/internal/service"
	"github.com/spec-kit/churn-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	model, err := classifier.Open(cfg.Model.Path)
	if err != nil {
		logger.Fatal("failed to load model artifact", zap.String("path", cfg.Model.Path), zap.Error(err))
	}
	logger.Info("model loaded",
		zap.String("path", cfg.Model.Path),
		zap.String("model", model.Current().Name()),
		zap.Strings("columns", model.Current().Columns()),
	)

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartPredictionAuditor(dispatcher, logger, metrics)

	predictionService := service.NewPredictionService(model, dispatcher, logger)
	recordValidator := service.NewRecordValidator()
	authService := service.NewAuthService(cfg.Auth, model, dispatcher, logger)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse page templates", zap.Error(err))
	}

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, model, redis, metrics),
		Page:           handlers.NewPageHandler(renderer, predictionService, recordValidator, model, logger),
		Predictions:    handlers.NewPredictionsHandler(predictionService, recordValidator, model),
		Operator:       handlers.NewOperatorHandler(authService),
		AuthMiddleware: authMiddleware,
		PredictLimiter: httptransport.PredictLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window(), redis.LimiterStorage()),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
