package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-route-optimizer/config"
	_ "delivery-route-optimizer/docs" // Swagger docs
	"delivery-route-optimizer/internal/httpserver"
	"delivery-route-optimizer/internal/middleware"
	"delivery-route-optimizer/internal/route"
	routeHTTP "delivery-route-optimizer/internal/route/delivery/http"
	"delivery-route-optimizer/internal/route/reasoner"
	"delivery-route-optimizer/internal/route/usecase"
	"delivery-route-optimizer/pkg/llmprovider"
	"delivery-route-optimizer/pkg/log"
)

// @title       Delivery Route Optimizer API
// @description Route ranking engine: deterministic priority ordering with LLM-backed contextual adjustment.
// @version     1
// @host        localhost:8001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Delivery Route Optimizer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reasoning provider chain. Degraded mode without providers:
	// the engine still serves baseline orderings.
	var routeReasoner route.Reasoner

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No reasoning providers available, serving baseline orderings only: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 30*time.Second),
		}, logger)
		routeReasoner = reasoner.New(manager, logger)
		logger.Infof(ctx, "Initialized %d reasoning provider(s)", len(providers))
	}

	// 4. Route domain
	routeUC := usecase.New(logger, routeReasoner, usecase.Config{
		Limits: route.Limits{
			MaxAddresses:  cfg.Engine.MaxAddresses,
			MaxAddressLen: cfg.Engine.MaxAddressLen,
			PriorityMin:   cfg.Engine.PriorityMin,
			PriorityMax:   cfg.Engine.PriorityMax,
		},
		BaseStopMinutes: cfg.Engine.BaseStopMinutes,
		SpreadFactor:    cfg.Engine.SpreadFactor,
		ReasonerTimeout: parseDuration(cfg.Engine.ReasonerTimeout, 5*time.Second),
		ReasonerBackoff: parseDuration(cfg.Engine.ReasonerBackoff, 500*time.Millisecond),
	})
	routeHandler := routeHTTP.New(logger, routeUC)

	// 5. Middleware (request id + rate limiting)
	mw := middleware.New(logger, cfg.RateLimit)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		RouteHandler: routeHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx, mw); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
