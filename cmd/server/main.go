package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flexprice/gstinvoice/internal/api"
	v1 "github.com/flexprice/gstinvoice/internal/api/v1"
	"github.com/flexprice/gstinvoice/internal/cache"
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/pdf"
	"github.com/flexprice/gstinvoice/internal/repository"
	"github.com/flexprice/gstinvoice/internal/sentry"
	"github.com/flexprice/gstinvoice/internal/service"
	"github.com/flexprice/gstinvoice/internal/storage"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			config.NewConfig,

			logger.NewLogger,

			provideCache,

			storage.NewStore,

			repository.NewInvoiceRepository,

			pdf.NewGenerator,
		),
	)

	opts = append(opts, sentry.Module())

	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewInvoicePDFService,
		),
	)

	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideCache(cfg *config.Configuration, logger *logger.Logger) cache.Cache {
	return cache.NewInMemoryCache(cfg, logger)
}

func provideHandlers(
	logger *logger.Logger,
	invoicePDFService service.InvoicePDFService,
) api.Handlers {
	return api.Handlers{
		Health:  v1.NewHealthHandler(logger),
		Invoice: v1.NewInvoiceHandler(invoicePDFService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
