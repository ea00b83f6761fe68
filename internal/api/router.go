package api

import (
	v1 "github.com/flexprice/gstinvoice/internal/api/v1"
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/rest/middleware"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Invoice *v1.InvoiceHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.SentryRequestTags,
		middleware.CORSMiddleware,
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(logger),
	)

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	invoices := router.Group("/invoices")
	{
		invoices.POST("/pdf", handlers.Invoice.RenderInvoicePDF)
		invoices.GET("/:number/pdf", handlers.Invoice.GetInvoicePDF)
	}
}
