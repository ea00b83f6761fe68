package service

import (
	"github.com/flexprice/gstinvoice/internal/cache"
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/pdf"
	"github.com/flexprice/gstinvoice/internal/sentry"
	"github.com/flexprice/gstinvoice/internal/storage"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger       *logger.Logger
	Config       *config.Configuration
	PDFGenerator pdf.Generator
	Store        storage.Store
	Cache        cache.Cache
	Sentry       *sentry.Service

	// Repositories
	InvoiceRepo invoice.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	pdfGenerator pdf.Generator,
	store storage.Store,
	cache cache.Cache,
	sentry *sentry.Service,
	invoiceRepo invoice.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		PDFGenerator: pdfGenerator,
		Store:        store,
		Cache:        cache,
		Sentry:       sentry,
		InvoiceRepo:  invoiceRepo,
	}
}
