package repository

import (
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/postgres"
	fileRepo "github.com/flexprice/gstinvoice/internal/repository/file"
	postgresRepo "github.com/flexprice/gstinvoice/internal/repository/postgres"
	supabaseRepo "github.com/flexprice/gstinvoice/internal/repository/supabase"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/spf13/afero"
)

// NewInvoiceRepository picks the invoice source from configuration. The
// postgres handle is only opened when that source is selected.
func NewInvoiceRepository(cfg *config.Configuration, logger *logger.Logger) (invoice.Repository, error) {
	switch cfg.Invoice.Source {
	case types.InvoiceSourceFile:
		return fileRepo.NewInvoiceRepository(afero.NewOsFs(), cfg.Invoice.SourceDir, logger), nil
	case types.InvoiceSourceSupabase:
		return supabaseRepo.NewInvoiceRepository(cfg, logger)
	case types.InvoiceSourcePostgres:
		db, err := postgres.NewDB(cfg, logger)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to connect to postgres").
				Mark(ierr.ErrDatabase)
		}
		return postgresRepo.NewInvoiceRepository(db, cfg.Postgres.Table, logger), nil
	default:
		return nil, ierr.NewErrorf("unknown invoice source: %s", cfg.Invoice.Source).
			Mark(ierr.ErrValidation)
	}
}
