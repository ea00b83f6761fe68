package supabase

import (
	"context"

	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/nedpals/supabase-go"
)

type invoiceRepository struct {
	client *supabase.Client
	table  string
	logger *logger.Logger
}

func NewInvoiceRepository(cfg *config.Configuration, logger *logger.Logger) (invoice.Repository, error) {
	client := supabase.CreateClient(cfg.Supabase.BaseURL, cfg.Supabase.Key)
	if client == nil {
		return nil, ierr.NewError("failed to create supabase client").
			WithHint("Check supabase.base_url and supabase.key").
			Mark(ierr.ErrSystem)
	}

	return &invoiceRepository{
		client: client,
		table:  cfg.Supabase.Table,
		logger: logger,
	}, nil
}

// Get reads the most recently created row with the given number.
func (r *invoiceRepository) Get(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []invoice.Record
	err := r.client.DB.From(r.table).
		Select("*").
		OrderBy("created_at", "desc").
		Limit(1).
		Eq("invoice_number", invoiceNumber).
		ExecuteWithContext(ctx, &rows)
	if err != nil {
		r.logger.Errorw("failed to query supabase", "invoice_number", invoiceNumber, "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to load invoice").
			Mark(ierr.ErrHTTPClient)
	}

	if len(rows) == 0 {
		return nil, ierr.NewErrorf("invoice %s not found", invoiceNumber).
			WithHintf("Invoice %s was not found", invoiceNumber).
			Mark(ierr.ErrNotFound)
	}

	return rows[0].ToInvoice(), nil
}
