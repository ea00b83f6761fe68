package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/postgres"
)

type invoiceRepository struct {
	db     postgres.Querier
	table  string
	logger *logger.Logger
}

func NewInvoiceRepository(db postgres.Querier, table string, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, table: table, logger: logger}
}

func (r *invoiceRepository) Get(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	query := fmt.Sprintf(`
	SELECT
		invoice_number, invoice_date,
		business_name, COALESCE(business_address, '') AS business_address, COALESCE(business_gst, '') AS business_gst,
		customer_name, COALESCE(customer_address, '') AS customer_address, COALESCE(customer_gst, '') AS customer_gst,
		items,
		COALESCE(subtotal, 0) AS subtotal, COALESCE(gst_amount, 0) AS gst_amount, COALESCE(total_amount, 0) AS total_amount,
		created_at
	FROM %s
	WHERE invoice_number = $1
	ORDER BY created_at DESC
	LIMIT 1
	`, r.table)

	var rec invoice.Record
	if err := r.db.GetContext(ctx, &rec, query, invoiceNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice %s was not found", invoiceNumber).
				Mark(ierr.ErrNotFound)
		}
		r.logger.Errorw("failed to load invoice", "invoice_number", invoiceNumber, "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to load invoice").
			Mark(ierr.ErrDatabase)
	}

	return rec.ToInvoice(), nil
}
