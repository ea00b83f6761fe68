package pdf

import (
	"bytes"
	"context"

	"github.com/flexprice/gstinvoice/internal/calc"
	"github.com/flexprice/gstinvoice/internal/config"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/taxsummary"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderInvoicePdf(ctx context.Context, inv invoice.Invoice) ([]byte, error)
}

type Config struct {
	MinItemRows int
}

type service struct {
	config     Config
	aggregator *taxsummary.Aggregator
	surface    SurfaceFactory
	logger     *logger.Logger
}

// NewGenerator creates a new PDF service drawing with gofpdf
func NewGenerator(cfg *config.Configuration, logger *logger.Logger) Generator {
	return newGenerator(
		Config{MinItemRows: cfg.Invoice.MinItemRows},
		taxsummary.NewAggregator(cfg.Invoice.TaxSummary()),
		NewFpdfSurface,
		logger,
	)
}

func newGenerator(cfg Config, agg *taxsummary.Aggregator, surface SurfaceFactory, logger *logger.Logger) *service {
	return &service{
		config:     cfg,
		aggregator: agg,
		surface:    surface,
		logger:     logger,
	}
}

// RenderInvoicePdf lays out the invoice on a single page and returns the
// encoded file. The invoice is expected to have passed Validate; the only
// check made here is the bracket policy.
func (s *service) RenderInvoicePdf(ctx context.Context, inv invoice.Invoice) ([]byte, error) {
	if err := s.aggregator.Check(inv.Items); err != nil {
		return nil, err
	}

	doc := NewDocument(inv, s.aggregator)
	s.report(doc)

	surface := s.surface(inv.InvoiceDate.Time)
	end := NewLayout(surface, s.config.MinItemRows).Render(doc)
	if _, height := surface.PageSize(); end.Y > height {
		s.logger.Warnw("invoice content overflows the page",
			"invoice_number", inv.InvoiceNumber,
			"items", len(inv.Items),
			"end_y", end.Y,
		)
	}

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to encode invoice pdf").
			Mark(ierr.ErrSystem)
	}

	return buf.Bytes(), nil
}

func (s *service) report(doc Document) {
	if drift := calc.Drift(doc.Invoice, doc.Totals); len(drift) > 0 {
		s.logger.Warnw("stored invoice totals differ from recomputed totals",
			"invoice_number", doc.Invoice.InvoiceNumber,
			"fields", drift,
		)
	}
	if len(doc.Summary.Excluded) > 0 {
		s.logger.Warnw("items left out of the tax summary",
			"invoice_number", doc.Invoice.InvoiceNumber,
			"items", doc.Summary.Excluded,
		)
	}
}
