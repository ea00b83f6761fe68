// Package cli holds the commands behind cmd/invoicegen.
package cli

import (
	"context"
	"path/filepath"

	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/pdf"
	"github.com/flexprice/gstinvoice/internal/repository/file"
	"github.com/flexprice/gstinvoice/internal/storage"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

const DefaultConcurrency = 4

// RenderOptions configures a batch render.
type RenderOptions struct {
	Files       []string
	Concurrency int
}

// RenderResult is the outcome for one input file.
type RenderResult struct {
	Source        string
	InvoiceNumber string
	Location      string
	Err           error
}

// Renderer turns invoice JSON files into stored PDFs.
type Renderer struct {
	fs        afero.Fs
	generator pdf.Generator
	store     storage.Store
	logger    *logger.Logger
}

func NewRenderer(fs afero.Fs, generator pdf.Generator, store storage.Store, logger *logger.Logger) *Renderer {
	return &Renderer{
		fs:        fs,
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// RenderFiles renders every file on a bounded pool. A failing file does not
// stop the others; results keep the input order and the returned error joins
// every failure.
func (r *Renderer) RenderFiles(ctx context.Context, opts RenderOptions) ([]RenderResult, error) {
	if len(opts.Files) == 0 {
		return nil, ierr.NewError("no input files").
			WithHint("Pass at least one invoice JSON file").
			Mark(ierr.ErrValidation)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]RenderResult, len(opts.Files))
	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(concurrency)
	for i, path := range opts.Files {
		p.Go(func(ctx context.Context) error {
			results[i] = r.renderFile(ctx, path)
			return results[i].Err
		})
	}
	err := p.Wait()

	return results, err
}

func (r *Renderer) renderFile(ctx context.Context, path string) RenderResult {
	result := RenderResult{Source: path}

	inv, err := file.Load(r.fs, path)
	if err != nil {
		result.Err = ierr.WithError(err).WithMessagef("load %s", filepath.Base(path)).Error()
		return result
	}
	result.InvoiceNumber = inv.InvoiceNumber

	if err := inv.Validate(); err != nil {
		result.Err = err
		return result
	}

	data, err := r.generator.RenderInvoicePdf(ctx, *inv)
	if err != nil {
		result.Err = err
		return result
	}

	obj, err := r.store.Save(ctx, storage.NewDocument(invoice.FileName(inv.InvoiceNumber), data))
	if err != nil {
		result.Err = err
		return result
	}
	result.Location = obj.Location

	r.logger.Infow("rendered invoice",
		"source", path,
		"invoice_number", inv.InvoiceNumber,
		"location", obj.Location,
	)
	return result
}
