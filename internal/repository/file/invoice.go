package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// invoiceRepository reads one JSON document per invoice from a directory,
// named <invoice_number>.json.
type invoiceRepository struct {
	fs     afero.Fs
	dir    string
	logger *logger.Logger
}

func NewInvoiceRepository(fs afero.Fs, dir string, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{fs: fs, dir: dir, logger: logger}
}

func (r *invoiceRepository) Get(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	name := strings.TrimSuffix(invoice.FileName(invoiceNumber), ".pdf")
	name = strings.TrimPrefix(name, "invoice-") + ".json"

	inv, err := Load(r.fs, filepath.Join(r.dir, name))
	if err != nil {
		return nil, err
	}
	if inv.InvoiceNumber != invoiceNumber {
		r.logger.Warnw("invoice file holds a different number",
			"invoice_number", invoiceNumber,
			"file_number", inv.InvoiceNumber,
		)
	}
	return inv, nil
}

// Load decodes a single invoice document. A missing invoice number is filled
// with a generated one derived from the file content.
func Load(fs afero.Fs, path string) (*invoice.Invoice, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice file %s was not found", filepath.Base(path)).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to read invoice file").
			Mark(ierr.ErrSystem)
	}

	var inv invoice.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Invoice file %s is not valid JSON", filepath.Base(path)).
			Mark(ierr.ErrValidation)
	}

	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		inv.InvoiceNumber = invoice.GenerateNumber(inv.InvoiceDate, string(data))
	}
	return &inv, nil
}
