package file

import (
	"context"
	"regexp"
	"testing"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"invoice_number": "INV/2024/7",
	"invoice_date": "2024-01-15",
	"business": {"name": "Acme Traders", "address": "12 MG Road", "gstin": "29ABCDE1234F1Z5"},
	"customer": {"name": "Globex Retail"},
	"items": [{"description": "Widget", "quantity": 2, "rate": "100", "gst_rate": "18"}]
}`

func TestGetInvoice(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/INV-2024-7.json", []byte(sample), 0o644))
	repo := NewInvoiceRepository(fs, "/data", logger.NewNopLogger())

	inv, err := repo.Get(context.Background(), "INV/2024/7")
	require.NoError(t, err)
	assert.Equal(t, "INV/2024/7", inv.InvoiceNumber)
	assert.Equal(t, "Acme Traders", inv.Business.Name)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "18", inv.Items[0].TaxRate.String())
}

func TestGetInvoiceMissing(t *testing.T) {
	repo := NewInvoiceRepository(afero.NewMemMapFs(), "/data", logger.NewNopLogger())

	_, err := repo.Get(context.Background(), "INV-1")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestLoadRejectsBadJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte(`{"items": [`), 0o644))

	_, err := Load(fs, "bad.json")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestLoadGeneratesMissingNumber(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"invoice_date": "2024-03-05", "business": {"name": "A"}, "customer": {"name": "B"}, "items": []}`
	require.NoError(t, afero.WriteFile(fs, "a.json", []byte(doc), 0o644))

	first, err := Load(fs, "a.json")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^INV-20240305-\d{4}$`), first.InvoiceNumber)

	second, err := Load(fs, "a.json")
	require.NoError(t, err)
	assert.Equal(t, first.InvoiceNumber, second.InvoiceNumber)
}
