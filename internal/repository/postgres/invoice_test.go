package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"invoice_number", "invoice_date",
	"business_name", "business_address", "business_gst",
	"customer_name", "customer_address", "customer_gst",
	"items", "subtotal", "gst_amount", "total_amount",
	"created_at",
}

func newRepo(t *testing.T) (*invoiceRepository, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	db := postgres.NewFromSqlx(sqlx.NewDb(raw, "postgres"), logger.NewNopLogger())
	repo := NewInvoiceRepository(db, "invoices", logger.NewNopLogger()).(*invoiceRepository)
	return repo, mock
}

func TestGetInvoice(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices")).
		WithArgs("INV-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"INV-1", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			"Acme", "12 MG Road", "29ABCDE1234F1Z5",
			"Globex", "", "",
			[]byte(`[{"description":"Widget","quantity":2,"rate":100,"gstRate":18}]`),
			"200.00", "36.00", "236.00",
			time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		))

	inv, err := repo.Get(context.Background(), "INV-1")
	require.NoError(t, err)
	assert.Equal(t, "INV-1", inv.InvoiceNumber)
	assert.Equal(t, "29/02/2024", inv.InvoiceDate.Format("02/01/2006"))
	assert.Equal(t, "Globex", inv.Customer.Name)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].TaxRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(236)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInvoiceDatedByCreatedAt(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("created_at")).
		WithArgs("INV-2").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"INV-2", nil,
			"Acme", "", "",
			"Globex", "", "",
			`"[{\"description\":\"Bolt\",\"quantity\":4,\"rate\":25,\"gstRate\":5}]"`,
			"100.00", "5.00", "105.00",
			time.Date(2024, 1, 15, 10, 20, 30, 0, time.UTC),
		))

	inv, err := repo.Get(context.Background(), "INV-2")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", inv.InvoiceDate.Format("02/01/2006"))
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Bolt", inv.Items[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInvoiceNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices")).
		WithArgs("INV-404").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Get(context.Background(), "INV-404")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestGetInvoiceDatabaseError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices")).
		WithArgs("INV-1").
		WillReturnError(assert.AnError)

	_, err := repo.Get(context.Background(), "INV-1")
	require.Error(t, err)
	assert.True(t, ierr.IsDatabase(err))
}
