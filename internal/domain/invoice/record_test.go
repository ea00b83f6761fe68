package invoice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToInvoice(t *testing.T) {
	var items StoredItems
	require.NoError(t, items.Scan([]byte(`[{"description":"Widget","quantity":3,"rate":"99.5","gstRate":12}]`)))

	rec := Record{
		InvoiceNumber: "INV-7",
		InvoiceDate:   NewDate(2024, time.March, 1),
		BusinessName:  "Acme",
		BusinessGST:   "29ABCDE1234F1Z5",
		CustomerName:  "Globex",
		Items:         items,
		GSTAmount:     decimal.RequireFromString("35.82"),
	}

	inv := rec.ToInvoice()
	assert.Equal(t, "Acme", inv.Business.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", inv.Business.GSTIN)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, int64(3), inv.Items[0].Quantity)
	assert.True(t, inv.Items[0].TaxRate.Equal(decimal.NewFromInt(12)))
	assert.True(t, inv.TaxAmount.Equal(decimal.RequireFromString("35.82")))

	assert.Equal(t, rec, NewRecord(*inv))
}

func TestStoredItemsScan(t *testing.T) {
	var items StoredItems
	require.NoError(t, items.Scan(`[]`))
	assert.Empty(t, items)

	require.NoError(t, items.Scan(nil))
	assert.Nil(t, items)

	assert.Error(t, items.Scan(42))
	assert.Error(t, items.Scan([]byte(`{"not":"a list"}`)))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.May, 9, 13, 45, 0, 0, time.FixedZone("IST", 19800))))
	assert.Equal(t, "2024-05-09", d.Format("2006-01-02"))

	require.NoError(t, d.Scan([]byte("2023-12-31")))
	assert.Equal(t, 2023, d.Year())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", v)

	assert.Error(t, d.Scan(3.14))
}

func TestStoredItemsStringifiedArray(t *testing.T) {
	var items StoredItems
	require.NoError(t, items.Scan(`"[{\"description\":\"Widget\",\"quantity\":2,\"rate\":100,\"gstRate\":18}]"`))
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Description)

	var rec Record
	payload := `{"invoice_number":"INV-1","items":"[{\"description\":\"Bolt\",\"quantity\":5,\"rate\":2.5,\"gstRate\":5}]"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	require.Len(t, rec.Items, 1)
	assert.Equal(t, int64(5), rec.Items[0].Quantity)
	assert.True(t, rec.Items[0].Rate.Equal(decimal.RequireFromString("2.5")))

	require.NoError(t, json.Unmarshal([]byte(`{"items":null}`), &rec))
	assert.Nil(t, rec.Items)

	assert.Error(t, json.Unmarshal([]byte(`{"items":"not json"}`), &rec))
}

func TestRecordToInvoice_FallsBackToCreatedAt(t *testing.T) {
	var rec Record
	payload := `{"invoice_number":"INV-2","invoice_date":null,"created_at":"2024-01-15T10:20:30.123456+00:00"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))
	assert.True(t, rec.InvoiceDate.IsZero())

	inv := rec.ToInvoice()
	assert.Equal(t, "2024-01-15", inv.InvoiceDate.Format("2006-01-02"))

	rec.InvoiceDate = NewDate(2024, time.February, 1)
	assert.Equal(t, "2024-02-01", rec.ToInvoice().InvoiceDate.Format("2006-01-02"))
}
