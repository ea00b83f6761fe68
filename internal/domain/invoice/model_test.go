package invoice

import (
	"encoding/json"
	"testing"
	"time"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInvoice() Invoice {
	return Invoice{
		InvoiceNumber: "INV-20240115-4821",
		InvoiceDate:   NewDate(2024, time.January, 15),
		Business:      Party{Name: "Acme Traders", Address: "12 MG Road, Pune", GSTIN: "27AAAAA0000A1Z5"},
		Customer:      Party{Name: "Globex", Address: "4 Park Street, Kolkata", GSTIN: "19BBBBB1111B1Z6"},
		Items: []LineItem{
			{Description: "Widget", Quantity: 2, Rate: decimal.NewFromInt(150), TaxRate: decimal.NewFromInt(18)},
		},
	}
}

func TestInvoiceValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(inv *Invoice)
		ok     bool
	}{
		{name: "valid", mutate: func(inv *Invoice) {}, ok: true},
		{name: "no items is still valid", mutate: func(inv *Invoice) { inv.Items = nil }, ok: true},
		{name: "missing number", mutate: func(inv *Invoice) { inv.InvoiceNumber = "" }},
		{name: "missing business name", mutate: func(inv *Invoice) { inv.Business.Name = "" }},
		{name: "missing date", mutate: func(inv *Invoice) { inv.InvoiceDate = Date{} }},
		{name: "negative quantity", mutate: func(inv *Invoice) { inv.Items[0].Quantity = -1 }},
		{name: "negative rate", mutate: func(inv *Invoice) { inv.Items[0].Rate = decimal.NewFromInt(-5) }},
		{name: "tax rate above 100", mutate: func(inv *Invoice) { inv.Items[0].TaxRate = decimal.NewFromInt(101) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			tt.mutate(&inv)
			err := inv.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestTaxRates(t *testing.T) {
	inv := validInvoice()
	inv.Items = append(inv.Items,
		LineItem{Quantity: 1, Rate: decimal.NewFromInt(10), TaxRate: decimal.NewFromInt(5)},
		LineItem{Quantity: 1, Rate: decimal.NewFromInt(10), TaxRate: decimal.NewFromInt(18)},
	)

	rates := inv.TaxRates()
	require.Len(t, rates, 2)
	assert.Equal(t, "18", rates[0].String())
	assert.Equal(t, "5", rates[1].String())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "invoice-INV-001.pdf", FileName("INV-001"))
	assert.Equal(t, "invoice-2024-25-017.pdf", FileName("2024/25/017"))
	assert.Equal(t, "invoice-A-B.pdf", FileName(" A:B "))
}

func TestDateJSON(t *testing.T) {
	var inv Invoice
	err := json.Unmarshal([]byte(`{
		"invoice_number": "INV-1",
		"invoice_date": "2024-03-09",
		"items": [{"description": "x", "quantity": 3, "rate": "10.50", "gst_rate": 12}]
	}`), &inv)
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 9).Time, inv.InvoiceDate.Time)
	assert.True(t, inv.Items[0].Rate.Equal(decimal.RequireFromString("10.5")))

	out, err := json.Marshal(inv.InvoiceDate)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(out))

	d, err := ParseDate("2024-03-09T10:00:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, 9, d.Day())

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestGenerateNumber(t *testing.T) {
	date := NewDate(2024, time.January, 15)
	a := GenerateNumber(date, "acme")
	b := GenerateNumber(date, "acme")

	assert.Equal(t, a, b)
	assert.Regexp(t, `^INV-20240115-[1-9][0-9]{3}$`, a)
}
