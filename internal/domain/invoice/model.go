package invoice

import (
	"encoding/json"
	"strings"
	"time"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Invoice is the immutable input of the document engine. It is built once by
// whichever collaborator owns the record and is passed around by value.
type Invoice struct {
	InvoiceNumber string     `json:"invoice_number" validate:"required"`
	InvoiceDate   Date       `json:"invoice_date"`
	Business      Party      `json:"business"`
	Customer      Party      `json:"customer"`
	Items         []LineItem `json:"items" validate:"dive"`

	// Cached totals as stored by the order-entry side. They are never used
	// for rendering; see calc.Compute.
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Party is either side of the invoice: the issuing business or the customer.
type Party struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// LineItem is a single billed row.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"gte=0"`
	Rate        decimal.Decimal `json:"rate"`
	TaxRate     decimal.Decimal `json:"gst_rate"`
}

// Validate checks the preconditions the engine relies on. The engine itself
// does not re-check them.
func (inv Invoice) Validate() error {
	if err := validator.ValidateRequest(inv, "Invoice validation failed"); err != nil {
		return err
	}

	if inv.InvoiceDate.IsZero() {
		return ierr.NewError("invoice date is required").
			WithHint("Invoice date is required").
			Mark(ierr.ErrValidation)
	}

	for i, item := range inv.Items {
		if item.Rate.IsNegative() {
			return ierr.NewErrorf("item %d has negative rate %s", i, item.Rate).
				WithHint("Item rate must not be negative").
				WithReportableDetails(map[string]any{"item": i}).
				Mark(ierr.ErrValidation)
		}
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewErrorf("item %d has tax rate %s outside 0-100", i, item.TaxRate).
				WithHint("Item tax rate must be between 0 and 100").
				WithReportableDetails(map[string]any{"item": i}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// TaxRates returns the distinct tax rates on the invoice in item order.
func (inv Invoice) TaxRates() []decimal.Decimal {
	rates := lo.Map(inv.Items, func(item LineItem, _ int) decimal.Decimal {
		return item.TaxRate
	})
	return lo.UniqBy(rates, func(d decimal.Decimal) string {
		return d.String()
	})
}

// FileName is the artifact name for the invoice: invoice-<number>.pdf.
// Path separators in the number are replaced so the name is always a single
// path element.
func FileName(invoiceNumber string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, strings.TrimSpace(invoiceNumber))
	return "invoice-" + safe + ".pdf"
}

// Date is a calendar date that accepts both "2006-01-02" and RFC 3339 in JSON.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.parse(raw)
}

func (d *Date) parse(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("invalid date %q, expected YYYY-MM-DD", raw).
			Mark(ierr.ErrValidation)
	}
	d.Time = t
	return nil
}

// ParseDate parses the same formats accepted by Date in JSON.
func ParseDate(raw string) (Date, error) {
	var d Date
	err := d.parse(raw)
	return d, err
}
