package invoice

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"time"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Record is the flat shape invoices are persisted in: one row per invoice
// with the parties denormalised and the items kept as a JSON column.
type Record struct {
	InvoiceNumber   string          `json:"invoice_number" db:"invoice_number"`
	InvoiceDate     Date            `json:"invoice_date" db:"invoice_date"`
	BusinessName    string          `json:"business_name" db:"business_name"`
	BusinessAddress string          `json:"business_address" db:"business_address"`
	BusinessGST     string          `json:"business_gst" db:"business_gst"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerAddress string          `json:"customer_address" db:"customer_address"`
	CustomerGST     string          `json:"customer_gst" db:"customer_gst"`
	Items           StoredItems     `json:"items" db:"items"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	GSTAmount       decimal.Decimal `json:"gst_amount" db:"gst_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	CreatedAt       Date            `json:"created_at" db:"created_at"`
}

// StoredItem is a line item as written by the order-entry side.
type StoredItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	GSTRate     decimal.Decimal `json:"gstRate"`
}

// StoredItems scans a JSON or JSONB column. Rows written by the web form hold
// the array serialised once more as a JSON string; both shapes are accepted.
type StoredItems []StoredItem

func (s *StoredItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return s.decode(v)
	case string:
		return s.decode([]byte(v))
	default:
		return ierr.NewErrorf("cannot scan %T into items", src).
			Mark(ierr.ErrDatabase)
	}
}

func (s *StoredItems) UnmarshalJSON(data []byte) error {
	return s.decode(data)
}

func (s *StoredItems) decode(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*s = nil
		return nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return ierr.WithError(err).
				WithHint("Invoice items are not valid JSON").
				Mark(ierr.ErrValidation)
		}
		return s.decode([]byte(inner))
	}

	var items []StoredItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return ierr.WithError(err).
			WithHint("Invoice items are not valid JSON").
			Mark(ierr.ErrValidation)
	}
	*s = items
	return nil
}

func (s StoredItems) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// ToInvoice maps the row onto the document model. Rows without an invoice
// date are dated by their creation time.
func (r Record) ToInvoice() *Invoice {
	date := r.InvoiceDate
	if date.IsZero() {
		date = r.CreatedAt
	}

	return &Invoice{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceDate:   date,
		Business: Party{
			Name:    r.BusinessName,
			Address: r.BusinessAddress,
			GSTIN:   r.BusinessGST,
		},
		Customer: Party{
			Name:    r.CustomerName,
			Address: r.CustomerAddress,
			GSTIN:   r.CustomerGST,
		},
		Items: lo.Map(r.Items, func(item StoredItem, _ int) LineItem {
			return LineItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				TaxRate:     item.GSTRate,
			}
		}),
		Subtotal:    r.Subtotal,
		TaxAmount:   r.GSTAmount,
		TotalAmount: r.TotalAmount,
	}
}

// NewRecord flattens an invoice into its stored shape.
func NewRecord(inv Invoice) Record {
	return Record{
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate,
		BusinessName:    inv.Business.Name,
		BusinessAddress: inv.Business.Address,
		BusinessGST:     inv.Business.GSTIN,
		CustomerName:    inv.Customer.Name,
		CustomerAddress: inv.Customer.Address,
		CustomerGST:     inv.Customer.GSTIN,
		Items: lo.Map(inv.Items, func(item LineItem, _ int) StoredItem {
			return StoredItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				Rate:        item.Rate,
				GSTRate:     item.TaxRate,
			}
		}),
		Subtotal:    inv.Subtotal,
		GSTAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
	}
}

// Scan reads a DATE, TIMESTAMP or text column.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return ierr.NewErrorf("cannot scan %T into date", src).
		Mark(ierr.ErrDatabase)
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}
