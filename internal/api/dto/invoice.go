package dto

import (
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
)

// RenderInvoicePDFRequest is the body of POST /v1/invoices/pdf. It carries the
// complete invoice; cached totals in the body are ignored by the renderer.
type RenderInvoicePDFRequest struct {
	invoice.Invoice
}

func (r *RenderInvoicePDFRequest) Validate() error {
	return r.Invoice.Validate()
}

// InvoicePDF is a rendered and stored invoice document.
type InvoicePDF struct {
	InvoiceNumber string `json:"invoice_number"`
	FileName      string `json:"file_name"`
	ContentType   string `json:"content_type"`
	Location      string `json:"location"`
	Data          []byte `json:"-"`
}

// InvoicePDFURLResponse points at a stored invoice document.
type InvoicePDFURLResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	FileName      string `json:"file_name"`
	URL           string `json:"presigned_url"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
