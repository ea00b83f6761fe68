package invoice

import "context"

// Repository is the read side of whatever system owns invoice records.
type Repository interface {
	// Get retrieves an invoice by its invoice number
	Get(ctx context.Context, invoiceNumber string) (*Invoice, error)
}
