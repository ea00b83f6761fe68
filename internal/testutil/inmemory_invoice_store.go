package testutil

import (
	"context"
	"sync"

	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
)

var _ invoice.Repository = (*InMemoryInvoiceStore)(nil)

// InMemoryInvoiceStore is an invoice.Repository backed by a map.
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]invoice.Invoice
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		invoices: make(map[string]invoice.Invoice),
	}
}

func (s *InMemoryInvoiceStore) Create(inv invoice.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.InvoiceNumber] = inv
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, invoiceNumber string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[invoiceNumber]
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s was not found", invoiceNumber).
			WithReportableDetails(map[string]any{"invoice_number": invoiceNumber}).
			Mark(ierr.ErrNotFound)
	}
	return &inv, nil
}

func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make(map[string]invoice.Invoice)
}
