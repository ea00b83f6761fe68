package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/flexprice/gstinvoice/internal/api/dto"
	"github.com/flexprice/gstinvoice/internal/cache"
	"github.com/flexprice/gstinvoice/internal/domain/invoice"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/sentry"
	"github.com/flexprice/gstinvoice/internal/storage"
	"github.com/flexprice/gstinvoice/internal/types"
	jsoniter "github.com/json-iterator/go"
)

type InvoicePDFService interface {
	// RenderInvoicePDF validates the invoice, renders it and stores the
	// document. Identical invoices are served from the cache.
	RenderInvoicePDF(ctx context.Context, inv invoice.Invoice) (*dto.InvoicePDF, error)
	// GetInvoicePDF loads the invoice from the configured source and renders it.
	GetInvoicePDF(ctx context.Context, invoiceNumber string) (*dto.InvoicePDF, error)
	// GetInvoicePDFUrl renders the invoice if needed and returns where the
	// stored document can be fetched from.
	GetInvoicePDFUrl(ctx context.Context, invoiceNumber string) (*dto.InvoicePDFURLResponse, error)
}

type invoicePDFService struct {
	ServiceParams
}

func NewInvoicePDFService(params ServiceParams) InvoicePDFService {
	return &invoicePDFService{ServiceParams: params}
}

func (s *invoicePDFService) RenderInvoicePDF(ctx context.Context, inv invoice.Invoice) (*dto.InvoicePDF, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	key, err := cacheKey(inv)
	if err != nil {
		return nil, err
	}
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if result, ok := cached.(*dto.InvoicePDF); ok {
			s.Logger.Debugw("serving cached invoice pdf", "invoice_number", inv.InvoiceNumber)
			return result, nil
		}
	}

	log := s.Logger.With(
		"render_id", types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RENDER),
		"request_id", types.GetRequestID(ctx),
		"invoice_number", inv.InvoiceNumber,
	)

	span, spanCtx := s.Sentry.StartRenderSpan(ctx, inv.InvoiceNumber)
	data, err := s.PDFGenerator.RenderInvoicePdf(spanCtx, inv)
	sentry.FinishSpan(span, err)
	if err != nil {
		if !ierr.IsValidation(err) {
			s.Sentry.CaptureException(err)
		}
		log.Errorw("failed to render invoice pdf", "error", err)
		return nil, err
	}

	doc := storage.NewDocument(invoice.FileName(inv.InvoiceNumber), data)
	span, spanCtx = s.Sentry.StartStorageSpan(ctx, "save", doc.Name)
	obj, err := s.Store.Save(spanCtx, doc)
	sentry.FinishSpan(span, err)
	if err != nil {
		s.Sentry.CaptureException(err)
		log.Errorw("failed to store invoice pdf", "file_name", doc.Name, "error", err)
		return nil, err
	}

	result := &dto.InvoicePDF{
		InvoiceNumber: inv.InvoiceNumber,
		FileName:      doc.Name,
		ContentType:   doc.ContentType,
		Location:      obj.Location,
		Data:          data,
	}
	s.Cache.Set(ctx, key, result, s.Config.Cache.TTL)

	log.Infow("invoice pdf rendered",
		"file_name", doc.Name,
		"location", obj.Location,
		"size", obj.Size,
	)
	return result, nil
}

func (s *invoicePDFService) GetInvoicePDF(ctx context.Context, invoiceNumber string) (*dto.InvoicePDF, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	return s.RenderInvoicePDF(ctx, *inv)
}

func (s *invoicePDFService) GetInvoicePDFUrl(ctx context.Context, invoiceNumber string) (*dto.InvoicePDFURLResponse, error) {
	result, err := s.GetInvoicePDF(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}

	url, err := s.Store.URL(ctx, result.FileName)
	if err != nil {
		return nil, err
	}

	return &dto.InvoicePDFURLResponse{
		InvoiceNumber: result.InvoiceNumber,
		FileName:      result.FileName,
		URL:           url,
	}, nil
}

// cacheKey identifies an invoice by number and content, so an edited invoice
// with the same number is rendered again.
func cacheKey(inv invoice.Invoice) (string, error) {
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(inv)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to marshal invoice").
			Mark(ierr.ErrSystem)
	}
	sum := sha256.Sum256(raw)
	return cache.GenerateKey(cache.PrefixInvoicePDF, inv.InvoiceNumber, hex.EncodeToString(sum[:8])), nil
}
