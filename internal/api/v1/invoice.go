package v1

import (
	"fmt"
	"net/http"

	"github.com/flexprice/gstinvoice/internal/api/dto"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/service"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoicePDFService service.InvoicePDFService
	logger            *logger.Logger
}

func NewInvoiceHandler(invoicePDFService service.InvoicePDFService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoicePDFService: invoicePDFService,
		logger:            logger,
	}
}

// RenderInvoicePDF godoc
// @Summary Render an invoice PDF
// @Description Render the invoice in the request body into a GST tax invoice and store it
// @Tags Invoices
// @Accept json
// @Produce application/pdf
// @Param invoice body dto.RenderInvoicePDFRequest true "Invoice"
// @Success 200 {file} application/pdf
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/pdf [post]
func (h *InvoiceHandler) RenderInvoicePDF(c *gin.Context) {
	var req dto.RenderInvoicePDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	pdf, err := h.invoicePDFService.RenderInvoicePDF(c.Request.Context(), req.Invoice)
	if err != nil {
		h.logger.Errorw("failed to render invoice pdf", "error", err, "invoice_number", req.InvoiceNumber)
		c.Error(err)
		return
	}

	h.writePDF(c, pdf)
}

// GetInvoicePDF godoc
// @Summary Get PDF for an invoice
// @Description Load the invoice from the configured source, render and store it
// @Tags Invoices
// @Param number path string true "Invoice number"
// @Param url query bool false "Return the stored document URL instead of the PDF"
// @Success 200 {file} application/pdf
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/{number}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		c.Error(ierr.NewError("invalid invoice number").WithHint("invalid invoice number").Mark(ierr.ErrValidation))
		return
	}

	if c.Query("url") == "true" {
		resp, err := h.invoicePDFService.GetInvoicePDFUrl(c.Request.Context(), number)
		if err != nil {
			h.logger.Errorw("failed to get invoice pdf url", "error", err, "invoice_number", number)
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	pdf, err := h.invoicePDFService.GetInvoicePDF(c.Request.Context(), number)
	if err != nil {
		h.logger.Errorw("failed to generate invoice pdf", "error", err, "invoice_number", number)
		c.Error(err)
		return
	}

	h.writePDF(c, pdf)
}

func (h *InvoiceHandler) writePDF(c *gin.Context, pdf *dto.InvoicePDF) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", pdf.FileName))
	c.Data(http.StatusOK, pdf.ContentType, pdf.Data)
}
