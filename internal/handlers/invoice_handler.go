package handlers

import (
	"net/http"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/services"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the submitted invoices.
type InvoiceHandler struct {
	invoiceService services.IInvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService services.IInvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// --- POST: /api/invoices ---
// CreateInvoice submits a complete draft in one call.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var draft invoice.Draft

	// 1. Parse JSON input
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// 2. Amounts sent by the client are not trusted
	draft.Recompute()

	// 3. Validate and save
	view, err := h.invoiceService.Submit(c.Request.Context(), &draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// --- GET: /api/invoices?q= ---
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// --- GET: /api/invoices/:id ---
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	view, err := h.invoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// --- DELETE: /api/invoices/:id ---
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
