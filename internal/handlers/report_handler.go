package handlers

import (
	"net/http"

	"go-invoice-maker/internal/services"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the analytics screen.
type ReportHandler struct {
	invoiceService services.IInvoiceService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(invoiceService services.IInvoiceService) *ReportHandler {
	return &ReportHandler{invoiceService: invoiceService}
}

// --- GET: /api/reports/summary ---
// GetSummary returns invoice count, tax totals, top customers and the latest invoices.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	report, err := h.invoiceService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
