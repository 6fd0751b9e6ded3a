package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"go-invoice-maker/internal/document"
	"go-invoice-maker/internal/services"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the printable page of a stored invoice.
type DocumentHandler struct {
	invoiceService services.IInvoiceService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(invoiceService services.IInvoiceService) *DocumentHandler {
	return &DocumentHandler{invoiceService: invoiceService}
}

// --- GET: /api/invoices/:id/document?format=pdf|json|text ---
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "json" && format != "text" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be pdf, json or text"})
		return
	}

	number := c.Param("id")
	page, err := h.invoiceService.Document(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case "json":
		c.JSON(http.StatusOK, page)
		return
	case "text":
		if err := document.WriteText(&buf, page); err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	default:
		if err := document.WritePDF(&buf, page); err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "invoice-"+number+".pdf"))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
