package handlers

import (
	"errors"
	"net/http"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/services"

	"github.com/gin-gonic/gin"
)

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// respondError maps domain errors to a status code and a {"error": ...} body.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var many invoice.ValidationErrors
	var one *invoice.ValidationError
	switch {
	case errors.As(err, &many) && len(many) > 0:
		fields := make([]fieldError, len(many))
		for i, e := range many {
			fields[i] = fieldError{Field: e.Field, Reason: e.Reason}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": many[0].Field, "fields": fields})
	case errors.As(err, &one):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": one.Field})
	case errors.Is(err, invoice.ErrItemIndex), errors.Is(err, invoice.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, invoice.ErrDuplicateIdentifier):
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice number already exists"})
	case errors.Is(err, invoice.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	case errors.Is(err, services.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
	case errors.Is(err, invoice.ErrStoreTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Invoice store did not respond in time"})
	case errors.Is(err, invoice.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Invoice store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
