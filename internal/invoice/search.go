package invoice

import (
	"strings"

	"go-invoice-maker/internal/models"
)

// Filter keeps the invoices whose number or customer name contains query,
// ignoring case. Order is preserved; an empty query keeps everything.
func Filter(invoices []models.Invoice, query string) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if q == "" ||
			strings.Contains(strings.ToLower(inv.Number), q) ||
			strings.Contains(strings.ToLower(inv.Customer.Name), q) {
			out = append(out, inv)
		}
	}
	return out
}
