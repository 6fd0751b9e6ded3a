package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-invoice-maker/internal/models"
)

func TestFilter(t *testing.T) {
	all := []models.Invoice{
		{Number: "INV-100", Customer: models.Customer{Name: "Ravi Hardware"}},
		{Number: "INV-101", Customer: models.Customer{Name: "Lakshmi Stores"}},
		{Number: "B-7", Customer: models.Customer{Name: "inv Partners"}},
	}

	numbers := func(invs []models.Invoice) []string {
		out := []string{}
		for _, inv := range invs {
			out = append(out, inv.Number)
		}
		return out
	}

	assert.Equal(t, []string{"INV-100", "INV-101", "B-7"}, numbers(Filter(all, "")))
	assert.Equal(t, []string{"INV-100", "INV-101", "B-7"}, numbers(Filter(all, "inv")))
	assert.Equal(t, []string{"INV-101"}, numbers(Filter(all, "LAKSHMI")))
	assert.Equal(t, []string{"INV-100"}, numbers(Filter(all, " 100 ")))
	assert.Equal(t, []string{}, numbers(Filter(all, "zzz")))
}
