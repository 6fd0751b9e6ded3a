package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-invoice-maker/internal/models"
)

func items(amounts ...float64) []models.LineItem {
	out := make([]models.LineItem, len(amounts))
	for i, a := range amounts {
		out[i] = models.LineItem{Position: i, Amount: a}
	}
	return out
}

func TestComputeTotals_EndToEnd(t *testing.T) {
	got := ComputeTotals([]models.LineItem{{Quantity: 2, Rate: 100, Amount: LineAmount(2, 100)}}, 9, 9)
	assert.InDelta(t, 200.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 18.0, got.CGSTAmount, 1e-9)
	assert.InDelta(t, 18.0, got.SGSTAmount, 1e-9)
	assert.InDelta(t, 236.0, got.GrandTotal, 1e-9)
}

func TestComputeTotals_Empty(t *testing.T) {
	assert.Equal(t, models.Totals{}, ComputeTotals(nil, 9, 9))
}

func TestComputeTotals_NoRounding(t *testing.T) {
	got := ComputeTotals(items(0.1, 0.2), 2.5, 0)
	assert.InDelta(t, 0.3, got.Subtotal, 1e-12)
	assert.InDelta(t, 0.0075, got.CGSTAmount, 1e-12)
	assert.Equal(t, 0.0, got.SGSTAmount)
}

func TestComputeTotals_Linear(t *testing.T) {
	base := []float64{12.5, 99.99, 0, 1000, 3.333}
	for _, k := range []float64{0, 0.5, 2, 7, 1000} {
		scaled := make([]float64, len(base))
		for i, a := range base {
			scaled[i] = a * k
		}
		want := ComputeTotals(items(base...), 6, 14)
		got := ComputeTotals(items(scaled...), 6, 14)

		assert.InDelta(t, want.Subtotal*k, got.Subtotal, 1e-6)
		assert.InDelta(t, want.CGSTAmount*k, got.CGSTAmount, 1e-6)
		assert.InDelta(t, want.SGSTAmount*k, got.SGSTAmount, 1e-6)
		assert.InDelta(t, want.GrandTotal*k, got.GrandTotal, 1e-6)
	}
}

func TestComputeTotals_IgnoresItemTaxFields(t *testing.T) {
	withTax := []models.LineItem{{Amount: 100, CGST: 9, SGST: 9}}
	assert.Equal(t, ComputeTotals(items(100), 5, 5), ComputeTotals(withTax, 5, 5))
}

func TestView(t *testing.T) {
	inv := models.Invoice{Number: "A1", Items: items(50, 50), CGST: 10}
	v := View(inv)
	assert.Equal(t, "A1", v.Number)
	assert.InDelta(t, 110.0, v.Totals.GrandTotal, 1e-9)
}

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 0.0, LineAmount(0, 50))
	assert.Equal(t, 7.5, LineAmount(3, 2.5))
}

func TestNumberText(t *testing.T) {
	tests := []struct {
		in    NumberText
		value float64
		valid bool
	}{
		{"", 0, true},
		{"  ", 0, true},
		{"0012", 12, true},
		{"1.50", 1.5, true},
		{"-4", -4, true},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.value, tt.in.Value(), "value of %q", tt.in)
		assert.Equal(t, tt.valid, tt.in.Valid(), "valid %q", tt.in)
	}
}
