package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-invoice-maker/internal/models"
)

func TestSummarize_Empty(t *testing.T) {
	report := Summarize(nil)
	assert.Equal(t, 0, report.TotalInvoices)
	assert.Zero(t, report.GrandTotal)
	assert.NotNil(t, report.TopCustomers)
	assert.NotNil(t, report.RecentInvoices)
}

func TestSummarize_RecomputesTotals(t *testing.T) {
	now := time.Now()
	a := sampleInvoice("A", "Ravi", now) // subtotal 250 at 9% + 9%
	b := sampleInvoice("B", "Asha", now)
	b.Items = b.Items[1:] // subtotal 50
	c := sampleInvoice("C", "Ravi", now)

	report := Summarize([]models.Invoice{*a, *b, *c})

	assert.Equal(t, 3, report.TotalInvoices)
	assert.InDelta(t, 550, report.Subtotal, 1e-9)
	assert.InDelta(t, 49.5, report.CGSTAmount, 1e-9)
	assert.InDelta(t, 49.5, report.SGSTAmount, 1e-9)
	assert.InDelta(t, 649, report.GrandTotal, 1e-9)

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "Ravi", report.TopCustomers[0].CustomerName)
	assert.Equal(t, 2, report.TopCustomers[0].Invoices)
	assert.InDelta(t, 590, report.TopCustomers[0].Revenue, 1e-9)

	require.Len(t, report.RecentInvoices, 3)
	assert.Equal(t, "C", report.RecentInvoices[0].Number)
	assert.Equal(t, "A", report.RecentInvoices[2].Number)
}

func TestSummarize_Limits(t *testing.T) {
	var invoices []models.Invoice
	for i := 0; i < 12; i++ {
		invoices = append(invoices, *sampleInvoice(fmt.Sprintf("N%02d", i), fmt.Sprintf("cust %d", i), time.Now()))
	}
	report := Summarize(invoices)
	assert.Len(t, report.TopCustomers, 5)
	assert.Len(t, report.RecentInvoices, 10)
	assert.Equal(t, "N11", report.RecentInvoices[0].Number)
}
