package database

import (
	"sort"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"
)

// CustomerTotal is one row of the top customers table.
type CustomerTotal struct {
	CustomerName string  `json:"customer_name"`
	Invoices     int     `json:"invoices"`
	Revenue      float64 `json:"revenue"`
}

// RecentInvoice is a short line for the recent invoices list.
type RecentInvoice struct {
	Number       string  `json:"invoice_number"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	GrandTotal   float64 `json:"grand_total"`
}

// SummaryReport holds the figures for the reports screen. Every amount is
// recomputed from stored items and rates.
type SummaryReport struct {
	TotalInvoices  int             `json:"total_invoices"`
	Subtotal       float64         `json:"subtotal"`
	CGSTAmount     float64         `json:"cgst_amount"`
	SGSTAmount     float64         `json:"sgst_amount"`
	GrandTotal     float64         `json:"grand_total"`
	TopCustomers   []CustomerTotal `json:"top_customers"`
	RecentInvoices []RecentInvoice `json:"recent_invoices"`
}

const (
	topCustomersLimit   = 5
	recentInvoicesLimit = 10
)

// Summarize builds the report from invoices listed oldest first.
func Summarize(invoices []models.Invoice) *SummaryReport {
	report := &SummaryReport{
		TotalInvoices:  len(invoices),
		TopCustomers:   []CustomerTotal{},
		RecentInvoices: []RecentInvoice{},
	}

	// 1. Add up the recomputed totals and group revenue by customer
	byCustomer := make(map[string]*CustomerTotal)
	for _, inv := range invoices {
		t := invoice.InvoiceTotals(inv)
		report.Subtotal += t.Subtotal
		report.CGSTAmount += t.CGSTAmount
		report.SGSTAmount += t.SGSTAmount
		report.GrandTotal += t.GrandTotal

		name := inv.Customer.Name
		if name == "" {
			name = "Unknown Customer"
		}
		if _, exists := byCustomer[name]; !exists {
			byCustomer[name] = &CustomerTotal{CustomerName: name}
		}
		byCustomer[name].Invoices++
		byCustomer[name].Revenue += t.GrandTotal
	}

	// 2. Top customers by revenue, ties broken by name
	for _, ct := range byCustomer {
		report.TopCustomers = append(report.TopCustomers, *ct)
	}
	sort.Slice(report.TopCustomers, func(i, j int) bool {
		a, b := report.TopCustomers[i], report.TopCustomers[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.CustomerName < b.CustomerName
	})
	if len(report.TopCustomers) > topCustomersLimit {
		report.TopCustomers = report.TopCustomers[:topCustomersLimit]
	}

	// 3. Newest invoices first
	for i := len(invoices) - 1; i >= 0 && len(report.RecentInvoices) < recentInvoicesLimit; i-- {
		inv := invoices[i]
		report.RecentInvoices = append(report.RecentInvoices, RecentInvoice{
			Number:       inv.Number,
			Date:         inv.Date,
			CustomerName: inv.Customer.Name,
			GrandTotal:   invoice.InvoiceTotals(inv).GrandTotal,
		})
	}

	return report
}
