package invoice

import "go-invoice-maker/internal/models"

// ComputeTotals sums item amounts in order and applies the document-level
// CGST and SGST percentages to the subtotal. Nothing is rounded here.
//
// Per-item CGST/SGST values are not applied; tax is applied once, at document level.
func ComputeTotals(items []models.LineItem, cgstPct, sgstPct float64) models.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	return totalsFromSubtotal(subtotal, cgstPct, sgstPct)
}

// InvoiceTotals recomputes the totals of a stored invoice.
func InvoiceTotals(inv models.Invoice) models.Totals {
	return ComputeTotals(inv.Items, inv.CGST, inv.SGST)
}

// View pairs an invoice with its totals.
func View(inv models.Invoice) models.InvoiceView {
	return models.InvoiceView{Invoice: inv, Totals: InvoiceTotals(inv)}
}

func totalsFromSubtotal(subtotal, cgstPct, sgstPct float64) models.Totals {
	cgst := subtotal * cgstPct / 100
	sgst := subtotal * sgstPct / 100
	return models.Totals{
		Subtotal:   subtotal,
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		GrandTotal: subtotal + cgst + sgst,
	}
}
