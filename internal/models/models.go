package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is how invoice dates are stored and printed, e.g. "17-Oct-2026".
const DateLayout = "02-Jan-2006"

// Customer - who the invoice is billed to
type Customer struct {
	Name    string `gorm:"size:200" json:"name" firestore:"name"`
	Address string `gorm:"type:text" json:"address" firestore:"address"` // may hold line breaks
	GSTIN   string `gorm:"size:32" json:"gstin" firestore:"gstin"`      // not validated
}

// LineItem - one row of the itemized table
type LineItem struct {
	ID            uint    `gorm:"primaryKey" json:"-" firestore:"-"`
	InvoiceNumber string  `gorm:"size:64;index" json:"-" firestore:"-"`
	Position      int     `json:"-" firestore:"-"` // keeps the table order stable
	Description   string  `json:"description" firestore:"description"`
	HSNCode       string  `gorm:"size:32" json:"hsn_code" firestore:"hsnCode"`
	Quantity      float64 `json:"quantity" firestore:"quantity"`
	Rate          float64 `json:"rate" firestore:"rate"`
	Amount        float64 `json:"amount" firestore:"amount"` // always Quantity * Rate
	CGST          float64 `json:"cgst" firestore:"cgst"`     // recorded only, see invoice.ComputeTotals
	SGST          float64 `json:"sgst" firestore:"sgst"`
}

// Invoice - a submitted tax invoice, keyed by its number
type Invoice struct {
	Number      string     `gorm:"primaryKey;size:64" json:"invoice_number" firestore:"invoiceNumber"`
	Date        string     `gorm:"size:16" json:"date" firestore:"date"` // DateLayout
	DispatchRef string     `json:"desp" firestore:"desp"`
	Phone       string     `gorm:"size:32" json:"phone" firestore:"phone"`
	Customer    Customer   `gorm:"embedded;embeddedPrefix:customer_" json:"customer" firestore:"customer"`
	Items       []LineItem `gorm:"foreignKey:InvoiceNumber;references:Number" json:"items" firestore:"items"`
	CGST        float64    `json:"cgst" firestore:"cgst"` // percent
	SGST        float64    `json:"sgst" firestore:"sgst"` // percent
	Logo        string     `json:"logo,omitempty" firestore:"logo,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
}

// Totals are derived from items and rates on every read. They are never stored.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTAmount float64 `json:"sgst_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// InvoiceView is an invoice together with its recomputed totals, as returned by the API.
type InvoiceView struct {
	Invoice
	Totals Totals `json:"totals"`
}

// FormatDate renders a calendar date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate accepts DateLayout or the ISO form a date input sends ("2006-01-02").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
