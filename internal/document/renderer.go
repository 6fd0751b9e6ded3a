package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"
	"go-invoice-maker/internal/words"

	"github.com/shopspring/decimal"
)

const (
	PageSize = "A4"
	Title    = "TAX INVOICE"
)

var tableColumns = []string{"S.No", "PARTICULARS", "HSN Code", "Quantity", "Unit Rate", "Amount"}

// Render maps an invoice and the letterhead onto the fixed page layout.
// The same inputs always produce the same Page.
func Render(inv models.Invoice, lh config.Letterhead) Page {
	totals := invoice.InvoiceTotals(inv)
	sym := lh.CurrencySymbol

	phone := inv.Phone
	if phone == "" {
		phone = lh.Phone
	}
	logo := inv.Logo
	if logo == "" {
		logo = lh.LogoFile
	}
	name := strings.TrimSpace(inv.Customer.Name)
	if name == "" {
		name = "Unknown Customer"
	}

	page := Page{
		Size: PageSize,
		Header: Header{
			Title:         Title,
			GSTIN:         lh.GSTIN,
			Logo:          logo,
			CompanyName:   lh.CompanyName,
			AddressLines:  append([]string(nil), lh.AddressLines...),
			InvoiceNumber: inv.Number,
			Date:          inv.Date,
			Phone:         phone,
			DispatchRef:   inv.DispatchRef,
		},
		BillTo: BillTo{
			Name:         name,
			AddressLines: splitLines(inv.Customer.Address),
			GSTIN:        inv.Customer.GSTIN,
		},
		Table: ItemTable{
			Columns: append([]string(nil), tableColumns...),
			Rows:    make([][]string, 0, len(inv.Items)),
		},
		AmountInWords: TotalInWords(totals.GrandTotal),
		Account: AccountDetails{
			BankName:      lh.Bank.BankName,
			AccountNumber: lh.Bank.AccountNumber,
			IFSC:          lh.Bank.IFSC,
			Branch:        lh.Bank.Branch,
		},
		Summary: []SummaryRow{
			{Label: "Subtotal", Value: Money(sym, totals.Subtotal)},
			{Label: fmt.Sprintf("CGST (%s%%)", Number(inv.CGST)), Value: Money(sym, totals.CGSTAmount)},
			{Label: fmt.Sprintf("SGST (%s%%)", Number(inv.SGST)), Value: Money(sym, totals.SGSTAmount)},
			{Label: "Total", Value: Money(sym, totals.GrandTotal), Total: true},
		},
		Terms: make([]string, len(lh.Terms)),
		Signatures: Signatures{
			Receiver:   lh.ReceiverSignature,
			ForCompany: "For " + lh.CompanyName,
			Authorized: lh.AuthorizedSignature,
		},
	}

	for i, item := range inv.Items {
		page.Table.Rows = append(page.Table.Rows, []string{
			strconv.Itoa(i + 1),
			item.Description,
			item.HSNCode,
			Number(item.Quantity),
			Money(sym, item.Rate),
			Money(sym, item.Amount),
		})
	}
	for i, term := range lh.Terms {
		page.Terms[i] = fmt.Sprintf("%d. %s", i+1, term)
	}

	return page
}

// OutOfRangeWords replaces the words for a total that cannot be spelled out.
const OutOfRangeWords = "AMOUNT OUT OF RANGE"

// TotalInWords spells the whole-rupee part of a total in capitals.
func TotalInWords(total float64) string {
	if !words.InRange(total) {
		return OutOfRangeWords
	}
	rupees, _ := words.Split(total)
	return strings.ToUpper(words.AmountInWords(rupees, 0))
}

// Money formats an amount to two decimals behind the currency symbol.
// Non-finite values print as a dash.
func Money(symbol string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return symbol + "-"
	}
	return symbol + decimal.NewFromFloat(v).StringFixed(2)
}

// Number prints a quantity or percentage without trailing zeros.
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return decimal.NewFromFloat(v).String()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
