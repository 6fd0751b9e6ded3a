package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const textWidth = 96

var textColumnWidths = []int{5, 34, 10, 10, 16, 17}

// WriteText prints the page as fixed-width plain text.
func WriteText(w io.Writer, p Page) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...any) {
		fmt.Fprintf(bw, format+"\n", args...)
	}
	rule := func(ch string) {
		line("%s", strings.Repeat(ch, textWidth))
	}

	h := p.Header
	line("%s", center(h.Title, textWidth))
	line("%s", center(h.CompanyName, textWidth))
	for _, a := range h.AddressLines {
		line("%s", center(a, textWidth))
	}
	line("GSTIN: %s", h.GSTIN)
	if h.Logo != "" {
		line("Logo: %s", h.Logo)
	}
	line("Invoice #: %s", h.InvoiceNumber)
	line("Date: %s", h.Date)
	if h.Phone != "" {
		line("Phone: %s", h.Phone)
	}
	if h.DispatchRef != "" {
		line("Desp through: %s", h.DispatchRef)
	}
	rule("=")

	line("Bill To:")
	line("NAME: %s", p.BillTo.Name)
	line("ADDRESS: %s", strings.Join(p.BillTo.AddressLines, ", "))
	line("GSTIN: %s", p.BillTo.GSTIN)
	rule("-")

	line("%s", tableRow(p.Table.Columns))
	rule("-")
	for _, row := range p.Table.Rows {
		line("%s", tableRow(row))
	}
	rule("-")

	line("Amount In Words: %s", p.AmountInWords)
	line("")
	line("ACCOUNT DETAILS:")
	line("Bank: %s", p.Account.BankName)
	line("A/C No: %s", p.Account.AccountNumber)
	line("IFSC Code: %s", p.Account.IFSC)
	line("Branch: %s", p.Account.Branch)
	line("")

	for _, row := range p.Summary {
		if row.Total {
			line("%s", strings.Repeat(" ", textWidth-40)+strings.Repeat("-", 40))
		}
		line("%s%-20s%20s", strings.Repeat(" ", textWidth-40), row.Label+":", row.Value)
	}
	rule("=")

	line("Terms & Conditions:")
	for _, term := range p.Terms {
		line("%s", term)
	}
	line("")
	line("%-48s%48s", "", p.Signatures.ForCompany)
	line("")
	line("%-48s%48s", p.Signatures.Receiver, p.Signatures.Authorized)

	return bw.Flush()
}

func tableRow(cells []string) string {
	var b strings.Builder
	for i, width := range textColumnWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncate(cell, width-1)
		if i >= 3 {
			b.WriteString(strings.Repeat(" ", width-1-utf8.RuneCountInString(cell)) + cell + " ")
		} else {
			b.WriteString(cell + strings.Repeat(" ", width-utf8.RuneCountInString(cell)))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "~"
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
