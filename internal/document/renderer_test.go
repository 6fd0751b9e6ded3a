package document

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-invoice-maker/internal/config"
	"go-invoice-maker/internal/models"
)

func testLetterhead() config.Letterhead {
	lh := config.DefaultLetterhead()
	lh.CompanyName = "SRI SAI TRADERS"
	lh.AddressLines = []string{"12 Market Road", "Hyderabad"}
	lh.GSTIN = "36ABCDE1234F1Z5"
	lh.Phone = "9000000000"
	lh.Bank = config.BankAccount{BankName: "State Bank", AccountNumber: "123456789", IFSC: "SBIN0000001", Branch: "Koti"}
	return lh
}

func testInvoice() models.Invoice {
	return models.Invoice{
		Number:   "INV-7",
		Date:     "17-Oct-2026",
		Customer: models.Customer{Name: "Ravi Kumar", Address: "Flat 4\r\nMG Road\n\n", GSTIN: "36XYZ"},
		Items: []models.LineItem{
			{Description: "Cement", HSNCode: "2523", Quantity: 2, Rate: 100, Amount: 200},
		},
		CGST: 9,
		SGST: 9,
	}
}

func TestRender_EndToEnd(t *testing.T) {
	page := Render(testInvoice(), testLetterhead())

	assert.Equal(t, "A4", page.Size)
	assert.Equal(t, "TAX INVOICE", page.Header.Title)
	assert.Equal(t, "INV-7", page.Header.InvoiceNumber)
	assert.Equal(t, "9000000000", page.Header.Phone)
	assert.Equal(t, []string{"Flat 4", "MG Road"}, page.BillTo.AddressLines)

	require.Len(t, page.Table.Rows, 1)
	assert.Equal(t, []string{"1", "Cement", "2523", "2", "Rs.100.00", "Rs.200.00"}, page.Table.Rows[0])

	assert.Equal(t, []SummaryRow{
		{Label: "Subtotal", Value: "Rs.200.00"},
		{Label: "CGST (9%)", Value: "Rs.18.00"},
		{Label: "SGST (9%)", Value: "Rs.18.00"},
		{Label: "Total", Value: "Rs.236.00", Total: true},
	}, page.Summary)
	assert.Equal(t, "TWO HUNDRED AND THIRTY SIX ONLY", page.AmountInWords)
	assert.Equal(t, "For SRI SAI TRADERS", page.Signatures.ForCompany)
	assert.Equal(t, "1. "+testLetterhead().Terms[0], page.Terms[0])
}

func TestRender_Fallbacks(t *testing.T) {
	inv := testInvoice()
	inv.Phone = "8000000000"
	inv.Customer.Name = "  "
	inv.Items = nil

	page := Render(inv, testLetterhead())
	assert.Equal(t, "8000000000", page.Header.Phone)
	assert.Equal(t, "Unknown Customer", page.BillTo.Name)
	assert.Empty(t, page.Table.Rows)
	assert.Equal(t, "ZERO ONLY", page.AmountInWords)
	assert.Equal(t, "Rs.0.00", page.Summary[3].Value)
}

func TestRender_Deterministic(t *testing.T) {
	inv, lh := testInvoice(), testLetterhead()
	assert.Equal(t, Render(inv, lh), Render(inv, lh))

	var a, b bytes.Buffer
	require.NoError(t, WriteText(&a, Render(inv, lh)))
	require.NoError(t, WriteText(&b, Render(inv, lh)))
	assert.Equal(t, a.String(), b.String())
}

func TestMoneyAndNumber(t *testing.T) {
	assert.Equal(t, "Rs.0.10", Money("Rs.", 0.1))
	assert.Equal(t, "Rs.1234.50", Money("Rs.", 1234.5))
	assert.Equal(t, "2.5", Number(2.5))
	assert.Equal(t, "18", Number(18))
}

func TestTotalInWords_DropsPaise(t *testing.T) {
	assert.Equal(t, "ONE LAKH ONLY", TotalInWords(100000.75))
}

func TestTotalInWords_OutOfRange(t *testing.T) {
	assert.Equal(t, OutOfRangeWords, TotalInWords(1e19))
	assert.Equal(t, OutOfRangeWords, TotalInWords(math.Inf(1)))
	assert.Equal(t, OutOfRangeWords, TotalInWords(math.NaN()))
}

func TestRender_NonFiniteAmounts(t *testing.T) {
	inv := testInvoice()
	inv.Items[0].Quantity = 1e200
	inv.Items[0].Rate = 1e200
	inv.Items[0].Amount = math.Inf(1)

	var page Page
	require.NotPanics(t, func() { page = Render(inv, testLetterhead()) })
	assert.Equal(t, "Rs.-", page.Table.Rows[0][5])
	assert.Equal(t, OutOfRangeWords, page.AmountInWords)
	assert.Equal(t, "Rs.-", page.Summary[3].Value)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Render(testInvoice(), testLetterhead())))
	out := buf.String()

	for _, want := range []string{
		"TAX INVOICE",
		"SRI SAI TRADERS",
		"Invoice #: INV-7",
		"NAME: Ravi Kumar",
		"PARTICULARS",
		"Cement",
		"Rs.236.00",
		"Amount In Words: TWO HUNDRED AND THIRTY SIX ONLY",
		"IFSC Code: SBIN0000001",
		"Receiver's Signature",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTableRow_Truncates(t *testing.T) {
	row := tableRow([]string{"1", "A very long description that will not fit the column", "", "1", "Rs.1.00", "Rs.1.00"})
	assert.Contains(t, row, "~")
	assert.NotContains(t, row, "column")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Render(testInvoice(), testLetterhead())))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	var again bytes.Buffer
	require.NoError(t, WritePDF(&again, Render(testInvoice(), testLetterhead())))
	assert.Equal(t, buf.Bytes(), again.Bytes())
}

func TestWritePDF_ManyItemsSpansPages(t *testing.T) {
	inv := testInvoice()
	for i := 0; i < 80; i++ {
		inv.Items = append(inv.Items, models.LineItem{Description: "Bricks", Quantity: 1, Rate: 5, Amount: 5})
	}
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Render(inv, testLetterhead())))
	assert.NotContains(t, buf.String(), "/Count 1\n")
}
