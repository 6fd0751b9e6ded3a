package document

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-invoice-maker/internal/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	marginMM  = 12.0
	lineMM    = 5.0
	contentMM = 210 - 2*marginMM
)

// column widths in mm, in table column order; they add up to contentMM
var pdfColumnWidths = []float64{12, 68, 25, 20, 27, 34}

// WritePDF draws the page on A4 with the core PDF fonts. The document dates
// are pinned to the invoice date so identical input yields identical bytes.
func WritePDF(w io.Writer, p Page) error {
	pdf := gofpdf.New("P", "mm", PageSize, "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.SetCatalogSort(true)
	date := documentDate(p.Header.Date)
	pdf.SetCreationDate(date)
	pdf.SetModificationDate(date)
	pdf.SetTitle(p.Header.Title+" "+p.Header.InvoiceNumber, true)
	pdf.SetCreator(p.Header.CompanyName, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeader(pdf, tr, p.Header)
	drawBillTo(pdf, tr, p.BillTo)
	drawTable(pdf, tr, p.Table)
	drawFooter(pdf, tr, p)

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func documentDate(s string) time.Time {
	if t, err := models.ParseDate(s); err == nil {
		return t
	}
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, h Header) {
	top := pdf.GetY()

	// left: GSTIN and logo
	pdf.SetFont("Times", "", 10)
	pdf.SetXY(marginMM, top)
	pdf.CellFormat(50, lineMM, tr("GSTIN: "+h.GSTIN), "", 1, "L", false, 0, "")
	drawLogo(pdf, h.Logo, marginMM, top+lineMM+1, 28)

	// centre: title and company
	pdf.SetXY(marginMM+50, top)
	pdf.SetFont("Times", "BU", 14)
	pdf.CellFormat(86, 7, tr(h.Title), "", 2, "C", false, 0, "")
	pdf.SetFont("Times", "B", 16)
	pdf.CellFormat(86, 8, tr(h.CompanyName), "", 2, "C", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.SetTextColor(90, 90, 90)
	for _, line := range h.AddressLines {
		pdf.CellFormat(86, lineMM, tr(line), "", 2, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	// right: invoice identity
	pdf.SetXY(marginMM+136, top+2)
	pdf.SetFont("Times", "", 10)
	right := []string{"Invoice #: " + h.InvoiceNumber, "Date: " + h.Date}
	if h.Phone != "" {
		right = append(right, "Phone: "+h.Phone)
	}
	if h.DispatchRef != "" {
		right = append(right, "Desp: "+h.DispatchRef)
	}
	for _, line := range right {
		pdf.CellFormat(50, lineMM+1, tr(line), "", 2, "L", false, 0, "")
	}

	bottom := top + 40
	pdf.Line(marginMM, bottom, marginMM+contentMM, bottom)
	pdf.SetXY(marginMM, bottom+3)
}

// drawLogo places a local PNG/JPEG logo, or an outlined placeholder box.
func drawLogo(pdf *gofpdf.Fpdf, logo string, x, y, size float64) {
	ext := strings.ToLower(filepath.Ext(logo))
	if logo != "" && (ext == ".png" || ext == ".jpg" || ext == ".jpeg") {
		if _, err := os.Stat(logo); err == nil {
			pdf.ImageOptions(logo, x, y, size, size, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			return
		}
	}
	pdf.SetDrawColor(160, 160, 160)
	pdf.Rect(x, y, size, size, "D")
	pdf.SetXY(x, y+size/2-lineMM/2)
	pdf.SetFont("Times", "I", 8)
	pdf.CellFormat(size, lineMM, "LOGO", "", 0, "C", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
}

func drawBillTo(pdf *gofpdf.Fpdf, tr func(string) string, b BillTo) {
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(contentMM, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(contentMM, lineMM+1, tr("NAME: "+b.Name), "", 1, "L", false, 0, "")
	pdf.MultiCell(95, lineMM+1, tr("ADDRESS: "+strings.Join(b.AddressLines, ", ")), "", "L", false)
	pdf.CellFormat(contentMM, lineMM+1, tr("GSTIN: "+b.GSTIN), "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func drawTable(pdf *gofpdf.Fpdf, tr func(string) string, t ItemTable) {
	aligns := []string{"C", "L", "C", "R", "R", "R"}

	pdf.SetFont("Times", "B", 10)
	pdf.SetFillColor(243, 244, 246)
	for i, col := range t.Columns {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		for i, cell := range row {
			pdf.CellFormat(pdfColumnWidths[i], 6, fit(pdf, tr(cell), pdfColumnWidths[i]-2), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// fit shortens s until it fits in width mm.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, p Page) {
	top := pdf.GetY()

	// left: amount in words and bank details
	pdf.SetFont("Times", "B", 10)
	pdf.SetXY(marginMM, top)
	pdf.CellFormat(110, lineMM, "Amount In Words:", "", 2, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(110, lineMM, tr(p.AmountInWords), "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(110, lineMM, "ACCOUNT DETAILS:", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
	for _, line := range []string{
		"Bank: " + p.Account.BankName,
		"A/C No: " + p.Account.AccountNumber,
		"IFSC Code: " + p.Account.IFSC,
		"Branch: " + p.Account.Branch,
	} {
		pdf.CellFormat(110, lineMM, tr(line), "", 1, "L", false, 0, "")
	}
	leftBottom := pdf.GetY()

	// right: tax summary
	x := marginMM + contentMM - 70
	pdf.SetXY(x, top)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range p.Summary {
		border := ""
		if row.Total {
			border = "T"
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.SetX(x)
		pdf.CellFormat(35, 6, tr(row.Label+":"), border, 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, tr(row.Value), border, 1, "R", false, 0, "")
	}

	if y := pdf.GetY(); y < leftBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(4)
	pdf.Line(marginMM, pdf.GetY(), marginMM+contentMM, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(contentMM, lineMM, "Terms & Conditions:", "", 1, "L", false, 0, "")
	pdf.SetFont("Times", "", 9)
	for _, term := range p.Terms {
		pdf.MultiCell(120, 4.5, tr(term), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Times", "", 11)
	pdf.CellFormat(contentMM, 6, tr(p.Signatures.ForCompany), "", 1, "R", false, 0, "")
	pdf.Ln(16)
	pdf.SetFont("Times", "", 10)
	pdf.CellFormat(contentMM/2, 6, tr(p.Signatures.Receiver), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentMM/2, 6, tr(p.Signatures.Authorized), "", 1, "R", false, 0, "")
}
