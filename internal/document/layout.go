// Package document lays out a submitted invoice as a single printable tax
// invoice page and exports it as text or PDF.
package document

// Page is the complete, ordered description of one printed invoice.
type Page struct {
	Size          string         `json:"size"`
	Header        Header         `json:"header"`
	BillTo        BillTo         `json:"bill_to"`
	Table         ItemTable      `json:"table"`
	AmountInWords string         `json:"amount_in_words"`
	Account       AccountDetails `json:"account"`
	Summary       []SummaryRow   `json:"summary"`
	Terms         []string       `json:"terms"`
	Signatures    Signatures     `json:"signatures"`
}

// Header is the letterhead plus the invoice identity.
type Header struct {
	Title         string   `json:"title"`
	GSTIN         string   `json:"gstin"`
	Logo          string   `json:"logo,omitempty"`
	CompanyName   string   `json:"company_name"`
	AddressLines  []string `json:"address_lines"`
	InvoiceNumber string   `json:"invoice_number"`
	Date          string   `json:"date"`
	Phone         string   `json:"phone,omitempty"`
	DispatchRef   string   `json:"desp,omitempty"`
}

type BillTo struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines"`
	GSTIN        string   `json:"gstin"`
}

// ItemTable holds preformatted cells; every row has one cell per column.
type ItemTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type AccountDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch"`
}

type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Total bool   `json:"total,omitempty"`
}

type Signatures struct {
	Receiver   string `json:"receiver"`
	ForCompany string `json:"for_company"`
	Authorized string `json:"authorized"`
}
