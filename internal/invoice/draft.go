package invoice

import (
	"fmt"
	"strings"
	"time"

	"go-invoice-maker/internal/models"
	"go-invoice-maker/internal/words"
)

var amountLimitReason = fmt.Sprintf("must not exceed %.0f", words.MaxAmount)

// ItemField names an editable column of a draft line item.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldHSNCode     ItemField = "hsn_code"
	FieldQuantity    ItemField = "quantity"
	FieldRate        ItemField = "rate"
	FieldCGST        ItemField = "cgst"
	FieldSGST        ItemField = "sgst"
)

// DraftItem is a line item while it is being edited.
type DraftItem struct {
	Description string     `json:"description"`
	HSNCode     string     `json:"hsn_code"`
	Quantity    NumberText `json:"quantity"`
	Rate        NumberText `json:"rate"`
	CGST        NumberText `json:"cgst"`
	SGST        NumberText `json:"sgst"`
	Amount      float64    `json:"amount"`
}

// Draft is the invoice being edited. It has a single writer: the session that owns it.
type Draft struct {
	Number      string          `json:"invoice_number"`
	Date        string          `json:"date"`
	DispatchRef string          `json:"desp"`
	Phone       string          `json:"phone"`
	Customer    models.Customer `json:"customer"`
	Items       []DraftItem     `json:"items"`
	CGST        NumberText      `json:"cgst"`
	SGST        NumberText      `json:"sgst"`
	Logo        string          `json:"logo,omitempty"`
}

// NewDraft starts an empty draft dated today.
func NewDraft(today time.Time) *Draft {
	return &Draft{
		Date:  models.FormatDate(today),
		Items: []DraftItem{},
	}
}

// AddItem appends an empty line item.
func (d *Draft) AddItem() {
	d.Items = append(d.Items, DraftItem{})
}

// RemoveItem deletes the item at index; later items shift down by one.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("%w: %d (have %d)", ErrItemIndex, index, len(d.Items))
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// UpdateItem sets one field of the item at index. Quantity and rate edits
// recompute the amount immediately.
func (d *Draft) UpdateItem(index int, field ItemField, value string) error {
	if index < 0 || index >= len(d.Items) {
		return fmt.Errorf("%w: %d (have %d)", ErrItemIndex, index, len(d.Items))
	}
	item := &d.Items[index]

	switch field {
	case FieldDescription:
		item.Description = value
	case FieldHSNCode:
		item.HSNCode = value
	case FieldQuantity:
		item.Quantity = NumberText(value)
		RecomputeAmount(item)
	case FieldRate:
		item.Rate = NumberText(value)
		RecomputeAmount(item)
	case FieldCGST:
		item.CGST = NumberText(value)
	case FieldSGST:
		item.SGST = NumberText(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Recompute re-derives every item amount, e.g. after the draft was decoded
// from a request body whose amounts cannot be trusted.
func (d *Draft) Recompute() {
	if d.Items == nil {
		d.Items = []DraftItem{}
	}
	for i := range d.Items {
		RecomputeAmount(&d.Items[i])
	}
}

// Totals computes the current totals of the draft.
func (d *Draft) Totals() models.Totals {
	var subtotal float64
	for _, item := range d.Items {
		subtotal += item.Amount
	}
	return totalsFromSubtotal(subtotal, d.CGST.Value(), d.SGST.Value())
}

// Validate checks everything a submission needs and reports all problems at once.
func (d *Draft) Validate() error {
	var errs ValidationErrors

	number := strings.TrimSpace(d.Number)
	switch {
	case number == "":
		errs.add("invoice_number", "is required")
	case strings.Contains(number, "/"):
		errs.add("invoice_number", "must not contain '/'")
	case len(number) > 64:
		errs.add("invoice_number", "must be at most 64 characters")
	}

	if _, err := models.ParseDate(d.Date); err != nil {
		errs.add("date", "must look like 17-Oct-2026 or 2026-10-17")
	}

	if strings.TrimSpace(d.Customer.Name) == "" {
		errs.add("customer.name", "is required")
	}

	checkPercent(&errs, "cgst", d.CGST)
	checkPercent(&errs, "sgst", d.SGST)

	if len(d.Items) == 0 {
		errs.add("items", "at least one item is required")
	}
	for i, item := range d.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		checkNonNegative(&errs, prefix+"quantity", item.Quantity)
		checkNonNegative(&errs, prefix+"rate", item.Rate)
		checkNonNegative(&errs, prefix+"cgst", item.CGST)
		checkNonNegative(&errs, prefix+"sgst", item.SGST)
		if a := LineAmount(item.Quantity.Value(), item.Rate.Value()); a >= 0 && !words.InRange(a) {
			errs.add(prefix+"amount", amountLimitReason)
		}
	}

	if len(errs) == 0 {
		total := ComputeTotals(d.lineItems(), d.CGST.Value(), d.SGST.Value()).GrandTotal
		if !words.InRange(total) {
			errs.add("total", amountLimitReason)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkNonNegative(errs *ValidationErrors, field string, t NumberText) {
	if !t.Valid() {
		errs.add(field, "must be a number")
		return
	}
	if t.Value() < 0 {
		errs.add(field, "must not be negative")
	}
}

func checkPercent(errs *ValidationErrors, field string, t NumberText) {
	if !t.Valid() {
		errs.add(field, "must be a number")
		return
	}
	if v := t.Value(); v < 0 || v > 100 {
		errs.add(field, "must be between 0 and 100")
	}
}

// Freeze validates the draft and returns the invoice to persist. The draft itself is not changed.
func (d *Draft) Freeze() (models.Invoice, error) {
	if err := d.Validate(); err != nil {
		return models.Invoice{}, err
	}
	date, _ := models.ParseDate(d.Date)

	inv := models.Invoice{
		Number:      strings.TrimSpace(d.Number),
		Date:        models.FormatDate(date),
		DispatchRef: d.DispatchRef,
		Phone:       d.Phone,
		Customer:    d.Customer,
		Items:       d.lineItems(),
		CGST:        d.CGST.Value(),
		SGST:        d.SGST.Value(),
		Logo:        d.Logo,
	}
	return inv, nil
}

// lineItems converts the draft items into stored line items, in order.
func (d *Draft) lineItems() []models.LineItem {
	items := make([]models.LineItem, len(d.Items))
	for i, item := range d.Items {
		q, r := item.Quantity.Value(), item.Rate.Value()
		items[i] = models.LineItem{
			Position:    i,
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Quantity:    q,
			Rate:        r,
			Amount:      LineAmount(q, r),
			CGST:        item.CGST.Value(),
			SGST:        item.SGST.Value(),
		}
	}
	return items
}

// Reset empties the draft after a successful submission. The date is kept.
func (d *Draft) Reset() {
	*d = Draft{Date: d.Date, Items: []DraftItem{}}
}

// DraftFrom turns a stored invoice back into an editable draft.
func DraftFrom(inv models.Invoice) *Draft {
	d := &Draft{
		Number:      inv.Number,
		Date:        inv.Date,
		DispatchRef: inv.DispatchRef,
		Phone:       inv.Phone,
		Customer:    inv.Customer,
		Items:       make([]DraftItem, len(inv.Items)),
		CGST:        NumberTextOf(inv.CGST),
		SGST:        NumberTextOf(inv.SGST),
		Logo:        inv.Logo,
	}
	for i, item := range inv.Items {
		d.Items[i] = DraftItem{
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Quantity:    NumberTextOf(item.Quantity),
			Rate:        NumberTextOf(item.Rate),
			CGST:        NumberTextOf(item.CGST),
			SGST:        NumberTextOf(item.SGST),
		}
	}
	d.Recompute()
	return d
}
