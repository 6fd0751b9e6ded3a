package invoice

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumberText is a numeric field as the user typed it. The literal text is kept
// while editing (leading zeros included); Value coerces it when a number is needed.
type NumberText string

// Value returns the parsed number, or 0 for empty or unparsable text.
func (t NumberText) Value() float64 {
	v, ok := t.parse()
	if !ok {
		return 0
	}
	return v
}

// Valid reports whether the text is empty or a finite number.
func (t NumberText) Valid() bool {
	if strings.TrimSpace(string(t)) == "" {
		return true
	}
	_, ok := t.parse()
	return ok
}

func (t NumberText) parse() (float64, bool) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON takes either a JSON string or a bare JSON number.
func (t *NumberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = NumberText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = NumberText(n.String())
	return nil
}

// NumberTextOf formats a stored number back into editable text.
func NumberTextOf(v float64) NumberText {
	return NumberText(strconv.FormatFloat(v, 'f', -1, 64))
}

// LineAmount is quantity times rate. No rounding happens here.
func LineAmount(quantity, rate float64) float64 {
	return quantity * rate
}

// RecomputeAmount refreshes the item amount from its quantity and rate text.
func RecomputeAmount(item *DraftItem) {
	item.Amount = LineAmount(item.Quantity.Value(), item.Rate.Value())
}
