package ledger

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value. The zero value is 0.
type Amount struct {
	decimal.Decimal
}

// MaxAmount is the largest single value accepted; anything above it is
// treated like malformed input.
var MaxAmount = decimal.New(1, 12)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// NewAmount returns d as an Amount. Negative values and values above
// MaxAmount become 0.
func NewAmount(d decimal.Decimal) Amount {
	if d.IsNegative() || d.GreaterThan(MaxAmount) {
		return Amount{}
	}
	return Amount{Decimal: d}
}

// ParseAmount parses free-text user input. It never fails: empty, unparsable,
// negative or oversized input yields 0. A decimal comma is accepted.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return Amount{}
	}

	return NewAmount(d)
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

// UnmarshalJSON accepts a JSON string or number. Malformed values decode to 0
// instead of failing the enclosing document.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		*a = Amount{}
		return nil
	}

	*a = NewAmount(d)
	return nil
}

// MarshalYAML renders the amount as a plain decimal string.
func (a Amount) MarshalYAML() (any, error) {
	return a.StringFixed(2), nil
}

// MarshalCSV renders the amount for CSV output.
func (a Amount) MarshalCSV() (string, error) {
	return a.StringFixed(2), nil
}

// Display formats the amount in the given ISO currency, e.g. "R$1.500,00".
func (a Amount) Display(currency string) string {
	fraction := 2
	if c := money.GetCurrency(currency); c != nil {
		fraction = c.Fraction
	}

	shifted := a.Shift(int32(fraction)).Round(0)
	if shifted.GreaterThan(maxMinorUnits) {
		return a.StringFixed(int32(fraction)) + " " + currency
	}

	return money.New(shifted.IntPart(), currency).Display()
}
