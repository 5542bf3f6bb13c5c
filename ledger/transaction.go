package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of Transaction.Date.
const DateLayout = "2006-01-02"

// Transaction is one income or expense event.
type Transaction struct {
	ID          string   `json:"id" yaml:"id" csv:"id"`
	Date        string   `json:"date" yaml:"date" csv:"date"`
	Description string   `json:"description" yaml:"description" csv:"description"`
	Category    Category `json:"category" yaml:"category" csv:"category"`
	Type        Type     `json:"type" yaml:"type" csv:"type"`
	Value       Amount   `json:"value" yaml:"value" csv:"value"`
}

// Record is a validated transaction without identity.
type Record struct {
	Date        string
	Description string
	Category    Category
	Type        Type
	Value       Amount
}

func (r Record) withID(id string) Transaction {
	return Transaction{
		ID:          id,
		Date:        r.Date,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		Value:       r.Value,
	}
}

// MonthOf returns the month component (1-12) of a YYYY-MM-DD date,
// or 0 if it cannot be read.
func MonthOf(date string) int {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0
	}

	return m
}

// FormatDate renders a YYYY-MM-DD date as DD/MM/YYYY. Dates that are not
// in the expected layout are returned unchanged.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// Validation errors returned by Draft.Validate.
var (
	ErrMissingField = errors.New("field is required")
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidType  = errors.New("type must be income or expense")
	ErrInvalidValue = errors.New("value must be a non-negative number")
)

// Draft is raw form input, every field as typed by the user.
type Draft struct {
	Date        string
	Description string
	Category    string
	Type        string
	Value       string
}

// DraftFrom pre-fills a draft from an existing transaction.
func DraftFrom(t Transaction) Draft {
	return Draft{
		Date:        t.Date,
		Description: t.Description,
		Category:    string(t.Category),
		Type:        string(t.Type),
		Value:       t.Value.String(),
	}
}

// Validate normalizes the draft into a Record.
func (d Draft) Validate() (Record, error) {
	date := strings.TrimSpace(d.Date)
	description := strings.TrimSpace(d.Description)
	category := strings.ToLower(strings.TrimSpace(d.Category))
	typ := Type(strings.ToLower(strings.TrimSpace(d.Type)))
	value := strings.TrimSpace(d.Value)

	switch {
	case date == "":
		return Record{}, fmt.Errorf("date: %w", ErrMissingField)
	case description == "":
		return Record{}, fmt.Errorf("description: %w", ErrMissingField)
	case category == "":
		return Record{}, fmt.Errorf("category: %w", ErrMissingField)
	case typ == "":
		return Record{}, fmt.Errorf("type: %w", ErrMissingField)
	case value == "":
		return Record{}, fmt.Errorf("value: %w", ErrMissingField)
	}

	if err := ValidateDate(date); err != nil {
		return Record{}, err
	}

	if !typ.Valid() {
		return Record{}, fmt.Errorf("type %q: %w", typ, ErrInvalidType)
	}

	if err := ValidateValue(value); err != nil {
		return Record{}, err
	}

	return Record{
		Date:        date,
		Description: description,
		Category:    Category(category),
		Type:        typ,
		Value:       ParseAmount(value),
	}, nil
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("date %q: %w", s, ErrInvalidDate)
	}
	return nil
}

// ValidateValue checks that s is a non-negative number no larger than
// MaxAmount.
func ValidateValue(s string) error {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil || d.IsNegative() || d.GreaterThan(MaxAmount) {
		return fmt.Errorf("value %q: %w", s, ErrInvalidValue)
	}
	return nil
}
