package ledger

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Category is a transaction category code.
type Category string

// Category codes accepted by the transaction form.
const (
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategoryHousing     Category = "housing"
	CategoryLeisure     Category = "leisure"
	CategoryHealth      Category = "health"
	CategoryOther       Category = "other"
	CategoryEducation   Category = "education"
	CategoryClothing    Category = "clothing"
	CategoryTravel      Category = "travel"
	CategoryInvestments Category = "investments"
	CategoryDonations   Category = "donations"
)

// FixedIncomeSource is the breakdown key under which fixed income is reported.
const FixedIncomeSource Category = "fixed income"

// Categories returns the known category codes in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryLeisure,
		CategoryHealth,
		CategoryEducation,
		CategoryClothing,
		CategoryTravel,
		CategoryInvestments,
		CategoryDonations,
		CategoryOther,
	}
}

// Known reports whether c is one of the codes returned by Categories.
func (c Category) Known() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Label returns a human readable name for the category.
func (c Category) Label() string {
	if c == "" {
		return "Uncategorized"
	}
	return titleCaser.String(string(c))
}

// Type says which aggregate bucket a transaction contributes to.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Valid reports whether t is income or expense.
func (t Type) Valid() bool {
	return t == Income || t == Expense
}

// Label returns a human readable name for the type.
func (t Type) Label() string {
	switch t {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	}
	return "Unknown"
}
