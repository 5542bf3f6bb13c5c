package ledger

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary is the derived state for one selected month.
type Summary struct {
	Month int
	// Transactions is the filtered set, ascending by date.
	Transactions  []Transaction
	FixedIncome   Amount
	TotalIncome   Amount
	TotalExpenses Amount
	// Balance is TotalIncome - TotalExpenses and may be negative.
	Balance decimal.Decimal
	// ExpensePercentage is TotalExpenses as a percentage of TotalIncome,
	// or 0 when there is no income.
	ExpensePercentage float64
	// ExpensesByCategory only holds categories with expenses in the month.
	ExpensesByCategory map[Category]Amount
	// IncomeBySource holds income categories of the month plus
	// FixedIncomeSource when fixed income is positive.
	IncomeBySource map[Category]Amount
}

// Share is one row of a breakdown.
type Share struct {
	Category Category
	Amount   Amount
	// Percent of the breakdown total.
	Percent float64
}

// FilterByMonth returns the transactions whose date falls in month,
// sorted ascending by date. ts is not modified.
func FilterByMonth(ts []Transaction, month int) []Transaction {
	filtered := make([]Transaction, 0, len(ts))
	for _, t := range ts {
		if MonthOf(t.Date) == month {
			filtered = append(filtered, t)
		}
	}

	slices.SortStableFunc(filtered, func(a, b Transaction) int {
		return strings.Compare(a.Date, b.Date)
	})

	return filtered
}

// Summarize computes totals and breakdowns for month.
func Summarize(ts []Transaction, month int, fixedIncome Amount) Summary {
	s := Summary{
		Month:              month,
		Transactions:       FilterByMonth(ts, month),
		FixedIncome:        fixedIncome,
		TotalIncome:        fixedIncome,
		ExpensesByCategory: make(map[Category]Amount),
		IncomeBySource:     make(map[Category]Amount),
	}

	if fixedIncome.IsPositive() {
		s.IncomeBySource[FixedIncomeSource] = fixedIncome
	}

	for _, t := range s.Transactions {
		// stored values are clamped on decode, clamp again for values built in memory
		v := NewAmount(t.Value.Decimal)

		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(v)
			if v.IsPositive() {
				s.IncomeBySource[t.Category] = s.IncomeBySource[t.Category].Add(v)
			}
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(v)
			if v.IsPositive() {
				s.ExpensesByCategory[t.Category] = s.ExpensesByCategory[t.Category].Add(v)
			}
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpenses.Decimal)

	if s.TotalIncome.IsPositive() {
		s.ExpensePercentage = s.TotalExpenses.Div(s.TotalIncome.Decimal).Mul(hundred).InexactFloat64()
	}

	return s
}

// Categories returns the expense breakdown, largest first.
func (s Summary) Categories() []Share {
	return shares(s.ExpensesByCategory)
}

// Sources returns the income breakdown, largest first.
func (s Summary) Sources() []Share {
	return shares(s.IncomeBySource)
}

func shares(m map[Category]Amount) []Share {
	total := Amount{}
	for _, a := range m {
		total = total.Add(a)
	}

	rows := make([]Share, 0, len(m))
	for c, a := range m {
		row := Share{Category: c, Amount: a}
		if total.IsPositive() {
			row.Percent = a.Div(total.Decimal).Mul(hundred).InexactFloat64()
		}
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b Share) int {
		if c := b.Amount.Cmp(a.Amount.Decimal); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return rows
}

// YearTrend summarizes every month, January first.
func YearTrend(ts []Transaction, fixedIncome Amount) [12]Summary {
	var trend [12]Summary
	for i := range trend {
		trend[i] = Summarize(ts, i+1, fixedIncome)
	}
	return trend
}
