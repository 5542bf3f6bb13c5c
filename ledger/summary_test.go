package ledger

import (
	"math"
	"testing"

	"github.com/carlmjohnson/be"
)

func tx(id, date string, typ Type, category Category, value string) Transaction {
	return Transaction{
		ID:          id,
		Date:        date,
		Description: id,
		Category:    category,
		Type:        typ,
		Value:       ParseAmount(value),
	}
}

func TestFilterByMonth(t *testing.T) {
	ts := []Transaction{
		tx("c", "2025-03-20", Expense, CategoryFood, "1"),
		tx("a", "2025-02-28", Expense, CategoryFood, "1"),
		tx("b", "2025-03-01", Income, CategoryOther, "1"),
		tx("d", "2024-03-15", Expense, CategoryTravel, "1"),
		tx("e", "not-a-date", Expense, CategoryTravel, "1"),
	}

	got := FilterByMonth(ts, 3)

	ids := make([]string, len(got))
	for i, tr := range got {
		ids[i] = tr.ID
	}
	be.AllEqual(t, []string{"d", "b", "c"}, ids)

	// input order untouched
	be.Equal(t, "c", ts[0].ID)

	be.Equal(t, 0, len(FilterByMonth(ts, 7)))
}

func TestFilterByMonthKeepsEqualDatesInInsertionOrder(t *testing.T) {
	ts := []Transaction{
		tx("first", "2025-03-10", Expense, CategoryFood, "1"),
		tx("second", "2025-03-10", Expense, CategoryFood, "1"),
	}

	got := FilterByMonth(ts, 3)
	be.Equal(t, "first", got[0].ID)
	be.Equal(t, "second", got[1].ID)
}

func TestSummarize(t *testing.T) {
	ts := []Transaction{
		tx("inc", "2025-03-10", Income, CategoryOther, "500"),
		tx("exp", "2025-03-12", Expense, CategoryFood, "120"),
		tx("april", "2025-04-01", Expense, CategoryFood, "999"),
	}

	s := Summarize(ts, 3, ParseAmount("1000"))

	be.Equal(t, "1500", s.TotalIncome.String())
	be.Equal(t, "120", s.TotalExpenses.String())
	be.Equal(t, "1380", s.Balance.String())
	be.True(t, math.Abs(s.ExpensePercentage-8.0) < 1e-9)
	be.Equal(t, 1, len(s.ExpensesByCategory))
	be.Equal(t, "120", s.ExpensesByCategory[CategoryFood].String())
	be.Equal(t, "1000", s.IncomeBySource[FixedIncomeSource].String())
	be.Equal(t, "500", s.IncomeBySource[CategoryOther].String())
	be.Equal(t, 2, len(s.Transactions))
}

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize(nil, 3, Amount{})

	be.True(t, s.TotalIncome.IsZero())
	be.True(t, s.TotalExpenses.IsZero())
	be.True(t, s.Balance.IsZero())
	be.Equal(t, 0.0, s.ExpensePercentage)
	be.Equal(t, 0, len(s.ExpensesByCategory))
	be.Equal(t, 0, len(s.IncomeBySource))
}

func TestSummarizeNoIncomeMeansZeroPercentage(t *testing.T) {
	ts := []Transaction{
		tx("exp", "2025-05-02", Expense, CategoryHousing, "800"),
	}

	s := Summarize(ts, 5, Amount{})

	be.Equal(t, 0.0, s.ExpensePercentage)
	be.Equal(t, "-800", s.Balance.String())
}

func TestSummarizeTreatsBadValuesAsZero(t *testing.T) {
	ts := []Transaction{
		tx("bad", "2025-05-02", Expense, CategoryHousing, "oops"),
		tx("neg", "2025-05-03", Expense, CategoryFood, "-10"),
		tx("ok", "2025-05-04", Expense, CategoryFood, "10"),
	}

	s := Summarize(ts, 5, ParseAmount("100"))

	be.Equal(t, "10", s.TotalExpenses.String())
	_, hasHousing := s.ExpensesByCategory[CategoryHousing]
	be.False(t, hasHousing)
	be.Equal(t, "10", s.ExpensesByCategory[CategoryFood].String())
}

func TestSummarizeUnknownCategory(t *testing.T) {
	ts := []Transaction{
		tx("legacy", "2025-05-02", Expense, Category("alimentacao"), "30"),
	}

	s := Summarize(ts, 5, Amount{})
	be.Equal(t, "30", s.ExpensesByCategory[Category("alimentacao")].String())
}

func TestSummaryCategories(t *testing.T) {
	ts := []Transaction{
		tx("1", "2025-06-01", Expense, CategoryFood, "25"),
		tx("2", "2025-06-02", Expense, CategoryTravel, "75"),
		tx("3", "2025-06-03", Expense, CategoryClothing, "25"),
	}

	rows := Summarize(ts, 6, Amount{}).Categories()

	be.Equal(t, 3, len(rows))
	be.Equal(t, CategoryTravel, rows[0].Category)
	be.Equal(t, 60.0, rows[0].Percent)
	// ties broken by code
	be.Equal(t, CategoryClothing, rows[1].Category)
	be.Equal(t, CategoryFood, rows[2].Category)
}

func TestYearTrend(t *testing.T) {
	ts := []Transaction{
		tx("1", "2025-01-05", Expense, CategoryFood, "10"),
		tx("2", "2025-12-05", Income, CategoryOther, "40"),
	}

	trend := YearTrend(ts, ParseAmount("100"))

	be.Equal(t, 1, trend[0].Month)
	be.Equal(t, "90", trend[0].Balance.String())
	be.Equal(t, "100", trend[5].Balance.String())
	be.Equal(t, "140", trend[11].TotalIncome.String())
}
