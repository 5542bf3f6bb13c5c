package ledger

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestMonthOf(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{date: "2025-03-10", expected: 3},
		{date: "2025-12-31", expected: 12},
		{date: "2025-01-01", expected: 1},
		{date: "2025-13-01", expected: 0},
		{date: "2025-xx-01", expected: 0},
		{date: "", expected: 0},
		{date: "10/03/2025", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			be.Equal(t, tt.expected, MonthOf(tt.date))
		})
	}
}

func TestFormatDate(t *testing.T) {
	be.Equal(t, "23/05/2025", FormatDate("2025-05-23"))
	be.Equal(t, "garbage", FormatDate("garbage"))
}

func TestDraftValidate(t *testing.T) {
	valid := Draft{
		Date:        "2025-03-12",
		Description: "Groceries",
		Category:    "food",
		Type:        "expense",
		Value:       "120",
	}

	tests := []struct {
		name    string
		mutate  func(d *Draft)
		wantErr error
	}{
		{name: "valid", mutate: func(*Draft) {}},
		{name: "missing date", mutate: func(d *Draft) { d.Date = "" }, wantErr: ErrMissingField},
		{name: "missing description", mutate: func(d *Draft) { d.Description = "  " }, wantErr: ErrMissingField},
		{name: "missing category", mutate: func(d *Draft) { d.Category = "" }, wantErr: ErrMissingField},
		{name: "missing type", mutate: func(d *Draft) { d.Type = "" }, wantErr: ErrMissingField},
		{name: "missing value", mutate: func(d *Draft) { d.Value = "" }, wantErr: ErrMissingField},
		{name: "bad date", mutate: func(d *Draft) { d.Date = "2025-02-30" }, wantErr: ErrInvalidDate},
		{name: "bad type", mutate: func(d *Draft) { d.Type = "transfer" }, wantErr: ErrInvalidType},
		{name: "bad value", mutate: func(d *Draft) { d.Value = "12a" }, wantErr: ErrInvalidValue},
		{name: "negative value", mutate: func(d *Draft) { d.Value = "-1" }, wantErr: ErrInvalidValue},
		{name: "oversized value", mutate: func(d *Draft) { d.Value = "5000000000000" }, wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)

			r, err := d.Validate()
			if tt.wantErr != nil {
				be.True(t, errors.Is(err, tt.wantErr))
				return
			}

			be.NilErr(t, err)
			be.Equal(t, "2025-03-12", r.Date)
			be.Equal(t, CategoryFood, r.Category)
			be.Equal(t, Expense, r.Type)
			be.Equal(t, "120", r.Value.String())
		})
	}
}

func TestDraftValidateNormalizes(t *testing.T) {
	_, err := Draft{
		Date:        "2025-03-12",
		Description: "Salary",
		Category:    "investments",
		Type:        "income",
		Value:       "1.000,5",
	}.Validate()

	// thousands separators are not supported
	be.True(t, errors.Is(err, ErrInvalidValue))

	r, err := Draft{
		Date:        " 2025-03-12 ",
		Description: " Salary ",
		Category:    "Investments",
		Type:        "INCOME",
		Value:       "1000,5",
	}.Validate()
	be.NilErr(t, err)
	be.Equal(t, "Salary", r.Description)
	be.Equal(t, CategoryInvestments, r.Category)
	be.Equal(t, Income, r.Type)
	be.Equal(t, "1000.5", r.Value.String())
}

func TestDraftFrom(t *testing.T) {
	tr := Transaction{
		ID:          "id-1",
		Date:        "2025-03-10",
		Description: "Freelance",
		Category:    CategoryOther,
		Type:        Income,
		Value:       ParseAmount("500"),
	}

	d := DraftFrom(tr)
	be.Equal(t, Draft{
		Date:        "2025-03-10",
		Description: "Freelance",
		Category:    "other",
		Type:        "income",
		Value:       "500",
	}, d)

	r, err := d.Validate()
	be.NilErr(t, err)
	assertSameTransactions(t, []Transaction{tr}, []Transaction{r.withID("id-1")})
}

func TestCategory(t *testing.T) {
	be.True(t, CategoryFood.Known())
	be.False(t, Category("alimentacao").Known())
	be.Equal(t, "Investments", CategoryInvestments.Label())
	be.Equal(t, "Uncategorized", Category("").Label())
	be.Equal(t, 11, len(Categories()))
}

func assertSameTransactions(t *testing.T, want, got []Transaction) {
	t.Helper()

	be.Equal(t, len(want), len(got))
	for i := range want {
		be.Equal(t, want[i].ID, got[i].ID)
		be.Equal(t, want[i].Date, got[i].Date)
		be.Equal(t, want[i].Description, got[i].Description)
		be.Equal(t, want[i].Category, got[i].Category)
		be.Equal(t, want[i].Type, got[i].Type)
		be.True(t, want[i].Value.Equal(got[i].Value.Decimal))
	}
}
