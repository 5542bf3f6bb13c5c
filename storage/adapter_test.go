package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Rshep3087/zenwallet/ledger"
	"github.com/carlmjohnson/be"
)

func sampleTransactions() []ledger.Transaction {
	return []ledger.Transaction{
		{
			ID:          "b",
			Date:        "2025-03-12",
			Description: "Groceries",
			Category:    ledger.CategoryFood,
			Type:        ledger.Expense,
			Value:       ledger.ParseAmount("120.35"),
		},
		{
			ID:          "a",
			Date:        "2025-03-10",
			Description: "Freelance",
			Category:    ledger.CategoryOther,
			Type:        ledger.Income,
			Value:       ledger.ParseAmount("500"),
		},
	}
}

func assertRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	a := NewAdapter(store)

	want := sampleTransactions()
	be.NilErr(t, a.Save(ctx, want, ledger.ParseAmount("1000.5")))

	got, income := a.Load(ctx)
	be.Equal(t, "1000.5", income.String())
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

func TestAdapterRoundTrip(t *testing.T) {
	assertRoundTrip(t, NewMemoryStore())
}

func TestAdapterLoadEmpty(t *testing.T) {
	ts, income := NewAdapter(NewMemoryStore()).Load(context.Background())
	be.Equal(t, 0, len(ts))
	be.True(t, income.IsZero())
}

func TestAdapterLoadCorrupt(t *testing.T) {
	tests := []struct {
		name         string
		transactions string
		income       string
		wantCount    int
		wantIncome   string
	}{
		{name: "not json", transactions: "{oops", income: "abc", wantCount: 0, wantIncome: "0"},
		{name: "wrong shape", transactions: `{"id":"x"}`, income: "-4", wantCount: 0, wantIncome: "0"},
		{
			name:         "bad value inside a good record",
			transactions: `[{"id":"x","date":"2025-03-01","description":"d","category":"food","type":"expense","value":"NaN?"}]`,
			income:       "250",
			wantCount:    1,
			wantIncome:   "250",
		},
		{
			name:         "legacy numeric value",
			transactions: `[{"id":"x","date":"2025-03-01","description":"d","category":"food","type":"expense","value":12.5}]`,
			income:       "0",
			wantCount:    1,
			wantIncome:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			be.NilErr(t, store.Put(ctx,
				Entry{Key: TransactionsKey, Value: tt.transactions},
				Entry{Key: FixedIncomeKey, Value: tt.income},
			))

			ts, income := NewAdapter(store).Load(ctx)
			be.Equal(t, tt.wantCount, len(ts))
			be.Equal(t, tt.wantIncome, income.String())
		})
	}
}

func TestAdapterLoadStoreFailure(t *testing.T) {
	store := NewMemoryStore()
	be.NilErr(t, store.Close())

	ts, income := NewAdapter(store).Load(context.Background())
	be.Equal(t, 0, len(ts))
	be.True(t, income.IsZero())
}

func TestAdapterSaveEmptyWritesArray(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	be.NilErr(t, NewAdapter(store).Save(ctx, nil, ledger.Amount{}))

	raw, ok, err := store.Get(ctx, TransactionsKey)
	be.NilErr(t, err)
	be.True(t, ok)
	be.Equal(t, "[]", raw)
}

func TestAdapterClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := NewAdapter(store)

	be.NilErr(t, a.Save(ctx, sampleTransactions(), ledger.ParseAmount("10")))
	be.NilErr(t, a.Clear(ctx))

	for _, k := range []string{TransactionsKey, FixedIncomeKey} {
		_, ok, err := store.Get(ctx, k)
		be.NilErr(t, err)
		be.False(t, ok)
	}
}

func TestAdapterSaveError(t *testing.T) {
	store := NewMemoryStore()
	be.NilErr(t, store.Close())

	err := NewAdapter(store).Save(context.Background(), nil, ledger.Amount{})
	be.True(t, errors.Is(err, ErrClosed))
}

func TestAdapterBackedBook(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	a := NewAdapter(store)

	ts, income := a.Load(ctx)
	b := ledger.NewBook(a, ts, income)

	added, err := b.Add(ctx, ledger.Record{
		Date:        "2025-03-12",
		Description: "Bus",
		Category:    ledger.CategoryTransport,
		Type:        ledger.Expense,
		Value:       ledger.ParseAmount("4.40"),
	})
	be.NilErr(t, err)
	_, err = b.SetFixedIncome(ctx, "900")
	be.NilErr(t, err)

	reloaded, reloadedIncome := a.Load(ctx)
	be.Equal(t, 1, len(reloaded))
	be.Equal(t, added.ID, reloaded[0].ID)
	be.Equal(t, "900", reloadedIncome.String())

	cleared, err := b.ClearAll(ctx, func() bool { return true })
	be.NilErr(t, err)
	be.True(t, cleared)

	_, ok, err := store.Get(ctx, TransactionsKey)
	be.NilErr(t, err)
	be.False(t, ok)
}

func TestRepairedIDsSurviveReload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	be.NilErr(t, store.Put(ctx, Entry{
		Key:   TransactionsKey,
		Value: `[{"id":"","date":"2025-03-01","description":"d","category":"food","type":"expense","value":"5"}]`,
	}))
	a := NewAdapter(store)

	load := func() *ledger.Book {
		t.Helper()
		ts, income := a.Load(ctx)
		b := ledger.NewBook(a, ts, income)
		be.NilErr(t, b.SaveRepairs(ctx))
		return b
	}

	first := load().Transactions()
	second := load().Transactions()

	be.Equal(t, 1, len(first))
	be.Nonzero(t, first[0].ID)
	be.Equal(t, first[0].ID, second[0].ID)

	_, ok := load().Get(first[0].ID)
	be.True(t, ok)
}

type failingStore struct {
	*MemoryStore
}

func (failingStore) Put(context.Context, ...Entry) error {
	return errors.New("disk full")
}

func TestBookUnchangedWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	store := failingStore{NewMemoryStore()}
	a := NewAdapter(store)

	b := ledger.NewBook(a, nil, ledger.Amount{})
	_, err := b.Add(ctx, ledger.Record{
		Date:        "2025-03-12",
		Description: "Bus",
		Category:    ledger.CategoryTransport,
		Type:        ledger.Expense,
		Value:       ledger.ParseAmount("5"),
	})
	be.Nonzero(t, err)

	persisted, _ := a.Load(ctx)
	be.Equal(t, 0, len(persisted))
	be.Equal(t, 0, b.Len())
	be.True(t, b.Summary(3).TotalExpenses.IsZero())
}
