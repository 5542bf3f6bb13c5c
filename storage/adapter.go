package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rshep3087/zenwallet/ledger"
	"github.com/charmbracelet/log"
)

// Keys under which the ledger is stored. They must not change between
// releases or existing data stops loading.
const (
	TransactionsKey = "zenwallet.transactions"
	FixedIncomeKey  = "zenwallet.fixed_income"
)

// Adapter maps the ledger onto a Store. It implements ledger.Persister.
type Adapter struct {
	store Store
}

// NewAdapter wraps store.
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store}
}

// Load reads the ledger. Missing or unreadable data yields an empty
// transaction list and zero fixed income; it never fails.
func (a *Adapter) Load(ctx context.Context) ([]ledger.Transaction, ledger.Amount) {
	return a.loadTransactions(ctx), a.loadFixedIncome(ctx)
}

func (a *Adapter) loadTransactions(ctx context.Context) []ledger.Transaction {
	raw, ok, err := a.store.Get(ctx, TransactionsKey)
	if err != nil {
		log.Warn("reading transactions failed, starting empty", "error", err)
		return nil
	}
	if !ok {
		log.Debug("no stored transactions")
		return nil
	}

	var ts []ledger.Transaction
	if err := json.Unmarshal([]byte(raw), &ts); err != nil {
		log.Warn("stored transactions are corrupt, starting empty", "error", err)
		return nil
	}

	log.Debug("loaded transactions", "count", len(ts))
	return ts
}

func (a *Adapter) loadFixedIncome(ctx context.Context) ledger.Amount {
	raw, ok, err := a.store.Get(ctx, FixedIncomeKey)
	if err != nil {
		log.Warn("reading fixed income failed, using 0", "error", err)
		return ledger.Amount{}
	}
	if !ok {
		return ledger.Amount{}
	}

	return ledger.ParseAmount(raw)
}

// Save overwrites the stored ledger with transactions and fixedIncome.
func (a *Adapter) Save(ctx context.Context, transactions []ledger.Transaction, fixedIncome ledger.Amount) error {
	if transactions == nil {
		transactions = []ledger.Transaction{}
	}

	b, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}

	err = a.store.Put(ctx,
		Entry{Key: TransactionsKey, Value: string(b)},
		Entry{Key: FixedIncomeKey, Value: fixedIncome.String()},
	)
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	log.Debug("saved ledger", "transactions", len(transactions), "fixed_income", fixedIncome)
	return nil
}

// Clear removes the stored ledger.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.store.Delete(ctx, TransactionsKey, FixedIncomeKey); err != nil {
		return fmt.Errorf("remove ledger: %w", err)
	}
	return nil
}
