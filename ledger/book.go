package ledger

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Persister durably stores the whole ledger.
type Persister interface {
	Save(ctx context.Context, transactions []Transaction, fixedIncome Amount) error
	Clear(ctx context.Context) error
}

// Book is the in-memory working set. Every mutation is followed by a full
// Save before it returns.
type Book struct {
	transactions []Transaction
	fixedIncome  Amount
	persister    Persister
	newID        func() string
	repaired     bool
}

// Option configures a Book.
type Option func(*Book)

// WithIDGenerator replaces the UUIDv7 identity generator.
func WithIDGenerator(f func() string) Option {
	return func(b *Book) {
		b.newID = f
	}
}

// NewBook builds a Book from previously loaded state. Records with an empty
// or repeated ID are given a fresh one; call SaveRepairs to persist them.
func NewBook(p Persister, transactions []Transaction, fixedIncome Amount, opts ...Option) *Book {
	b := &Book{
		persister:   p,
		fixedIncome: fixedIncome,
		newID:       newUUID,
	}

	for _, opt := range opts {
		opt(b)
	}

	seen := make(map[string]bool, len(transactions))
	b.transactions = make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.ID == "" || seen[t.ID] {
			old := t.ID
			t.ID = b.freshID(seen)
			log.Debug("reassigned transaction id", "old", old, "new", t.ID)
			b.repaired = true
		}
		seen[t.ID] = true
		b.transactions = append(b.transactions, t)
	}

	return b
}

// Repaired reports whether NewBook reassigned any ID that is not saved yet.
func (b *Book) Repaired() bool {
	return b.repaired
}

// SaveRepairs writes the ledger back when NewBook reassigned IDs, so the
// same IDs are seen on the next load. It is a no-op otherwise.
func (b *Book) SaveRepairs(ctx context.Context) error {
	if !b.repaired {
		return nil
	}

	if err := b.commit(ctx, b.transactions, b.fixedIncome); err != nil {
		return err
	}

	log.Info("saved repaired transaction ids")
	b.repaired = false
	return nil
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (b *Book) freshID(taken map[string]bool) string {
	for {
		id := b.newID()
		if id != "" && !taken[id] {
			return id
		}
	}
}

func (b *Book) ids() map[string]bool {
	ids := make(map[string]bool, len(b.transactions))
	for _, t := range b.transactions {
		ids[t.ID] = true
	}
	return ids
}

func (b *Book) index(id string) int {
	return slices.IndexFunc(b.transactions, func(t Transaction) bool {
		return t.ID == id
	})
}

// commit persists the next state and only then makes it the working set.
func (b *Book) commit(ctx context.Context, transactions []Transaction, fixedIncome Amount) error {
	if err := b.persister.Save(ctx, transactions, fixedIncome); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}

	b.transactions = transactions
	b.fixedIncome = fixedIncome
	return nil
}

// Transactions returns a copy of every transaction in insertion order.
func (b *Book) Transactions() []Transaction {
	return slices.Clone(b.transactions)
}

// FixedIncome returns the monthly fixed income.
func (b *Book) FixedIncome() Amount {
	return b.fixedIncome
}

// Len returns the number of transactions.
func (b *Book) Len() int {
	return len(b.transactions)
}

// Get looks up a transaction by ID.
func (b *Book) Get(id string) (Transaction, bool) {
	i := b.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return b.transactions[i], true
}

// Add appends r under a fresh ID. On a save error the Book is unchanged.
func (b *Book) Add(ctx context.Context, r Record) (Transaction, error) {
	t := r.withID(b.freshID(b.ids()))

	next := append(slices.Clone(b.transactions), t)
	if err := b.commit(ctx, next, b.fixedIncome); err != nil {
		return Transaction{}, err
	}

	log.Debug("added transaction", "id", t.ID, "type", t.Type, "value", t.Value)

	return t, nil
}

// CommitEdit replaces every field of the transaction with the given ID,
// keeping the ID and its position. It reports false when no transaction
// matches, in which case nothing is written.
func (b *Book) CommitEdit(ctx context.Context, id string, r Record) (bool, error) {
	i := b.index(id)
	if i < 0 {
		log.Debug("edit of unknown transaction ignored", "id", id)
		return false, nil
	}

	next := slices.Clone(b.transactions)
	next[i] = r.withID(id)
	if err := b.commit(ctx, next, b.fixedIncome); err != nil {
		return false, err
	}

	log.Debug("edited transaction", "id", id)

	return true, nil
}

// Delete removes the transaction with the given ID. It reports false when no
// transaction matches, in which case nothing is written.
func (b *Book) Delete(ctx context.Context, id string) (bool, error) {
	i := b.index(id)
	if i < 0 {
		log.Debug("delete of unknown transaction ignored", "id", id)
		return false, nil
	}

	next := slices.Delete(slices.Clone(b.transactions), i, i+1)
	if err := b.commit(ctx, next, b.fixedIncome); err != nil {
		return false, err
	}

	log.Debug("deleted transaction", "id", id)

	return true, nil
}

// SetFixedIncome parses raw and stores it as the fixed income.
// Unparsable or negative input is stored as 0. On a save error the previous
// fixed income is kept and returned.
func (b *Book) SetFixedIncome(ctx context.Context, raw string) (Amount, error) {
	income := ParseAmount(raw)
	if err := b.commit(ctx, b.transactions, income); err != nil {
		return b.fixedIncome, err
	}

	log.Debug("set fixed income", "value", income)

	return income, nil
}

// ClearAll empties the ledger and removes it from storage, but only when
// confirm returns true. It reports whether the ledger was cleared; when
// storage fails nothing is cleared.
func (b *Book) ClearAll(ctx context.Context, confirm func() bool) (bool, error) {
	if confirm == nil || !confirm() {
		log.Debug("clear all not confirmed")
		return false, nil
	}

	if err := b.persister.Clear(ctx); err != nil {
		return false, fmt.Errorf("clearing ledger: %w", err)
	}

	b.transactions = nil
	b.fixedIncome = Amount{}
	b.repaired = false

	log.Info("ledger cleared")

	return true, nil
}

// Summary computes the derived state for month.
func (b *Book) Summary(month int) Summary {
	return Summarize(b.transactions, month, b.fixedIncome)
}

// Trend computes the derived state for every month.
func (b *Book) Trend() [12]Summary {
	return YearTrend(b.transactions, b.fixedIncome)
}
