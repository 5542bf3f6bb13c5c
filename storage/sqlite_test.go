package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "zenwallet.db"))
	be.NilErr(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	_, ok, err := s.Get(ctx, "missing")
	be.NilErr(t, err)
	be.False(t, ok)

	be.NilErr(t, s.Put(ctx, Entry{Key: "a", Value: "1"}, Entry{Key: "b", Value: "2"}))
	be.NilErr(t, s.Put(ctx, Entry{Key: "a", Value: "3"}))

	v, ok, err := s.Get(ctx, "a")
	be.NilErr(t, err)
	be.True(t, ok)
	be.Equal(t, "3", v)

	be.NilErr(t, s.Delete(ctx, "a", "never-existed"))

	_, ok, err = s.Get(ctx, "a")
	be.NilErr(t, err)
	be.False(t, ok)

	v, ok, err = s.Get(ctx, "b")
	be.NilErr(t, err)
	be.True(t, ok)
	be.Equal(t, "2", v)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "zenwallet.db")

	s, err := OpenSQLite(path)
	be.NilErr(t, err)
	be.NilErr(t, s.Put(ctx, Entry{Key: FixedIncomeKey, Value: "1000"}))
	be.NilErr(t, s.Close())

	// migrations already applied must not fail the second open
	s, err = OpenSQLite(path)
	be.NilErr(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, FixedIncomeKey)
	be.NilErr(t, err)
	be.True(t, ok)
	be.Equal(t, "1000", v)
}

func TestSQLiteAdapterRoundTrip(t *testing.T) {
	assertRoundTrip(t, openTestDB(t))
}
