package storage

import "context"

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	data   map[string]string
	closed bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.closed {
		return "", false, ErrClosed
	}

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, entries ...Entry) error {
	if s.closed {
		return ErrClosed
	}

	for _, e := range entries {
		s.data[e.Key] = e.Value
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	if s.closed {
		return ErrClosed
	}

	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.closed = true
	return nil
}
