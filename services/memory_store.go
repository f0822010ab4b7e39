package services

import (
	"context"
	"sync"
)

// MemoryStore keeps the sheet in process memory. Used for local development
// (STORE_DRIVER=memory) and tests.
type MemoryStore struct {
	mu      sync.Mutex
	headers []string
	names   []string
	cells   map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		headers: []string{NameHeader},
		names:   []string{NameHeader},
		cells:   make(map[string]string),
	}
}

func (s *MemoryStore) Headers(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.headers...), nil
}

func (s *MemoryStore) NameColumn(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...), nil
}

func (s *MemoryStore) AppendName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
	return nil
}

func (s *MemoryStore) EnsureDateColumn(ctx context.Context, date string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOf(s.headers, date); idx > 0 {
		return idx, nil
	}
	s.headers = append(s.headers, date)
	return len(s.headers), nil
}

func (s *MemoryStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cells[CellRef(row, col)], nil
}

func (s *MemoryStore) WriteCell(ctx context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[CellRef(row, col)] = value
	return nil
}
