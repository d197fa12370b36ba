package memory

import (
	"fmt"
	"sync"

	idgen "github.com/riskibarqy/ballpark/internal/platform/id"
)

// table is a primary-key map that remembers insertion order so full scans
// come back in creation order.
type table[T any] struct {
	mu    sync.RWMutex
	ids   idgen.Generator
	order []string
	rows  map[string]T
}

func newTable[T any](ids idgen.Generator) *table[T] {
	return &table[T]{
		ids:  ids,
		rows: make(map[string]T),
	}
}

// insert generates an ID, lets build assemble the row around it and stores
// the result.
func (t *table[T]) insert(build func(id string) T) (string, error) {
	id, err := t.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	row := build(id)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row

	return id, nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// filter scans every row and returns the matches in a new slice. A nil match
// keeps everything.
func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if match == nil || match(row) {
			out = append(out, row)
		}
	}

	return out
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.order)
}
