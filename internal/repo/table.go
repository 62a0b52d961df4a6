package repo

import (
	"sort"
	"sync"
)

// table is one keyed collection with its own id counter. Ids start at 1 and are
// never handed out twice, even after a delete.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[int64]T
	next int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), next: 1}
}

func (t *table[T]) get(id int64) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &row
}

// find returns a copy of the first row (by id) that matches.
func (t *table[T]) find(match func(T) bool) *T {
	rows := t.filter(match)
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// filter returns copies of the matching rows ordered by id. A nil match keeps all rows.
func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if match == nil || match(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) insert(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) update(id int64, apply func(*T)) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	apply(&row)
	t.rows[id] = row
	return &row
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}
