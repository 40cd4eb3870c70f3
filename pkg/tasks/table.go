// Package tasks implements the scheduler facade: a thin API in front of
// worker goroutines that mutate files and precache derived artifacts,
// backed by a running-task table and a fixed-cadence progress pump.
package tasks

import (
	"sync"

	"github.com/google/uuid"
)

// Kind names the operation a task record represents.
type Kind int

const (
	KindCopy Kind = iota
	KindCut
	KindLink
	KindDelete
	KindTrash
	KindOpen
	KindPrecacheSize
	KindPrecacheMime
	KindPrecacheImage
	KindPrecacheVideo
	KindPrecachePDF
)

var kindNames = [...]string{
	KindCopy:          "copy",
	KindCut:           "cut",
	KindLink:          "link",
	KindDelete:        "delete",
	KindTrash:         "trash",
	KindOpen:          "open",
	KindPrecacheSize:  "precache-size",
	KindPrecacheMime:  "precache-mime",
	KindPrecacheImage: "precache-image",
	KindPrecacheVideo: "precache-video",
	KindPrecachePDF:   "precache-pdf",
}

// String renders a Kind as the label shown in a rendered task summary.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// State is a task record's lifecycle stage.
type State int

const (
	StateRunning State = iota
	StateDone
	StateFailed
)

// Record is the running table's unit: a human summary plus byte/item
// progress counters, mutated in place by the worker that owns it.
type Record struct {
	ID          uuid.UUID
	Kind        Kind
	Name        string
	BytesDone   int64
	BytesTotal  int64
	ItemsDone   int64
	ItemsTotal  int64
	State       State
}

// Table is the running-task table: an insertion-ordered mapping from task
// id to record, shared between the scheduler's workers (writers) and the
// progress pump / pagination queries (readers).
type Table struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*Record
}

// NewTable builds an empty running table.
func NewTable() *Table {
	return &Table{byID: map[uuid.UUID]*Record{}}
}

// Insert adds a new record, returning its id. Insertion order is preserved
// for pagination.
func (t *Table) Insert(kind Kind, name string) uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.New()
	t.byID[id] = &Record{ID: id, Kind: kind, Name: name, State: StateRunning}
	t.order = append(t.order, id)
	return id
}

// Update mutates a record in place under the write lock. A no-op if the id
// is unknown (e.g. already removed).
func (t *Table) Update(id uuid.UUID, fn func(*Record)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if record, ok := t.byID[id]; ok {
		fn(record)
	}
}

// Remove deletes a completed record from the table. Removing an unknown id
// is a no-op.
func (t *Table) Remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return
	}
	delete(t.byID, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of records currently tracked.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Snapshot returns a copy of every record, in insertion order. Callers must
// not mutate the returned records.
func (t *Table) Snapshot() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Record, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.byID[id])
	}
	return out
}

// Paginate returns up to limit records in insertion order, saturating at
// the table's current length.
func (t *Table) Paginate(limit int) []Record {
	if limit <= 0 {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := limit
	if n > len(t.order) {
		n = len(t.order)
	}
	out := make([]Record, 0, n)
	for _, id := range t.order[:n] {
		out = append(out, *t.byID[id])
	}
	return out
}
