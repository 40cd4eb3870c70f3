package tasks

import "testing"

func TestInsertPreservesOrder(t *testing.T) {
	table := NewTable()
	a := table.Insert(KindCopy, "a")
	b := table.Insert(KindCopy, "b")
	c := table.Insert(KindCopy, "c")

	snap := table.Snapshot()
	if len(snap) != 3 || snap[0].ID != a || snap[1].ID != b || snap[2].ID != c {
		t.Fatalf("unexpected snapshot order: %+v", snap)
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	table := NewTable()
	id := table.Insert(KindCopy, "a")
	table.Update(id, func(r *Record) { r.BytesDone = 42; r.State = StateDone })

	snap := table.Snapshot()
	if snap[0].BytesDone != 42 || snap[0].State != StateDone {
		t.Fatalf("unexpected record: %+v", snap[0])
	}
}

func TestRemoveDeletesAndPreservesRemainingOrder(t *testing.T) {
	table := NewTable()
	a := table.Insert(KindCopy, "a")
	b := table.Insert(KindCopy, "b")
	table.Remove(a)

	snap := table.Snapshot()
	if len(snap) != 1 || snap[0].ID != b {
		t.Fatalf("unexpected snapshot after remove: %+v", snap)
	}
	if table.Len() != 1 {
		t.Fatalf("expected Len 1, got %d", table.Len())
	}
}

func TestPaginateSaturatesAtTableLength(t *testing.T) {
	table := NewTable()
	for i := 0; i < 3; i++ {
		table.Insert(KindCopy, "x")
	}

	if got := table.Paginate(10); len(got) != 3 {
		t.Fatalf("expected 3 records (saturated), got %d", len(got))
	}
	if got := table.Paginate(2); len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got := table.Paginate(0); got != nil {
		t.Fatalf("expected nil for limit 0, got %+v", got)
	}
}
