package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/nightswitch/fmcore/pkg/event"
)

func TestProgressAggregatesRunningRecords(t *testing.T) {
	records := []Record{
		{BytesDone: 10, BytesTotal: 100, ItemsDone: 1, ItemsTotal: 2, State: StateRunning},
		{BytesDone: 5, BytesTotal: 50, ItemsDone: 1, ItemsTotal: 1, State: StateDone},
	}

	p := Progress(records)
	if p.OverallBytesDone != 15 || p.OverallBytesTotal != 150 {
		t.Fatalf("unexpected byte aggregates: %+v", p)
	}
	if p.ActiveCount != 1 {
		t.Fatalf("expected ActiveCount 1 (only the running record), got %d", p.ActiveCount)
	}
}

func TestRunProgressPumpEmitsNothingWithNoMutations(t *testing.T) {
	table := NewTable()
	events := make(chan event.Event, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		RunProgressPump(ctx, table, events)
		close(done)
	}()
	<-done

	select {
	case e := <-events:
		t.Fatalf("expected zero emissions for zero mutations, got %+v", e)
	default:
	}
}

func TestRunProgressPumpEmitsOnceForAChange(t *testing.T) {
	table := NewTable()
	events := make(chan event.Event, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 700*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		RunProgressPump(ctx, table, events)
		close(done)
	}()

	table.Insert(KindCopy, "a")
	<-done

	count := 0
	for {
		select {
		case <-events:
			count++
		default:
			if count != 1 {
				t.Fatalf("expected exactly one emission after a table mutation, got %d", count)
			}
			return
		}
	}
}
