package tasks

import (
	"context"
	"time"

	"github.com/nightswitch/fmcore/pkg/event"
)

// pumpInterval is the progress pump's fixed polling cadence. Task state
// changes can be dense (bytewise copy progress); polling coalesces updates
// and bounds UI redraw rate independently of workload.
const pumpInterval = 500 * time.Millisecond

// Progress derives an aggregate snapshot from a table's current records.
func Progress(records []Record) event.Progress {
	var p event.Progress
	for _, r := range records {
		p.OverallBytesDone += r.BytesDone
		p.OverallBytesTotal += r.BytesTotal
		p.OverallItemsDone += r.ItemsDone
		p.OverallItemsTotal += r.ItemsTotal
		if r.State == StateRunning {
			p.ActiveCount++
		}
	}
	return p
}

// RunProgressPump polls table every pumpInterval and emits a Progress event
// onto events whenever the derived aggregate differs from the last
// published value. It runs until ctx is cancelled; the spec ties its
// lifetime to process shutdown, which ctx models here.
func RunProgressPump(ctx context.Context, table *Table, events chan<- event.Event) {
	ticker := time.NewTicker(pumpInterval)
	defer ticker.Stop()

	var last event.Progress

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := Progress(table.Snapshot())
			if current != last {
				last = current
				select {
				case events <- current:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
