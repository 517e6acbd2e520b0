package save

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/appengine-ltd/homestead/internal/game"
)

func snapshotFarm(t *testing.T) game.FarmState {
	t.Helper()
	return *game.NewFarmState(game.DefaultFarmConfig())
}

func TestDebouncerCoalescesBursts(t *testing.T) {
	var flushes atomic.Int32
	debouncer := NewDebouncer(30*time.Millisecond, func(game.FarmState) {
		flushes.Add(1)
	})
	defer debouncer.Close()

	for i := 0; i < 10; i++ {
		debouncer.Mark(snapshotFarm(t))
		time.Sleep(5 * time.Millisecond)
	}
	if got := flushes.Load(); got != 0 {
		t.Fatalf("expected no flush during the burst, got %d", got)
	}

	time.Sleep(100 * time.Millisecond)
	if got := flushes.Load(); got != 1 {
		t.Fatalf("expected exactly one flush after the burst, got %d", got)
	}
}

func TestDebouncerFlushRunsPendingWrite(t *testing.T) {
	var flushes atomic.Int32
	debouncer := NewDebouncer(time.Hour, func(game.FarmState) {
		flushes.Add(1)
	})
	defer debouncer.Close()

	debouncer.Flush()
	if got := flushes.Load(); got != 0 {
		t.Fatalf("flush with nothing pending must be a no-op, got %d", got)
	}

	debouncer.Mark(snapshotFarm(t))
	debouncer.Flush()
	if got := flushes.Load(); got != 1 {
		t.Fatalf("expected one flush, got %d", got)
	}

	// The cancelled timer must not fire later on top of the manual flush.
	time.Sleep(50 * time.Millisecond)
	if got := flushes.Load(); got != 1 {
		t.Fatalf("expected no extra flush, got %d", got)
	}
}

func TestDebouncerCloseFlushesAndStops(t *testing.T) {
	var flushes atomic.Int32
	debouncer := NewDebouncer(time.Hour, func(game.FarmState) {
		flushes.Add(1)
	})

	debouncer.Mark(snapshotFarm(t))
	debouncer.Close()
	if got := flushes.Load(); got != 1 {
		t.Fatalf("expected close to flush the pending write, got %d", got)
	}

	debouncer.Mark(snapshotFarm(t))
	time.Sleep(20 * time.Millisecond)
	if got := flushes.Load(); got != 1 {
		t.Fatalf("marks after close must be ignored, got %d", got)
	}
}

// The write must see the state as it was at mark time. The live aggregate
// keeps mutating on the caller's thread, so the flush goroutine may only
// ever touch the snapshot handed to Mark.
func TestDebouncerWritesSnapshotNotLiveState(t *testing.T) {
	written := make(chan game.FarmState, 1)
	debouncer := NewDebouncer(10*time.Millisecond, func(snapshot game.FarmState) {
		written <- snapshot
	})
	defer debouncer.Close()

	farm := snapshotFarm(t)
	if !farm.BuySeed(game.CropCarrot) {
		t.Fatalf("expected seed purchase to succeed")
	}
	debouncer.Mark(farm.Clone())

	// Mutations after the mark belong to the next write, not this one.
	for i := 0; i < 5; i++ {
		farm.BuySeed(game.CropCarrot)
	}

	select {
	case snapshot := <-written:
		if snapshot.Money != 90 {
			t.Fatalf("expected the marked snapshot with 90g, got %d", snapshot.Money)
		}
	case <-time.After(time.Second):
		t.Fatalf("flush never ran")
	}
}

func TestDebouncerLatestSnapshotWins(t *testing.T) {
	written := make(chan game.FarmState, 1)
	debouncer := NewDebouncer(20*time.Millisecond, func(snapshot game.FarmState) {
		written <- snapshot
	})
	defer debouncer.Close()

	farm := snapshotFarm(t)
	debouncer.Mark(farm.Clone())
	farm.BuySeed(game.CropCarrot)
	debouncer.Mark(farm.Clone())

	select {
	case snapshot := <-written:
		if snapshot.Money != 90 {
			t.Fatalf("expected the latest snapshot with 90g, got %d", snapshot.Money)
		}
	case <-time.After(time.Second):
		t.Fatalf("flush never ran")
	}
}
