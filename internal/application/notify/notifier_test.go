package notify_test

import (
	"testing"

	"clubdesk/internal/application/notify"
)

// TestQueue_DrainOrder tests FIFO drain semantics.
func TestQueue_DrainOrder(t *testing.T) {
	q := notify.NewQueue()
	q.Error("first")
	q.Success("second")

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d notifications, want 2", len(got))
	}
	if got[0].Variant != notify.VariantError || got[0].Message != "first" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Variant != notify.VariantSuccess || got[1].Message != "second" {
		t.Errorf("got[1] = %+v", got[1])
	}

	if rest := q.Drain(); len(rest) != 0 {
		t.Errorf("second Drain() returned %d notifications, want 0", len(rest))
	}
}

// TestQueue_Peek tests that Peek does not clear the queue.
func TestQueue_Peek(t *testing.T) {
	q := notify.NewQueue()
	q.Success("kept")

	if got := q.Peek(); len(got) != 1 {
		t.Fatalf("Peek() returned %d, want 1", len(got))
	}
	if got := q.Drain(); len(got) != 1 {
		t.Errorf("Drain() after Peek() returned %d, want 1", len(got))
	}
}
