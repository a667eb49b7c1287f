package reactor

import "testing"

// TestVersionedSlot_RetainsOneGenerationBack verifies that a reader whose
// context predates a write still observes the old value, while a reader
// at or after the write's generation observes the new one (spec.md
// §4.2's VersionedSlot contract).
func TestVersionedSlot_RetainsOneGenerationBack(t *testing.T) {
	s := newVersionedSlot(1, generation(0))

	if got := s.get(0); got != 1 {
		t.Fatalf("get(0) = %d, want 1", got)
	}

	s.write(2, generation(1))

	if got := s.get(0); got != 1 {
		t.Fatalf("get(0) after write at gen 1 = %d, want 1 (pre-recompute reader)", got)
	}
	if got := s.get(1); got != 2 {
		t.Fatalf("get(1) = %d, want 2", got)
	}
}

// TestVersionedSlot_OnlyOneGenerationRetained verifies that retention
// does not extend further than one generation back, per spec.md §4.2's
// "retention need extend only one generation back".
func TestVersionedSlot_OnlyOneGenerationRetained(t *testing.T) {
	s := newVersionedSlot("a", generation(0))
	s.write("b", generation(1))
	s.write("c", generation(2))

	// A reader from generation 0 is now two generations stale; the slot
	// only guarantees generation-1 retention, so it sees "b", not "a".
	if got := s.get(0); got != "b" {
		t.Fatalf("get(0) after two writes = %q, want %q", got, "b")
	}
	if got := s.get(2); got != "c" {
		t.Fatalf("get(2) = %q, want %q", got, "c")
	}
}

// TestVersionedSlot_NoWriteYet verifies a fresh slot has no prev and
// always returns its initial value regardless of the asOf generation
// queried.
func TestVersionedSlot_NoWriteYet(t *testing.T) {
	s := newVersionedSlot(42, generation(5))

	if got := s.get(0); got != 42 {
		t.Fatalf("get(0) on unwritten slot = %d, want 42", got)
	}
	if got := s.get(100); got != 42 {
		t.Fatalf("get(100) on unwritten slot = %d, want 42", got)
	}
}
