package reactor

import "testing"

// TestObserver_RunsOnceAtConstruction verifies spec.md §4.6/§4.7: an
// observer runs once, eagerly, at construction.
func TestObserver_RunsOnceAtConstruction(t *testing.T) {
	d := NewDAG()
	v := NewVar(d, 0)

	runs := 0
	RunCRx(d, func(rc *ReadContext) {
		runs++
		_ = v.Get(rc)
	})

	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
}

// TestObserver_Gating implements spec.md §8 scenario 3: two Sets
// followed by one Recompute run the observer exactly once more, with
// the combined effect of both writes visible in a single invocation.
func TestObserver_Gating(t *testing.T) {
	d := NewDAG()
	wc := d.Write()

	v1 := NewVar(d, 0)
	v2 := NewVar(d, 0)

	var history []int
	RunCRx(d, func(rc *ReadContext) {
		history = append(history, v1.Get(rc)+v2.Get(rc))
	})

	if len(history) != 1 || history[0] != 0 {
		t.Fatalf("history after construction = %v, want [0]", history)
	}

	v1.Set(wc, 1)
	v2.Set(wc, 2)
	d.Recompute()

	if len(history) != 2 || history[1] != 3 {
		t.Fatalf("history after one recompute = %v, want [0 3]", history)
	}
}

// TestObserver_SelectiveRerun implements spec.md §8 scenario 5: an
// observer that reads a CRx does not rerun when a variable outside that
// CRx's dependency set changes.
func TestObserver_SelectiveRerun(t *testing.T) {
	d := NewDAG()
	wc := d.Write()

	v1 := NewVar(d, 1)
	v2 := NewVar(d, 100)

	c := NewCRx(d, func(rc *ReadContext) int {
		return v1.Get(rc) + 1
	})

	runs := 0
	RunCRx(d, func(rc *ReadContext) {
		runs++
		_ = c.Get(rc)
	})

	if runs != 1 {
		t.Fatalf("runs after construction = %d, want 1", runs)
	}

	v2.Set(wc, 999)
	d.Recompute()

	if runs != 1 {
		t.Fatalf("runs after unrelated Set = %d, want 1 (observer must not rerun)", runs)
	}

	v1.Set(wc, 2)
	d.Recompute()
	if runs != 2 {
		t.Fatalf("runs after relevant Set = %d, want 2", runs)
	}
}

// TestObserver_NeverContributesToChanged verifies spec.md §4.7: observers
// are never depended upon and never added to the changed set.
func TestObserver_NeverContributesToChanged(t *testing.T) {
	d := NewDAG()
	wc := d.Write()
	v := NewVar(d, 0)

	obsRuns := 0
	obs := RunCRx(d, func(rc *ReadContext) {
		obsRuns++
		_ = v.Get(rc)
	})

	// A CRx constructed afterward cannot possibly depend on obs (it has
	// no Get to call), so it should never re-evaluate due to obs alone.
	crxRuns := 0
	NewCRx(d, func(rc *ReadContext) int {
		crxRuns++
		return v.Get(rc)
	})

	v.Set(wc, 1)
	d.Recompute()

	if obsRuns != 2 {
		t.Fatalf("obsRuns = %d, want 2", obsRuns)
	}
	if crxRuns != 2 {
		t.Fatalf("crxRuns = %d, want 2", crxRuns)
	}
	_ = obs
}

// TestObserver_StopIsNotPartOfContract documents that, unlike the
// teacher's push-based Effect, an observer here has no Stop: it lives as
// long as the DAG, per spec.md's lifecycle section in §3. The absence of
// Stop is a compile-time fact; at run time the test only checks that the
// returned handle reports the index of the first node allocated.
func TestObserver_StopIsNotPartOfContract(t *testing.T) {
	d := NewDAG()
	var got ObserverHandle = RunCRx(d, func(rc *ReadContext) {})
	if got.Index() != 0 {
		t.Fatalf("Index() = %d, want 0 for the first node allocated", got.Index())
	}
}
