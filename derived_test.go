package reactor

import "testing"

// TestDVar_ReadModifyWrite implements spec.md §8 scenario 6: setting
// through a DVar performs a read-modify-write on the parent, and both
// the projection and the parent reflect the change.
func TestDVar_ReadModifyWrite(t *testing.T) {
	d := NewDAG()
	wc := d.Write()

	v := NewVar(d, []byte("abc"))
	dv := Derive(v,
		func(b []byte) byte { return b[0] },
		func(b []byte, head byte) []byte {
			out := append([]byte(nil), b...)
			out[0] = head
			return out
		},
	)

	dv.Set(wc, 'x')
	rc := d.Now()

	if got := dv.Get(rc); got != 'x' {
		t.Fatalf("dv.Get() = %q, want 'x'", got)
	}
	if got := string(v.Get(rc)); got != "xbc" {
		t.Fatalf("v.Get() = %q, want %q", got, "xbc")
	}
}

// TestDVar_IsNotANode verifies spec.md §6: DVar allocates no NodeStore
// slot of its own — only the parent Var's construction grows the arena.
func TestDVar_IsNotANode(t *testing.T) {
	d := NewDAG()
	v := NewVar(d, 1)
	before := d.Len()

	Derive(v, func(x int) int { return x }, func(_ int, u int) int { return u })

	if d.Len() != before {
		t.Fatalf("Len() changed from %d to %d after Derive", before, d.Len())
	}
}

// TestDVar_GetTracksParentAsDependency verifies that reading a DVar
// inside a thunk records the parent Var, since DVar has no node identity
// of its own to record.
func TestDVar_GetTracksParentAsDependency(t *testing.T) {
	d := NewDAG()
	wc := d.Write()

	v := NewVar(d, 10)
	dv := Derive(v, func(x int) int { return x * 2 }, func(_ int, u int) int { return u })

	var crxRuns int
	doubled := NewCRx(d, func(rc *ReadContext) int {
		crxRuns++
		return dv.Get(rc)
	})
	_ = doubled

	v.Set(wc, 20)
	d.Recompute()

	if got := doubled.Get(d.Stale()); got != 40 {
		t.Fatalf("doubled = %d, want 40", got)
	}
	if crxRuns != 2 {
		t.Fatalf("crxRuns = %d, want 2 (construction + one recompute)", crxRuns)
	}
}

// TestDerive_NilAccessorsPanic verifies the documented panic contract
// for a malformed Derive call.
func TestDerive_NilAccessorsPanic(t *testing.T) {
	d := NewDAG()
	v := NewVar(d, 1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil get/set")
		}
	}()
	Derive[int, int](v, nil, nil)
}
