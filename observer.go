package reactor

// ObserverHandle is a handle to a side-effect node, per spec.md §4.7's
// Obs variant: structurally a computed node with no output. It exists
// only for its captured mutations of host state, exposed so the host can
// look it up for debugging (debug.go) via Index.
type ObserverHandle struct {
	dag *DAG
	idx NodeIndex
}

// Index returns the NodeIndex of the observer.
func (o ObserverHandle) Index() NodeIndex { return o.idx }

// RunCRx allocates an observer node running fn for its side effect. It
// runs once, eagerly, at construction, and re-runs under the same
// "any dependency changed" gate as a CRx (spec.md §4.7). Observers are
// never read from and never contribute to a recompute pass's changed set.
func RunCRx(d *DAG, fn func(rc *ReadContext), opts ...NodeOption) ObserverHandle {
	n := node{
		kind: kindObs,
		evaluate: func(rc *ReadContext, gen generation) bool {
			fn(rc)
			return false
		},
	}
	for _, opt := range opts {
		opt(&n)
	}
	idx := d.store.allocate(n)
	d.evalInitial(idx)
	return ObserverHandle{dag: d, idx: idx}
}
