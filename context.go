package reactor

// ReadContext is a capability granting read access to node values, per
// spec.md §4.3. It is obtained from DAG.Now or DAG.Stale, or transparently
// supplied to a compute/observer thunk during evaluation.
//
// A ReadContext pins a generation: values read through it are those
// committed as of that generation, as long as at most one later recompute
// has rewritten the value being read. A slot keeps only one previous
// value, so after two later rewrites the reader sees the intermediate
// value, not the one from its own generation. It is cheap to copy and
// carries no cleanup obligation.
type ReadContext struct {
	dag *DAG
	gen generation

	// tracker is non-nil only when this context was handed to a thunk
	// being evaluated; every Var.Get/CRx.Get routed through it records
	// the accessed node into the tracker (spec.md §4.4).
	tracker *DependencyTracker
}

// record notes that node i was read through this context, if the context
// is currently tracking dependencies for an in-progress evaluation.
func (rc *ReadContext) record(i NodeIndex) {
	if rc.tracker != nil {
		rc.tracker.seen[i] = struct{}{}
	}
}

// WriteContext is a capability granting Set/Modify on variables. Per
// spec.md §4.3, obtaining one does not exclude readers: it only lets the
// holder stage a pending write, which becomes observable no earlier than
// the next recompute. WriteContext is cheap and non-exclusive.
type WriteContext struct {
	dag *DAG
}

// DependencyTracker is the per-evaluation scratch set described in
// spec.md §4.4. It starts empty for each thunk invocation and is
// snapshotted into the evaluating node's deps once the thunk returns,
// replacing whatever dependency set that node had before.
type DependencyTracker struct {
	seen map[NodeIndex]struct{}
}

func newDependencyTracker() *DependencyTracker {
	return &DependencyTracker{seen: make(map[NodeIndex]struct{})}
}
