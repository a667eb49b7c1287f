package reactor

// DAG owns all node storage and coordinates Set/Recompute/Now, enforcing
// the borrow discipline described in spec.md §4.8 and §5: Recompute
// requires exclusive access (the host must not call it while a thunk is
// mid-execution or a returned reference is still in use); Set requires
// only shared access; Get requires only a ReadContext.
//
// A DAG is not safe for concurrent use from multiple goroutines — the
// engine is single-threaded cooperative by design (spec.md §5).
type DAG struct {
	store *NodeStore
	gen   generation

	varStates map[NodeIndex]any
	crxStates map[NodeIndex]*crxState

	opts DAGOptions
}

// NewDAG returns an empty DAG with default options.
func NewDAG() *DAG {
	return NewDAGWithOptions(DAGOptions{})
}

// NewDAGWithOptions returns an empty DAG, pre-sizing its node arena per
// opts.Capacity if given.
func NewDAGWithOptions(opts DAGOptions) *DAG {
	return &DAG{
		store:     newNodeStore(opts.Capacity),
		varStates: make(map[NodeIndex]any),
		crxStates: make(map[NodeIndex]*crxState),
		opts:      opts,
	}
}

// Len reports the number of nodes ever allocated (Vars, CRxs, and
// Observers combined). Useful for tests asserting allocation order
// (spec.md §8 invariant 4) without reaching into package internals.
func (d *DAG) Len() int {
	return d.store.len()
}

// NodeCount is an alias for Len, provided because callers reaching for
// "how big is this graph" and callers reaching for "what's the next
// index" read more naturally under different names.
func (d *DAG) NodeCount() int {
	return d.Len()
}

// Write returns a cheap, non-exclusive capability for staging writes on
// variables (spec.md §4.3).
func (d *DAG) Write() *WriteContext {
	return &WriteContext{dag: d}
}

// Now recomputes the graph and returns a ReadContext valid until the DAG
// is next mutated. Requires exclusive access: it may mutate observable
// state via its implicit Recompute.
func (d *DAG) Now() *ReadContext {
	d.Recompute()
	return &ReadContext{dag: d, gen: d.gen}
}

// Stale returns a cheap read-only context reflecting values as of the
// last Recompute (or initial construction), ignoring any outstanding
// pending writes. It never triggers recomputation (spec.md §4.8, §9).
func (d *DAG) Stale() *ReadContext {
	return &ReadContext{dag: d, gen: d.gen}
}

// Recompute commits every variable's pending write and re-evaluates any
// computed/observer node whose dependency set intersects the set of
// nodes that changed this round. It implements the algorithm in
// spec.md §4.6 verbatim: a single forward scan over the NodeStore in
// allocation order, exploiting invariant 1 (a node's dependencies were
// always allocated before it) to avoid any topological sort.
func (d *DAG) Recompute() {
	gen := d.gen + 1
	total := d.store.len()
	changed := make(map[NodeIndex]struct{})

	// Step 1: commit every Var's pending write, per spec.md §4.6 step 1.
	for i := 0; i < total; i++ {
		idx := NodeIndex(i)
		rec := d.store.get(idx)
		if rec.kind != kindVar {
			continue
		}
		if rec.commitPending(gen) {
			changed[idx] = struct{}{}
		}
	}

	d.gen = gen

	// Step 2: walk in allocation order, evaluating CRx/Obs nodes that are
	// either running for the first time or whose deps include something
	// that changed this round.
	for i := 0; i < total; i++ {
		idx := NodeIndex(i)
		rec := d.store.get(idx)
		if rec.kind == kindVar {
			continue
		}
		if rec.everRan && !dependsOnAny(rec.deps, changed) {
			continue
		}
		if d.evalNode(idx, rec, gen) {
			changed[idx] = struct{}{}
		}
	}
}

// evalInitial runs a freshly constructed CRx/Obs node's thunk eagerly,
// once, at the DAG's current generation (spec.md §4.6's "First-time
// evaluation"). It populates the node's initial deps.
func (d *DAG) evalInitial(idx NodeIndex) {
	d.evalNode(idx, d.store.get(idx), d.gen)
}

// evalNode runs rec's thunk under a fresh DependencyTracker, replaces
// rec.deps with whatever was read, and reports whether the node's output
// changed (always false for Obs, which has none).
func (d *DAG) evalNode(idx NodeIndex, rec *node, gen generation) bool {
	tracker := newDependencyTracker()
	rc := &ReadContext{dag: d, gen: gen, tracker: tracker}
	changed := rec.evaluate(rc, gen)
	rec.deps = tracker.seen
	rec.everRan = true
	return changed
}

// dependsOnAny reports whether any index in deps is present in changed.
func dependsOnAny(deps map[NodeIndex]struct{}, changed map[NodeIndex]struct{}) bool {
	if len(deps) == 0 || len(changed) == 0 {
		return false
	}
	for i := range deps {
		if _, ok := changed[i]; ok {
			return true
		}
	}
	return false
}

// allocateCRx registers a computed node backed by st and returns its
// NodeIndex. The caller is responsible for initializing st.outputs'
// slots and then calling evalInitial to perform the eager first run.
func (d *DAG) allocateCRx(st *crxState, opts []NodeOption) NodeIndex {
	n := node{
		kind: kindCRx,
		evaluate: func(rc *ReadContext, gen generation) bool {
			results := st.compute(rc)
			for i, r := range results {
				st.outputs[i].write(r, gen)
			}
			return true // default policy: any evaluation counts as changed
		},
	}
	for _, opt := range opts {
		opt(&n)
	}
	idx := d.store.allocate(n)
	d.crxStates[idx] = st
	return idx
}

// varState returns the side-table state for a Var's node.
func (d *DAG) varState(idx NodeIndex) any {
	return d.varStates[idx]
}

// setVarState installs the side-table state for a newly allocated Var.
func (d *DAG) setVarState(idx NodeIndex, st any) {
	d.varStates[idx] = st
}

// crxState returns the side-table state for a computed node.
func (d *DAG) crxState(idx NodeIndex) *crxState {
	return d.crxStates[idx]
}
