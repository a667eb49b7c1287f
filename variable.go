package reactor

import "fmt"

// Var is a handle to an input node, per spec.md §3's Var variant. Its
// value is supplied by the host; it has no dependencies of its own
// (invariant 2). A Var is meaningless detached from the DAG that
// allocated it.
type Var[T any] struct {
	dag *DAG
	idx NodeIndex
}

// varState is the record a Var keeps in its DAG's varStates side table,
// keyed by the Var's NodeIndex.
type varState[T any] struct {
	slot    versionedSlot[T]
	pending *T // staged write, cleared every recompute; nil means none
	equal   EqualFunc[T]
}

// Index returns the NodeIndex this Var occupies. Exposed for debug.go and
// for tests asserting allocation order (spec.md §8 invariant 4).
func (v Var[T]) Index() NodeIndex { return v.idx }

// Get returns the value committed as of ctx's generation. Called from
// inside a thunk, it also records this Var as a dependency of the
// evaluating node (spec.md §4.5).
func (v Var[T]) Get(ctx *ReadContext) T {
	if ctx.dag != v.dag {
		panic("reactor: ReadContext belongs to a different DAG")
	}
	ctx.record(v.idx)
	st := v.dag.varState(v.idx).(*varState[T])
	return st.slot.get(ctx.gen)
}

// Set stages newValue as a pending write, per spec.md §4.5. It overwrites
// any prior pending write staged since the last commit (last-write-wins
// within a batch); it never mutates the committed value itself. Only a
// subsequent Recompute (directly, or implicitly via Now) installs it.
func (v Var[T]) Set(wc *WriteContext, newValue T) {
	if wc.dag != v.dag {
		panic("reactor: WriteContext belongs to a different DAG")
	}
	st := v.dag.varState(v.idx).(*varState[T])
	if st.equal != nil {
		cur := st.slot.get(v.dag.gen)
		if st.equal(cur, newValue) {
			v.dag.opts.warn(fmt.Sprintf("reactor: Var[%d].Set suppressed a no-op write (equal to current value)", v.idx))
			st.pending = nil
			return
		}
	}
	st.pending = &newValue
}

// Modify is equivalent to Set(wc, f(current)), where current is the
// variable's committed value — never any write still pending from this
// batch (spec.md §4.5).
func (v Var[T]) Modify(wc *WriteContext, f func(T) T) {
	st := v.dag.varState(v.idx).(*varState[T])
	cur := st.slot.get(v.dag.gen)
	v.Set(wc, f(cur))
}

// NewVar allocates a new input node holding initial, using the spec's
// default change-detection policy (any Set/Modify counts as a change).
func NewVar[T any](d *DAG, initial T, opts ...NodeOption) Var[T] {
	return NewVarWithOptions(d, initial, VarOptions[T]{}, opts...)
}

// NewVarWithOptions allocates a new input node with a custom equality
// policy (spec.md §9's opt-in extension).
func NewVarWithOptions[T any](d *DAG, initial T, vopts VarOptions[T], opts ...NodeOption) Var[T] {
	st := &varState[T]{
		slot:  newVersionedSlot(initial, d.gen),
		equal: vopts.Equal,
	}
	n := node{
		kind: kindVar,
		commitPending: func(gen generation) bool {
			if st.pending == nil {
				return false
			}
			st.slot.write(*st.pending, gen)
			st.pending = nil
			return true
		},
	}
	for _, opt := range opts {
		opt(&n)
	}
	idx := d.store.allocate(n)
	d.setVarState(idx, st)
	return Var[T]{dag: d, idx: idx}
}
