package reactor

// CRx is a handle to one output of a computed node, per spec.md §3's CRx
// variant. A computed node may produce more than one output (NewCRx2..4);
// every CRx handle sharing the same underlying node records reads against
// that node, not against its individual output slot (spec.md §4.6).
type CRx[T any] struct {
	dag  *DAG
	idx  NodeIndex
	slot int
}

// Index returns the NodeIndex of the underlying computed node. Multiple
// CRx handles from the same NewCRxN call share an Index.
func (c CRx[T]) Index() NodeIndex { return c.idx }

// Get returns the output's value as of ctx's generation. Inside a thunk,
// it records the underlying node (not the slot) as a dependency.
func (c CRx[T]) Get(ctx *ReadContext) T {
	if ctx.dag != c.dag {
		panic("reactor: ReadContext belongs to a different DAG")
	}
	ctx.record(c.idx)
	st := c.dag.crxState(c.idx)
	out := st.outputs[c.slot].(*typedOutputSlot[T])
	return out.slot.get(ctx.gen)
}

// outputSlot type-erases a typedOutputSlot[T] so a crxState can hold a
// heterogeneous slice of output slots for a multi-output computed node.
type outputSlot interface {
	write(v any, gen generation)
}

type typedOutputSlot[T any] struct {
	slot versionedSlot[T]
}

func (s *typedOutputSlot[T]) write(v any, gen generation) {
	s.slot.write(v.(T), gen)
}

// crxState is the side-table record backing every computed node. compute
// returns one result per output, in declaration order; the node's
// evaluate closure (see node.evaluate) drives it during recompute.
type crxState struct {
	compute func(rc *ReadContext) []any
	outputs []outputSlot
}

// NewCRx allocates a computed node with a single output. The thunk runs
// eagerly once, immediately, so Get is valid before the first Recompute
// (spec.md §4.6's "First-time evaluation").
func NewCRx[T any](d *DAG, compute func(rc *ReadContext) T, opts ...NodeOption) CRx[T] {
	out := &typedOutputSlot[T]{}
	st := &crxState{
		compute: func(rc *ReadContext) []any {
			return []any{compute(rc)}
		},
		outputs: []outputSlot{out},
	}
	idx := d.allocateCRx(st, opts)
	out.slot = newVersionedSlot(zero[T](), d.gen)
	d.evalInitial(idx)
	return CRx[T]{dag: d, idx: idx, slot: 0}
}

// NewCRx2 allocates a computed node producing two independently
// addressable outputs from a single evaluation (spec.md §4.6's
// "Multi-output variants").
func NewCRx2[A, B any](d *DAG, compute func(rc *ReadContext) (A, B), opts ...NodeOption) (CRx[A], CRx[B]) {
	outA := &typedOutputSlot[A]{}
	outB := &typedOutputSlot[B]{}
	st := &crxState{
		compute: func(rc *ReadContext) []any {
			a, b := compute(rc)
			return []any{a, b}
		},
		outputs: []outputSlot{outA, outB},
	}
	idx := d.allocateCRx(st, opts)
	outA.slot = newVersionedSlot(zero[A](), d.gen)
	outB.slot = newVersionedSlot(zero[B](), d.gen)
	d.evalInitial(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}
}

// NewCRx3 is NewCRx2 extended to three outputs.
func NewCRx3[A, B, C any](d *DAG, compute func(rc *ReadContext) (A, B, C), opts ...NodeOption) (CRx[A], CRx[B], CRx[C]) {
	outA := &typedOutputSlot[A]{}
	outB := &typedOutputSlot[B]{}
	outC := &typedOutputSlot[C]{}
	st := &crxState{
		compute: func(rc *ReadContext) []any {
			a, b, c := compute(rc)
			return []any{a, b, c}
		},
		outputs: []outputSlot{outA, outB, outC},
	}
	idx := d.allocateCRx(st, opts)
	outA.slot = newVersionedSlot(zero[A](), d.gen)
	outB.slot = newVersionedSlot(zero[B](), d.gen)
	outC.slot = newVersionedSlot(zero[C](), d.gen)
	d.evalInitial(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1}, CRx[C]{dag: d, idx: idx, slot: 2}
}

// NewCRx4 is NewCRx2 extended to four outputs, the fixed arity ceiling
// spec.md §4.6 allows implementations to pick.
func NewCRx4[A, B, C, D any](d *DAG, compute func(rc *ReadContext) (A, B, C, D), opts ...NodeOption) (CRx[A], CRx[B], CRx[C], CRx[D]) {
	outA := &typedOutputSlot[A]{}
	outB := &typedOutputSlot[B]{}
	outC := &typedOutputSlot[C]{}
	outD := &typedOutputSlot[D]{}
	st := &crxState{
		compute: func(rc *ReadContext) []any {
			a, b, c, d := compute(rc)
			return []any{a, b, c, d}
		},
		outputs: []outputSlot{outA, outB, outC, outD},
	}
	idx := d.allocateCRx(st, opts)
	outA.slot = newVersionedSlot(zero[A](), d.gen)
	outB.slot = newVersionedSlot(zero[B](), d.gen)
	outC.slot = newVersionedSlot(zero[C](), d.gen)
	outD.slot = newVersionedSlot(zero[D](), d.gen)
	d.evalInitial(idx)
	return CRx[A]{dag: d, idx: idx, slot: 0}, CRx[B]{dag: d, idx: idx, slot: 1},
		CRx[C]{dag: d, idx: idx, slot: 2}, CRx[D]{dag: d, idx: idx, slot: 3}
}

func zero[T any]() T {
	var z T
	return z
}
