package reactor

// EqualFunc compares two values of type T for equality. It is the
// opt-in change-detection policy mentioned in spec.md §4.5 and §9:
// without one, any staged write on a Var counts as a change; with one,
// Set/Modify only stage a write when the new value actually differs.
//
// Adapted from the teacher library's EqualFunc[T] (coregx/signals).
type EqualFunc[T any] func(a, b T) bool

// VarOptions configures a Var created with NewVarWithOptions.
type VarOptions[T any] struct {
	// Equal, if set, is consulted by Set and Modify before staging a
	// pending write. A nil Equal keeps the spec's strict default:
	// every Set/Modify stages a write regardless of the old value.
	Equal EqualFunc[T]
}

// NodeOption configures debug metadata shared by Var, CRx, and Obs
// construction. It has no effect on recompute semantics; it only feeds
// debug.go's Dump output.
type NodeOption func(*node)

// WithName attaches a debug label to a node. Names are purely cosmetic:
// two nodes may share a name, and an unnamed node falls back to its
// NodeIndex in Dump output.
func WithName(name string) NodeOption {
	return func(n *node) {
		n.name = name
	}
}

// DAGOptions configures a DAG created with NewDAGWithOptions.
type DAGOptions struct {
	// Capacity pre-sizes the node arena. Zero means "let it grow".
	Capacity int

	// NamePrefix is prepended to every node's WithName label in Dump
	// output. It has no effect on a node with no WithName label, since
	// there is nothing to prefix. Useful for telling apart several DAGs'
	// dumps when they're interleaved in the same log.
	NamePrefix string

	// OnWarn receives non-fatal diagnostic messages the engine would
	// otherwise only drop. It never receives thunk panics: those
	// propagate to the caller of Recompute/Now per spec.md §7.
	OnWarn func(msg string)
}

func (o DAGOptions) warn(msg string) {
	if o.OnWarn != nil {
		o.OnWarn(msg)
	}
}
