package reactor

// NodeIndex identifies a node in a DAG's arena. Indices are stable for the
// lifetime of the DAG: nodes are never removed or reordered, so a NodeIndex
// captured once remains valid until the DAG itself goes out of scope.
type NodeIndex int

// kind tags which variant a node record holds.
type kind uint8

const (
	kindVar kind = iota
	kindCRx
	kindObs
)

// node is the internal tagged-union record every NodeStore slot holds.
// Var records never populate deps or evaluate; CRx/Obs records never
// populate commitPending (they have nothing of their own to commit).
type node struct {
	kind kind
	name string

	// deps holds the upstream nodes read during this node's most recent
	// evaluation (invariant 3 in spec.md §3). Empty and unused for Var.
	deps map[NodeIndex]struct{}

	// everRan is true once a CRx/Obs has been evaluated at least once.
	everRan bool

	// commitPending moves a Var's staged write into its committed slot.
	// Returns true if the Var had a pending write (i.e. is "changed this
	// round" per spec.md §4.5). nil for CRx/Obs.
	commitPending func(gen generation) bool

	// evaluate re-runs a CRx/Obs thunk. It returns true if the node's
	// output changed as a result (always true for CRx under the default
	// policy, see DAG.allocateCRx; always false for Obs, which has no output
	// to compare). nil for Var.
	evaluate func(rc *ReadContext, gen generation) (changed bool)
}

// NodeStore is an append-only arena of graph nodes. It hands out stable
// NodeIndex identifiers and supports only allocation and lookup: nodes are
// never deleted or reordered (spec.md §4.1).
type NodeStore struct {
	nodes []node
}

// newNodeStore returns an empty arena, optionally pre-sized via capacity.
func newNodeStore(capacity int) *NodeStore {
	return &NodeStore{nodes: make([]node, 0, capacity)}
}

// allocate appends n and returns its new, permanent index.
func (s *NodeStore) allocate(n node) NodeIndex {
	s.nodes = append(s.nodes, n)
	return NodeIndex(len(s.nodes) - 1)
}

// get returns the node record at i. Indices produced by allocate are never
// dangling, so this is a total function over valid indices.
func (s *NodeStore) get(i NodeIndex) *node {
	return &s.nodes[i]
}

// len reports the number of nodes ever allocated.
func (s *NodeStore) len() int {
	return len(s.nodes)
}
