package reactor

import (
	"fmt"
	"sort"

	"github.com/m1gwings/treedrawer/tree"
)

// Dump renders the transitive dependency set of the node at idx as a
// human-readable ASCII tree, rooted at idx and walking downstream-to-
// upstream edges recursively (spec.md §9: "downstream-to-upstream
// adjacency is stored; upstream-to-downstream is not"). It performs no
// I/O itself — the caller decides whether to print the result — matching
// spec.md §1's "the engine does not own I/O."
//
// This is purely a diagnostic aid; it is never consulted by Recompute.
func (d *DAG) Dump(idx NodeIndex) string {
	root := tree.NewTree(tree.NodeString(d.nodeLabel(idx)))
	d.fillDebugChildren(idx, root, map[NodeIndex]bool{idx: true})
	return root.String()
}

// fillDebugChildren attaches idx's dependencies as children of t, in
// NodeIndex order for deterministic output, recursing into each fresh
// child. A dependency already on the path to the root (which should
// never happen under invariant 1, but debug tooling shouldn't assume the
// invariant holds for a graph under construction) is rendered as a leaf
// tagged "(cycle?)" rather than walked again.
func (d *DAG) fillDebugChildren(idx NodeIndex, t *tree.Tree, visited map[NodeIndex]bool) {
	rec := d.store.get(idx)
	deps := make([]NodeIndex, 0, len(rec.deps))
	for dep := range rec.deps {
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })

	for _, dep := range deps {
		label := d.nodeLabel(dep)
		if visited[dep] {
			t.AddChild(tree.NodeString(label + " (cycle?)"))
			continue
		}
		visited[dep] = true
		child := t.AddChild(tree.NodeString(label))
		d.fillDebugChildren(dep, child, visited)
		delete(visited, dep)
	}
}

// nodeLabel returns a node's debug name if one was given via WithName,
// falling back to its kind and NodeIndex.
func (d *DAG) nodeLabel(idx NodeIndex) string {
	rec := d.store.get(idx)
	kindName := "crx"
	switch rec.kind {
	case kindVar:
		kindName = "var"
	case kindObs:
		kindName = "obs"
	}
	if rec.name != "" {
		return fmt.Sprintf("%s[%d:%s%s]", kindName, idx, d.opts.NamePrefix, rec.name)
	}
	return fmt.Sprintf("%s[%d]", kindName, idx)
}
