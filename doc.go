// Package reactor provides a signal-based change-propagation engine: a
// centrally stored directed acyclic graph of values in which mutations to
// input nodes (Vars) trigger deterministic, lazy recomputation of
// dependent computed nodes (CRxs) and side-effect observers.
//
// Unlike a push-based signals library, reactor never notifies on Set.
// Writes are staged (Set/Modify) and only become observable on the next
// explicit Recompute, which walks the node arena once, in allocation
// order, and re-evaluates exactly the nodes whose dependencies actually
// changed. There is no topological sort and no downstream adjacency
// list: a node's dependencies are always allocated before it, so a single
// forward scan suffices.
//
// # Core Types
//
// DAG owns all node storage and coordinates mutation and recomputation.
//
// Var[T] is a writable input node.
//
// CRx[T] is a read-only handle to one output of a computed node; a
// computed node may produce more than one output (see NewCRx2..4).
//
// DVar[T, U] is a projection into a parent Var, not a graph node of its
// own — it delegates every read and write to its parent.
//
// # Example Usage
//
//	d := reactor.NewDAG()
//	wc := d.Write()
//
//	count := reactor.NewVar(d, 5)
//	doubled := reactor.NewCRx(d, func(rc *reactor.ReadContext) int {
//	    return count.Get(rc) * 2
//	})
//
//	fmt.Println(doubled.Get(d.Now())) // 10
//
//	count.Set(wc, 10)
//	fmt.Println(doubled.Get(d.Now())) // 20 — Now() commits the pending
//	                                   // write and recomputes first.
//
// # Read/Write discipline
//
// Get always takes a *ReadContext, obtained from DAG.Now (which commits
// and recomputes first), DAG.Stale (a cheap read of the last-committed
// values, never recomputing), or transparently supplied to a compute or
// observer thunk during evaluation — in which case every Get made
// through it is also recorded as a dependency of the node being
// evaluated. Set and Modify take a *WriteContext from DAG.Write; staging
// a write never mutates observable state by itself.
//
// # Concurrency
//
// The engine is single-threaded cooperative: there is no internal
// synchronization and no safe concurrent API. Recompute requires
// exclusive access to the DAG (no outstanding ReadContext may be live
// during a pass); Set requires only shared access.
//
// # Panics
//
// A panicking compute or observer thunk propagates to the caller of
// Recompute/Now. There is no recovery: the DAG should be treated as
// poisoned afterward, since the panicking node's output may be partially
// updated. This is a deliberate departure from push-based signal
// libraries that log-and-continue on subscriber panics — here, a thunk
// panic is a programming error in the graph itself, not a subscriber
// misbehaving independently of it.
package reactor
