// Package skeleton provides the reduced medial graph of a body surface.
//
// What
//
//   - Graph is an undirected graph over dense integer node ids in [0, NodeCount()).
//   - Every node carries a 3D point and the list of surface vertices it
//     corresponds to (its "correspondence vertices").
//   - Neighbors are returned in edge-insertion order, so every traversal built on
//     top of a Graph is reproducible.
//   - Path, Star, Cycle and Grid build small fixture graphs with points laid out
//     on the X axis (or the XY plane for Grid).
//   - Bind assigns surface vertices to their nearest skeleton node using a
//     k-d tree over node points.
//
// Concurrency
//
//	A Graph is built once and then only read. Region growing over several
//	regions of the same body may share one Graph across goroutines; nothing in
//	this module mutates a Graph after Bind returns.
//
// Complexity (V = NodeCount, E = edges, P = surface vertices)
//
//   - AddEdge:   O(deg(u) + deg(v)) for duplicate detection
//   - Neighbors: O(1), returns the internal slice (read-only by contract)
//   - Bind:      O(V log V) build + O(P log V) expected queries
//
// Errors
//
//   - ErrNodeOutOfRange if an id lies outside [0, NodeCount()).
//   - ErrSelfLoop       if AddEdge is asked to connect a node to itself.
//   - ErrTooFewNodes    if a fixture constructor receives a size below its minimum.
//   - ErrEmptyGraph     if Bind is called on a graph without nodes.
package skeleton
