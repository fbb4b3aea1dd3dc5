// Package region grows named anatomical regions over a body's skeleton graph
// and lifts them to surface vertices.
//
// What
//
//   - A Region holds a set of skeleton nodes, a set of surface vertices, a
//     canonical start node, the level circles it was seeded from and an
//     ordered cross-section Skeleton.
//   - Expand grows the node set to a connected patch around the start node,
//     lifts it to surface vertices and canonicalizes the start node. The three
//     steps form one call; no intermediate state is observable.
//
// Growth
//
//	Expand runs one breadth-first search from the start node over the whole
//	skeleton graph. Whenever the search discovers a node already in the region,
//	the BFS-shortest path back from the discovering node is back-filled into the
//	region. Region nodes the search never reaches are pruned and reported by
//	Detached, so the connectivity guarantee holds for every node that remains.
//
// Canonical start
//
//	If the start node has exactly one neighbor inside the region it is kept.
//	Otherwise a second BFS, restricted to region members, records every branch
//	endpoint (a node that extends to no unvisited region member) together with
//	its depth. The shallowest endpoint wins; equal depths keep discovery order.
//	With neighbor order fixed by the graph, the result depends only on the
//	node set, the graph and the seed's position in it.
//
// Errors and logging
//
//   - Operations on a region without a bound mesh are silent no-ops.
//   - Expand returns ErrNoStart or ErrStartOutOfRange and leaves state unchanged
//     when the start node is missing or invalid.
//   - A failed canonicalization is logged at Warn and keeps the previous start.
//   - Logging uses log/slog; it is silent until SetLogger or WithLogger is used.
//
// Concurrency
//
//	A Region is not safe for concurrent mutation. Distinct Regions may expand
//	concurrently over the same skeleton graph, which they only read.
//
// Complexity (V = skeleton nodes, E = skeleton edges, C = correspondence vertices)
//
//   - Expand:         O(V + E + C) time, O(V) scratch memory per call
//   - ConfirmStart:   O(V + E)
//   - ExpandVertices: O(C)
package region
