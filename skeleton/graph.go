// SPDX-License-Identifier: MIT

package skeleton

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewGraph allocates a graph with one node per point, in point order.
// The points slice is copied.
func NewGraph(points []r3.Vec) *Graph {
	n := len(points)
	return &Graph{
		points: slices.Clone(points),
		adj:    make([][]int, n),
		corr:   make([][]int, n),
	}
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.points)
}

// Contains reports whether id is a valid node id.
func (g *Graph) Contains(id int) bool {
	return id >= 0 && id < len(g.points)
}

// AddEdge connects u and v. Adding an existing edge is a no-op.
// Returns ErrNodeOutOfRange or ErrSelfLoop for invalid endpoints.
//
// Complexity: O(deg(u)).
func (g *Graph) AddEdge(u, v int) error {
	if !g.Contains(u) || !g.Contains(v) {
		return fmt.Errorf("%w: edge (%d,%d) with %d nodes", ErrNodeOutOfRange, u, v, len(g.points))
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, u)
	}
	if slices.Contains(g.adj[u], v) {
		return nil
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// AddCorrespondence maps surface vertex to node.
func (g *Graph) AddCorrespondence(node, vertex int) error {
	if !g.Contains(node) {
		return fmt.Errorf("%w: node %d", ErrNodeOutOfRange, node)
	}
	g.corr[node] = append(g.corr[node], vertex)
	return nil
}

// Neighbors returns the neighbors of id in edge-insertion order,
// or nil when id is out of range. The returned slice must not be modified.
func (g *Graph) Neighbors(id int) []int {
	if !g.Contains(id) {
		return nil
	}
	return g.adj[id]
}

// CorrespondenceVertices returns the surface vertices mapped to id,
// or nil when id is out of range. The returned slice must not be modified.
func (g *Graph) CorrespondenceVertices(id int) []int {
	if !g.Contains(id) {
		return nil
	}
	return g.corr[id]
}

// NodeAt returns a snapshot of node id. The second result is false
// when id is out of range.
func (g *Graph) NodeAt(id int) (Node, bool) {
	if !g.Contains(id) {
		return Node{}, false
	}
	return Node{
		ID:             id,
		Point:          g.points[id],
		Correspondence: slices.Clone(g.corr[id]),
	}, true
}

// PointAt returns the position of node id, or the zero vector when out of range.
func (g *Graph) PointAt(id int) r3.Vec {
	if !g.Contains(id) {
		return r3.Vec{}
	}
	return g.points[id]
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	deg := 0
	for _, nbrs := range g.adj {
		deg += len(nbrs)
	}
	return deg / 2
}

// Edges returns every undirected edge once as [lo, hi], ordered by lo then
// by insertion order of hi.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}
