// SPDX-License-Identifier: MIT

package skeleton

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bind attaches every surface vertex to its nearest skeleton node and returns
// the per-vertex owner table (owner[v] is the node vertex v was attached to).
// Vertices are attached in index order, so each node's correspondence list
// is ascending.
//
// Returns ErrEmptyGraph when g has no nodes.
//
// Complexity: O(V log V) to build the tree plus O(P log V) expected queries.
func Bind(g *Graph, vertices []r3.Vec) ([]int, error) {
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	pts := make(kdNodes, g.NodeCount())
	for i, p := range g.points {
		pts[i] = kdNode{p: p, id: i}
	}
	tree := kdtree.New(pts, false)

	owner := make([]int, len(vertices))
	for v, p := range vertices {
		c, _ := tree.Nearest(kdNode{p: p, id: -1})
		id := c.(kdNode).id
		if err := g.AddCorrespondence(id, v); err != nil {
			return nil, fmt.Errorf("skeleton: bind vertex %d: %w", v, err)
		}
		owner[v] = id
	}
	return owner, nil
}

// kdNode is a skeleton node point stored in the k-d tree.
type kdNode struct {
	p  r3.Vec
	id int
}

// Compare returns the signed distance of a from c along dimension d.
func (a kdNode) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	b := c.(kdNode)
	switch d {
	case 0:
		return a.p.X - b.p.X
	case 1:
		return a.p.Y - b.p.Y
	default:
		return a.p.Z - b.p.Z
	}
}

// Dims returns the number of spatial dimensions.
func (kdNode) Dims() int { return 3 }

// Distance returns the squared euclidean distance between a and c.
func (a kdNode) Distance(c kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.p, c.(kdNode).p))
}

// kdNodes implements kdtree.Interface over skeleton node points.
type kdNodes []kdNode

func (p kdNodes) Index(i int) kdtree.Comparable { return p[i] }
func (p kdNodes) Len() int                      { return len(p) }
func (p kdNodes) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot partitions the list around the median along dimension d.
func (p kdNodes) Pivot(d kdtree.Dim) int {
	pl := kdPlane{dim: d, nodes: p}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

// kdPlane sorts kdNodes along a single dimension.
type kdPlane struct {
	dim   kdtree.Dim
	nodes kdNodes
}

func (p kdPlane) Less(i, j int) bool {
	return p.nodes[i].Compare(p.nodes[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) { p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i] }
func (p kdPlane) Len() int      { return len(p.nodes) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.nodes = p.nodes[start:end]
	return p
}
