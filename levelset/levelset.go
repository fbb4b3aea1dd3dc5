// SPDX-License-Identifier: MIT

// Package levelset models the cross-section contours ("level circles")
// produced by the upstream level-set extraction stage.
//
// A Set is the owning context: it references the surface the contours were
// cut from and keeps its circles in extraction order. Each Circle is an
// ordered ring of level nodes at one height; each Node records the surface
// vertex the contour starts from and the mesh edge it crosses, from which the
// paired "to" vertex is derived.
package levelset

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is the mesh context level nodes are resolved against.
type Surface interface {
	// PointAt returns the position of vertex v.
	PointAt(v int) r3.Vec
	// Edge returns the endpoints of edge e.
	Edge(e int) ([2]int, bool)
}

// Node is one crossing of a contour with a mesh edge.
type Node struct {
	// StartVertex is the vertex on the near side of the crossing.
	StartVertex int
	// Edge is the crossed mesh edge; one of its endpoints is StartVertex.
	Edge int
}

// ToVertex returns the endpoint of n.Edge opposite StartVertex. When the edge
// is unknown to s, or does not touch StartVertex, the crossing is treated as
// lying on the vertex itself and StartVertex is returned.
func (n Node) ToVertex(s Surface) int {
	e, ok := s.Edge(n.Edge)
	switch {
	case !ok:
		return n.StartVertex
	case e[0] == n.StartVertex:
		return e[1]
	case e[1] == n.StartVertex:
		return e[0]
	}
	return n.StartVertex
}

// Set groups the circles extracted from one surface.
type Set struct {
	surface Surface
	circles []*Circle
}

// NewSet returns an empty Set over s.
func NewSet(s Surface) *Set {
	return &Set{surface: s}
}

// Surface returns the surface the set was extracted from.
func (s *Set) Surface() Surface { return s.surface }

// AddCircle appends a circle at height h with the given level nodes.
// The nodes slice is copied.
func (s *Set) AddCircle(h float64, nodes []Node) *Circle {
	c := &Circle{
		nodes:  append([]Node(nil), nodes...),
		height: h,
		parent: s,
	}
	s.circles = append(s.circles, c)
	return c
}

// Circles returns the circles in extraction order.
func (s *Set) Circles() []*Circle { return s.circles }

// Circle is one cross-sectional contour.
type Circle struct {
	nodes  []Node
	height float64
	parent *Set
}

// Nodes returns the level nodes in ring order. The slice must not be modified.
func (c *Circle) Nodes() []Node { return c.nodes }

// Height returns the scalar height of the cross-section.
func (c *Circle) Height() float64 { return c.height }

// Parent returns the owning Set, or nil for a detached circle.
func (c *Circle) Parent() *Set { return c.parent }

// Surface returns the parent's surface, or nil for a detached circle.
func (c *Circle) Surface() Surface {
	if c.parent == nil {
		return nil
	}
	return c.parent.surface
}

// Vertices returns, for every node in ring order, its start vertex followed by
// its to vertex.
func (c *Circle) Vertices(s Surface) []int {
	out := make([]int, 0, 2*len(c.nodes))
	for _, n := range c.nodes {
		out = append(out, n.StartVertex, n.ToVertex(s))
	}
	return out
}

// MeanPoint returns the mean position of Vertices(s).
func (c *Circle) MeanPoint(s Surface) r3.Vec {
	vers := c.Vertices(s)
	var sum r3.Vec
	if len(vers) == 0 {
		return sum
	}
	for _, v := range vers {
		sum = r3.Add(sum, s.PointAt(v))
	}
	return r3.Scale(1/float64(len(vers)), sum)
}
