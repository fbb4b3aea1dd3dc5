// SPDX-License-Identifier: MIT

package region

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/levelset"
)

// SkeletonNode is one cross-section of a region: the surface vertices of the
// contour, their center and the contour height. It is immutable.
type SkeletonNode struct {
	vertices []int
	center   r3.Vec
	height   float64
}

// NewSkeletonNode returns a SkeletonNode; vers is copied.
func NewSkeletonNode(vers []int, center r3.Vec, height float64) SkeletonNode {
	return SkeletonNode{vertices: slices.Clone(vers), center: center, height: height}
}

// Vertices returns a copy of the cross-section vertex ids in contour order.
func (n SkeletonNode) Vertices() []int { return slices.Clone(n.vertices) }

// Center returns the mean point of the cross-section.
func (n SkeletonNode) Center() r3.Vec { return n.center }

// Height returns the cross-section height.
func (n SkeletonNode) Height() float64 { return n.height }

// Skeleton is the ordered sequence of cross-sections of a region.
// Front insertion is O(n); regions rarely hold more than a few hundred sections.
type Skeleton struct {
	nodes []SkeletonNode
}

// PushFront inserts a cross-section at the front.
func (s *Skeleton) PushFront(vers []int, center r3.Vec, height float64) {
	s.nodes = slices.Insert(s.nodes, 0, NewSkeletonNode(vers, center, height))
}

// PushBack appends a cross-section.
func (s *Skeleton) PushBack(vers []int, center r3.Vec, height float64) {
	s.nodes = append(s.nodes, NewSkeletonNode(vers, center, height))
}

// PushFrontCircle inserts the cross-section of c at the front, resolving it
// against the circle's own surface. Reports false for a detached circle.
func (s *Skeleton) PushFrontCircle(c *levelset.Circle) bool {
	vers, center, ok := circleSection(c, nil)
	if ok {
		s.PushFront(vers, center, c.Height())
	}
	return ok
}

// PushBackCircle appends the cross-section of c, resolving it against the
// circle's own surface. Reports false for a detached circle.
func (s *Skeleton) PushBackCircle(c *levelset.Circle) bool {
	vers, center, ok := circleSection(c, nil)
	if ok {
		s.PushBack(vers, center, c.Height())
	}
	return ok
}

// circleSection resolves the vertex list and mean point of c against its own
// surface, falling back to fallback when c is detached.
func circleSection(c *levelset.Circle, fallback levelset.Surface) ([]int, r3.Vec, bool) {
	if c == nil {
		return nil, r3.Vec{}, false
	}
	surf := c.Surface()
	if surf == nil {
		surf = fallback
	}
	if surf == nil {
		return nil, r3.Vec{}, false
	}
	return c.Vertices(surf), c.MeanPoint(surf), true
}

// Start returns the first cross-section; false when empty.
func (s *Skeleton) Start() (SkeletonNode, bool) {
	return s.Node(0)
}

// Node returns cross-section i; false when i is out of range.
func (s *Skeleton) Node(i int) (SkeletonNode, bool) {
	if i < 0 || i >= len(s.nodes) {
		return SkeletonNode{}, false
	}
	return s.nodes[i], true
}

// Count returns the number of cross-sections.
func (s *Skeleton) Count() int { return len(s.nodes) }

// Nodes returns a copy of the cross-sections in order.
func (s *Skeleton) Nodes() []SkeletonNode { return slices.Clone(s.nodes) }
