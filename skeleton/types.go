// SPDX-License-Identifier: MIT

package skeleton

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for skeleton construction and lookups.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("skeleton: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("skeleton: self-loop not allowed")

	// ErrTooFewNodes indicates a fixture size below the constructor minimum.
	ErrTooFewNodes = errors.New("skeleton: parameter too small")

	// ErrEmptyGraph indicates an operation that needs at least one node.
	ErrEmptyGraph = errors.New("skeleton: graph has no nodes")
)

// Node is a read-only snapshot of one skeleton node.
type Node struct {
	// ID is the dense node index.
	ID int
	// Point is the node position in mesh space.
	Point r3.Vec
	// Correspondence lists the surface vertices mapped to this node,
	// in the order they were attached.
	Correspondence []int
}

// Graph is an undirected skeleton graph with dense integer node ids.
// The zero value is an empty graph; use NewGraph to allocate nodes.
type Graph struct {
	points []r3.Vec
	adj    [][]int
	corr   [][]int
}
