// SPDX-License-Identifier: MIT
// Package: bodyseg/skeleton
//
// builder.go - fixture constructors Path, Star, Cycle and Grid.
//
// Contract:
//   - Node ids are assigned in ascending order; points are spaced one unit apart.
//   - Edges are emitted in stable increasing order, so Neighbors is deterministic.
//   - Sizes below the documented minimum return ErrTooFewNodes.
//   - No correspondences are attached; use Bind or AddCorrespondence.
//
// Determinism:
//   - Same arguments always produce identical graphs, including neighbor order.

package skeleton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath  = "Path"
	methodStar  = "Star"
	methodCycle = "Cycle"
	methodGrid  = "Grid"

	minPathNodes  = 1
	minStarLeaves = 1
	minCycleNodes = 3
	minGridDim    = 1
)

// axisPoints returns n points at x = 0..n-1 on the X axis.
func axisPoints(n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Vec{X: float64(i)}
	}
	return pts
}

// mustLink adds an edge whose endpoints the caller has already validated.
func (g *Graph) mustLink(method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}
	return nil
}

// Path builds the path 0-1-...-(n-1).
func Path(n int) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}
	g := NewGraph(axisPoints(n))
	for i := 1; i < n; i++ {
		if err := g.mustLink(methodPath, i-1, i); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Star builds a hub node 0 connected to leaves 1..leaves.
// Leaves are placed on a unit circle around the hub.
func Star(leaves int) (*Graph, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewNodes)
	}
	pts := make([]r3.Vec, leaves+1)
	for i := 1; i <= leaves; i++ {
		// spread leaves evenly; the exact layout only matters for Bind
		a := 2 * math.Pi * float64(i-1) / float64(leaves)
		pts[i] = r3.Vec{X: math.Cos(a), Y: math.Sin(a)}
	}
	g := NewGraph(pts)
	for i := 1; i <= leaves; i++ {
		if err := g.mustLink(methodStar, 0, i); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Cycle builds the ring 0-1-...-(n-1)-0.
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}
	g := NewGraph(axisPoints(n))
	for i := 0; i < n; i++ {
		if err := g.mustLink(methodCycle, i, (i+1)%n); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Grid builds a rows×cols 4-neighborhood lattice with row-major ids
// (id = r*cols + c). For each cell the right edge is emitted before the bottom one.
func Grid(rows, cols int) (*Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
	}
	pts := make([]r3.Vec, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, r3.Vec{X: float64(c), Y: float64(r)})
		}
	}
	g := NewGraph(pts)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				if err := g.mustLink(methodGrid, id, id+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := g.mustLink(methodGrid, id, id+cols); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
