// SPDX-License-Identifier: MIT

// Package mesh holds the welded triangle surface of a body together with the
// skeleton graph extracted from it.
//
// A Mesh is immutable geometry: vertex positions, triangle faces and the unique
// undirected edges derived from them. AttachSkeleton binds a skeleton.Graph and
// records, per surface vertex, the skeleton node it corresponds to.
package mesh

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/skeleton"
)

// Sentinel errors for mesh construction.
var (
	// ErrFaceIndex indicates a face referencing a vertex outside the point list.
	ErrFaceIndex = errors.New("mesh: face vertex index out of range")
	// ErrDegenerateFace indicates a face that repeats a vertex.
	ErrDegenerateFace = errors.New("mesh: degenerate face")
	// ErrNoSkeleton indicates a nil skeleton passed to AttachSkeleton.
	ErrNoSkeleton = errors.New("mesh: skeleton is nil")
)

// Mesh is a welded triangle surface.
type Mesh struct {
	points []r3.Vec
	faces  [][3]int
	edges  [][2]int

	skel       *skeleton.Graph
	vertexNode []int
}

// New builds a Mesh from vertex positions and triangle faces.
// Edges are collected in face order, each stored once as [lo, hi].
// Returns ErrFaceIndex or ErrDegenerateFace for malformed faces.
//
// Complexity: O(P + F).
func New(points []r3.Vec, faces [][3]int) (*Mesh, error) {
	m := &Mesh{
		points: slices.Clone(points),
		faces:  make([][3]int, 0, len(faces)),
	}
	seen := make(map[[2]int]struct{}, len(faces)*3/2)
	for fi, f := range faces {
		for _, v := range f {
			if v < 0 || v >= len(points) {
				return nil, fmt.Errorf("%w: face %d vertex %d", ErrFaceIndex, fi, v)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%w: face %d %v", ErrDegenerateFace, fi, f)
		}
		m.faces = append(m.faces, f)
		for k := 0; k < 3; k++ {
			e := edgeKey(f[k], f[(k+1)%3])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			m.edges = append(m.edges, e)
		}
	}
	return m, nil
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// VertexCount returns the number of surface vertices.
func (m *Mesh) VertexCount() int { return len(m.points) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// EdgeCount returns the number of unique undirected edges.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// PointAt returns the position of vertex v, or the zero vector when out of range.
func (m *Mesh) PointAt(v int) r3.Vec {
	if v < 0 || v >= len(m.points) {
		return r3.Vec{}
	}
	return m.points[v]
}

// Points returns a copy of all vertex positions.
func (m *Mesh) Points() []r3.Vec { return slices.Clone(m.points) }

// Face returns triangle i.
func (m *Mesh) Face(i int) ([3]int, bool) {
	if i < 0 || i >= len(m.faces) {
		return [3]int{}, false
	}
	return m.faces[i], true
}

// Edge returns the endpoints of edge e as [lo, hi].
func (m *Mesh) Edge(e int) ([2]int, bool) {
	if e < 0 || e >= len(m.edges) {
		return [2]int{}, false
	}
	return m.edges[e], true
}

// EdgeIndex returns the index of the edge joining a and b.
func (m *Mesh) EdgeIndex(a, b int) (int, bool) {
	i := slices.Index(m.edges, edgeKey(a, b))
	return i, i >= 0
}

// Centroid returns the mean position of the given vertices. Out-of-range ids
// count as the origin; an empty list yields the origin.
func (m *Mesh) Centroid(vers []int) r3.Vec {
	var sum r3.Vec
	if len(vers) == 0 {
		return sum
	}
	for _, v := range vers {
		sum = r3.Add(sum, m.PointAt(v))
	}
	return r3.Scale(1/float64(len(vers)), sum)
}

// AttachSkeleton binds g to the mesh, attaching every vertex to its nearest
// skeleton node.
func (m *Mesh) AttachSkeleton(g *skeleton.Graph) error {
	if g == nil {
		return ErrNoSkeleton
	}
	owner, err := skeleton.Bind(g, m.points)
	if err != nil {
		return fmt.Errorf("mesh: attach skeleton: %w", err)
	}
	m.skel = g
	m.vertexNode = owner
	return nil
}

// Skeleton returns the attached skeleton graph, or nil.
func (m *Mesh) Skeleton() *skeleton.Graph { return m.skel }

// CorrespondingNode returns the skeleton node vertex v was bound to.
func (m *Mesh) CorrespondingNode(v int) (int, bool) {
	if v < 0 || v >= len(m.vertexNode) {
		return 0, false
	}
	return m.vertexNode[v], true
}
