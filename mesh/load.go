// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoadSTL reads a binary or ASCII STL file and welds coincident corners into
// shared vertices.
func LoadSTL(path string) (*Mesh, error) {
	fm, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: load %s: %w", path, err)
	}
	return fromFauxgl(fm)
}

// fromFauxgl converts a triangle soup into a welded Mesh. Corners are merged
// when their positions are bitwise equal, which is how STL exporters write
// shared vertices. Zero-area triangles that collapse to a repeated vertex are
// skipped.
func fromFauxgl(fm *fauxgl.Mesh) (*Mesh, error) {
	index := make(map[r3.Vec]int)
	var points []r3.Vec
	weld := func(v fauxgl.Vector) int {
		p := r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
		if i, ok := index[p]; ok {
			return i
		}
		index[p] = len(points)
		points = append(points, p)
		return len(points) - 1
	}

	faces := make([][3]int, 0, len(fm.Triangles))
	for _, t := range fm.Triangles {
		f := [3]int{weld(t.V1.Position), weld(t.V2.Position), weld(t.V3.Position)}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		faces = append(faces, f)
	}
	return New(points, faces)
}
