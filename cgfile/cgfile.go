// SPDX-License-Identifier: MIT

// Package cgfile reads and writes the ".cg" text format used for skeleton
// graphs and debug point dumps.
//
// Format:
//
//	# D:3 NV:<vertices> NE:<edges>
//	v <x> <y> <z>
//	e <i> <j>
//
// Vertex references in "e" lines are 1-based. Lines starting with '#' and
// blank lines are ignored when reading.
package cgfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/skeleton"
)

// ErrSyntax indicates a malformed line.
var ErrSyntax = errors.New("cgfile: syntax error")

// ReadFile reads a skeleton graph from the named file.
func ReadFile(path string) (*skeleton.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGraph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadGraph parses a skeleton graph. Edges may appear before or after the
// vertices they reference; they are validated once the whole input is read.
func ReadGraph(r io.Reader) (*skeleton.Graph, error) {
	var (
		points []r3.Vec
		edges  [][2]int
		lines  []int
	)
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseVec(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, ln, err)
			}
			points = append(points, p)
		case "e":
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: edge needs 2 indices", ErrSyntax, ln)
			}
			a, errA := strconv.Atoi(fields[1])
			b, errB := strconv.Atoi(fields[2])
			if err := errors.Join(errA, errB); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, ln, err)
			}
			edges = append(edges, [2]int{a - 1, b - 1})
			lines = append(lines, ln)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown record %q", ErrSyntax, ln, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	g := skeleton.NewGraph(points)
	for i, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, lines[i], err)
		}
	}
	return g, nil
}

func parseVec(f []string) (r3.Vec, error) {
	if len(f) != 3 {
		return r3.Vec{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(f))
	}
	var c [3]float64
	for i, s := range f {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r3.Vec{}, err
		}
		c[i] = x
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// WritePoints writes pts as an edgeless point list.
func WritePoints(w io.Writer, pts []r3.Vec) error {
	return write(w, pts, nil)
}

// WriteGraph writes every node and edge of g.
func WriteGraph(w io.Writer, g *skeleton.Graph) error {
	pts := make([]r3.Vec, g.NodeCount())
	for i := range pts {
		pts[i] = g.PointAt(i)
	}
	return write(w, pts, g.Edges())
}

func write(w io.Writer, pts []r3.Vec, edges [][2]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# D:3 NV:%d NE:%d\n", len(pts), len(edges))
	for _, p := range pts {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1)
	}
	return bw.Flush()
}

func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
