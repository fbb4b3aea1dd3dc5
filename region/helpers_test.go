package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/region"
	"github.com/katalvlaran/bodyseg/skeleton"
)

// testMesh is a minimal region.Mesh with explicit points and edges.
type testMesh struct {
	g      *skeleton.Graph
	points []r3.Vec
	edges  [][2]int
}

func (m *testMesh) PointAt(v int) r3.Vec {
	if v < 0 || v >= len(m.points) {
		return r3.Vec{}
	}
	return m.points[v]
}

func (m *testMesh) Edge(e int) ([2]int, bool) {
	if e < 0 || e >= len(m.edges) {
		return [2]int{}, false
	}
	return m.edges[e], true
}

func (m *testMesh) Skeleton() *skeleton.Graph { return m.g }

// meshOver wraps g; every node i gets correspondence vertices 10*i and 10*i+1.
func meshOver(t *testing.T, g *skeleton.Graph) *testMesh {
	t.Helper()
	for i := 0; i < g.NodeCount(); i++ {
		require.NoError(t, g.AddCorrespondence(i, 10*i))
		require.NoError(t, g.AddCorrespondence(i, 10*i+1))
	}
	return &testMesh{g: g}
}

// buildTree returns the 9-node tree
//
//	8 - 0 - 1 - 2 - 3
//	        |
//	        4 - 5
//	        |
//	        6 - 7
func buildTree(t *testing.T) *skeleton.Graph {
	t.Helper()
	g := skeleton.NewGraph(make([]r3.Vec, 9))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 4}, {4, 5}, {4, 6}, {6, 7}, {0, 8}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// newRegion builds a bound region seeded with nodes and start.
func newRegion(m region.Mesh, start int, nodes ...int) *region.Region {
	r := region.New("test", m)
	for _, n := range nodes {
		r.AddSkeletonNode(n)
	}
	r.SetStart(start)
	return r
}

// connected reports whether nodes induce a connected subgraph of g.
func connected(g *skeleton.Graph, nodes []int) bool {
	if len(nodes) == 0 {
		return true
	}
	in := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		in[n] = true
	}
	seen := map[int]bool{nodes[0]: true}
	queue := []int{nodes[0]}
	for qi := 0; qi < len(queue); qi++ {
		for _, nei := range g.Neighbors(queue[qi]) {
			if in[nei] && !seen[nei] {
				seen[nei] = true
				queue = append(queue, nei)
			}
		}
	}
	return len(seen) == len(nodes)
}
