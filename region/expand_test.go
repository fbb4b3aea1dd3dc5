package region_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/region"
	"github.com/katalvlaran/bodyseg/skeleton"
)

func TestExpand_PathBackfillsShortestPath(t *testing.T) {
	g, err := skeleton.Path(5)
	require.NoError(t, err)
	r := newRegion(meshOver(t, g), 0, 2)

	require.NoError(t, r.Expand())
	assert.Equal(t, []int{0, 1, 2}, r.SkeletonNodes())
	start, ok := r.Start()
	require.True(t, ok)
	assert.Equal(t, 0, start, "node 1 is the only region neighbor of 0")
	assert.Equal(t, []int{0, 1, 10, 11, 20, 21}, r.Vertices())
	assert.Empty(t, r.Detached())
}

func TestExpand_StarPicksFirstLeaf(t *testing.T) {
	g, err := skeleton.Star(3)
	require.NoError(t, err)
	r := newRegion(meshOver(t, g), 0, 1, 2, 3)

	require.NoError(t, r.Expand())
	assert.Equal(t, []int{0, 1, 2, 3}, r.SkeletonNodes())
	start, _ := r.Start()
	assert.Equal(t, 1, start, "leaves tie at step 1; first discovered wins")
}

func TestExpand_Tree(t *testing.T) {
	tests := []struct {
		name      string
		seed      int
		nodes     []int
		wantNodes []int
		wantStart int
	}{
		{"two branches", 1, []int{3, 7}, []int{1, 2, 3, 4, 6, 7}, 3},
		{"three branches", 4, []int{3, 7, 8}, []int{0, 1, 2, 3, 4, 6, 7, 8}, 7},
		{"seed inside", 2, []int{2}, []int{2}, 2},
		{"seed is leaf", 3, []int{0}, []int{0, 1, 2, 3}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := buildTree(t)
			r := newRegion(meshOver(t, g), tc.seed, tc.nodes...)
			require.NoError(t, r.Expand())
			assert.Equal(t, tc.wantNodes, r.SkeletonNodes())
			start, _ := r.Start()
			assert.Equal(t, tc.wantStart, start)
		})
	}
}

func TestExpand_GridAndCycle(t *testing.T) {
	//  0  1  2  3
	//  4  5  6  7
	//  8  9 10 11
	grid, err := skeleton.Grid(3, 4)
	require.NoError(t, err)
	r := newRegion(meshOver(t, grid), 5, 3, 8)
	require.NoError(t, r.Expand())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 8}, r.SkeletonNodes())
	start, _ := r.Start()
	assert.Equal(t, 8, start)

	ring, err := skeleton.Cycle(6)
	require.NoError(t, err)
	r = newRegion(meshOver(t, ring), 0, 3)
	require.NoError(t, r.Expand())
	assert.Equal(t, []int{0, 1, 2, 3}, r.SkeletonNodes(), "ties resolve along the first neighbor")
}

func TestExpand_ConnectedAndContainsReachableSeeds(t *testing.T) {
	cases := []struct {
		seed  int
		nodes []int
	}{
		{0, []int{24}},
		{12, []int{0, 4, 20, 24}},
		{7, []int{7, 8, 9}},
		{3, []int{15, 16, 21, 2}},
		{24, nil},
	}
	for _, tc := range cases {
		grid, err := skeleton.Grid(5, 5)
		require.NoError(t, err)
		r := newRegion(meshOver(t, grid), tc.seed, tc.nodes...)
		require.NoError(t, r.Expand())
		got := r.SkeletonNodes()
		assert.True(t, connected(grid, got), "seed %d nodes %v: %v not connected", tc.seed, tc.nodes, got)
		assert.True(t, r.HasSkeletonNode(tc.seed), "seed %d missing", tc.seed)
		for _, n := range tc.nodes {
			assert.True(t, r.HasSkeletonNode(n), "seed %d: initial node %d dropped", tc.seed, n)
		}
		start, _ := r.Start()
		assert.True(t, r.HasSkeletonNode(start), "canonical start %d outside region", start)
	}
}

func TestExpand_IdempotentOnTrees(t *testing.T) {
	g := buildTree(t)
	r := newRegion(meshOver(t, g), 4, 3, 7, 8)
	require.NoError(t, r.Expand())
	nodes, verts := r.SkeletonNodes(), r.Vertices()
	start, _ := r.Start()

	require.NoError(t, r.Expand())
	assert.Equal(t, nodes, r.SkeletonNodes())
	assert.Equal(t, verts, r.Vertices())
	again, _ := r.Start()
	assert.Equal(t, start, again)
}

func TestExpand_PrunesUnreachableNodes(t *testing.T) {
	// components {0,1,2} and {3,4}
	g := skeleton.NewGraph(make([]r3.Vec, 5))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	r := region.New("arm", meshOver(t, g), region.WithLogger(logger))
	r.AddSkeletonNode(2)
	r.AddSkeletonNode(4)
	r.AddSkeletonNode(42) // not a graph node at all
	r.SetStart(0)

	require.NoError(t, r.Expand())
	assert.Equal(t, []int{0, 1, 2}, r.SkeletonNodes())
	assert.Equal(t, []int{4, 42}, r.Detached())
	assert.NotContains(t, r.Vertices(), 40, "pruned nodes are not lifted")
	assert.Contains(t, buf.String(), "pruned nodes unreachable from start")
	assert.Contains(t, buf.String(), "region=arm")
}

func TestExpand_Unbound(t *testing.T) {
	r := region.New("loose", nil)
	r.AddSkeletonNode(3)
	r.SetStart(3)
	require.NoError(t, r.Expand())
	assert.Equal(t, []int{3}, r.SkeletonNodes())
	assert.Zero(t, r.VertexCount())

	// bound mesh without a skeleton behaves the same
	r.SetMesh(&testMesh{})
	require.NoError(t, r.Expand())
	assert.Equal(t, []int{3}, r.SkeletonNodes())
	assert.False(t, r.ConfirmStart())
}

func TestExpand_StartErrors(t *testing.T) {
	g, err := skeleton.Path(3)
	require.NoError(t, err)
	m := meshOver(t, g)

	r := region.New("nostart", m)
	r.AddSkeletonNode(2)
	assert.ErrorIs(t, r.Expand(), region.ErrNoStart)
	assert.Equal(t, []int{2}, r.SkeletonNodes())

	r.SetStart(7)
	assert.ErrorIs(t, r.Expand(), region.ErrStartOutOfRange)
	assert.Equal(t, []int{2}, r.SkeletonNodes())
	assert.Zero(t, r.VertexCount())
}

func TestExpandVertices_Completeness(t *testing.T) {
	g := buildTree(t)
	r := newRegion(meshOver(t, g), 1, 1, 2, 4)
	r.AddVertex(999)

	r.ExpandVertices()
	for _, n := range r.SkeletonNodes() {
		for _, v := range g.CorrespondenceVertices(n) {
			assert.True(t, r.HasVertex(v), "node %d vertex %d", n, v)
		}
	}
	assert.True(t, r.HasVertex(999), "lift never removes vertices")
	count := r.VertexCount()
	r.ExpandVertices()
	assert.Equal(t, count, r.VertexCount())
}

func TestConfirmStart_SingleNeighborShortCircuit(t *testing.T) {
	g, err := skeleton.Path(7)
	require.NoError(t, err)
	r := newRegion(meshOver(t, g), 5, 2, 3, 4, 5)
	require.True(t, r.ConfirmStart())
	start, _ := r.Start()
	assert.Equal(t, 5, start)
}

func TestConfirmStart_DependsOnlyOnSetAndSeedPosition(t *testing.T) {
	g, err := skeleton.Path(7)
	require.NoError(t, err)
	m := meshOver(t, g)
	all := []int{6, 5, 4, 3, 2, 1, 0}

	for _, tc := range []struct{ seed, want int }{
		{2, 0}, // 0 at step 2 beats 6 at step 4
		{3, 0}, // 0 and 6 tie at step 3; 2 precedes 4 in Neighbors(3)
		{4, 6},
		{0, 0},
	} {
		a := newRegion(m, tc.seed, all...)
		b := newRegion(m, tc.seed, 0, 1, 2, 3, 4, 5, 6)
		require.True(t, a.ConfirmStart())
		require.True(t, b.ConfirmStart())
		sa, _ := a.Start()
		sb, _ := b.Start()
		assert.Equal(t, tc.want, sa, "seed %d", tc.seed)
		assert.Equal(t, sa, sb, "insertion order must not matter")
	}
}

func TestConfirmStart_SingleNodeRegion(t *testing.T) {
	g, err := skeleton.Star(2)
	require.NoError(t, err)
	r := newRegion(meshOver(t, g), 0, 0)
	require.True(t, r.ConfirmStart())
	start, _ := r.Start()
	assert.Equal(t, 0, start)
}

func TestConfirmStart_NoStart(t *testing.T) {
	g, err := skeleton.Path(2)
	require.NoError(t, err)
	r := region.New("r", meshOver(t, g))
	assert.False(t, r.ConfirmStart())
}

type recordingTracer struct {
	calls []string
	err   error
}

func (rt *recordingTracer) TraceRegion(r *region.Region) error {
	rt.calls = append(rt.calls, r.Name())
	return rt.err
}

func TestExpand_Tracer(t *testing.T) {
	g, err := skeleton.Path(3)
	require.NoError(t, err)

	rt := &recordingTracer{err: assert.AnError}
	var buf bytes.Buffer
	r := region.New("leg", meshOver(t, g),
		region.WithTracer(rt),
		region.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	r.AddSkeletonNode(2)
	r.SetStart(0)

	require.NoError(t, r.Expand(), "tracer failures are not fatal")
	assert.Equal(t, []string{"leg"}, rt.calls)
	assert.Contains(t, buf.String(), "trace failed")

	// failed Expand does not trace
	r2 := region.New("none", meshOver(t, g), region.WithTracer(rt))
	assert.Error(t, r2.Expand())
	assert.Len(t, rt.calls, 1)
}
