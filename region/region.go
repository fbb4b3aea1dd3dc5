// SPDX-License-Identifier: MIT

package region

import (
	"image/color"
	"log/slog"
	"maps"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/levelset"
)

// Region is one anatomical segment: a patch of skeleton nodes and the surface
// vertices they map to.
type Region struct {
	name string
	mesh Mesh

	nodes    map[int]struct{}
	vertices map[int]struct{}

	start    int
	hasStart bool
	detached []int

	circles  []*levelset.Circle
	skeleton *Skeleton

	color  color.RGBA
	logger *slog.Logger
	tracer Tracer
}

// New returns an empty region named name over m. m may be nil and bound
// later with SetMesh.
func New(name string, m Mesh, opts ...Option) *Region {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Region{
		name:     name,
		mesh:     m,
		nodes:    make(map[int]struct{}),
		vertices: make(map[int]struct{}),
		skeleton: &Skeleton{},
		color:    o.Color,
		logger:   o.Logger,
		tracer:   o.Tracer,
	}
}

// log returns the region logger, falling back to the package logger.
func (r *Region) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// Name returns the region name.
func (r *Region) Name() string { return r.name }

// SetName renames the region.
func (r *Region) SetName(name string) { r.name = name }

// Mesh returns the bound mesh, or nil.
func (r *Region) Mesh() Mesh { return r.mesh }

// SetMesh binds the region to m.
func (r *Region) SetMesh(m Mesh) { r.mesh = m }

// AddVertex inserts a surface vertex and reports whether it was new.
func (r *Region) AddVertex(v int) bool {
	if _, ok := r.vertices[v]; ok {
		return false
	}
	r.vertices[v] = struct{}{}
	return true
}

// RemoveVertex deletes a surface vertex if present.
func (r *Region) RemoveVertex(v int) {
	delete(r.vertices, v)
}

// HasVertex reports whether v belongs to the region.
func (r *Region) HasVertex(v int) bool {
	_, ok := r.vertices[v]
	return ok
}

// AddSkeletonNode inserts a skeleton node and reports whether it was new.
func (r *Region) AddSkeletonNode(n int) bool {
	if _, ok := r.nodes[n]; ok {
		return false
	}
	r.nodes[n] = struct{}{}
	return true
}

// HasSkeletonNode reports whether n belongs to the region.
func (r *Region) HasSkeletonNode(n int) bool {
	_, ok := r.nodes[n]
	return ok
}

// SetStart sets the seed node used by the next Expand.
func (r *Region) SetStart(n int) {
	r.start = n
	r.hasStart = true
}

// Start returns the start node; false when none was set.
func (r *Region) Start() (int, bool) {
	return r.start, r.hasStart
}

// HasStart reports whether a start node was set.
func (r *Region) HasStart() bool { return r.hasStart }

// SkeletonNodes returns the region's skeleton nodes in ascending order.
func (r *Region) SkeletonNodes() []int {
	return slices.Sorted(maps.Keys(r.nodes))
}

// SkeletonNodeCount returns the number of skeleton nodes.
func (r *Region) SkeletonNodeCount() int { return len(r.nodes) }

// Vertices returns the region's surface vertices in ascending order.
func (r *Region) Vertices() []int {
	return slices.Sorted(maps.Keys(r.vertices))
}

// VertexCount returns the number of surface vertices.
func (r *Region) VertexCount() int { return len(r.vertices) }

// Detached returns, in ascending order, the nodes the last Expand pruned
// because they were unreachable from the start node.
func (r *Region) Detached() []int { return slices.Clone(r.detached) }

// AddCircle ingests a level circle: it records the circle, adds the start and
// to vertex of each level node and appends the circle's cross-section to the
// region skeleton. The circle is resolved against its own surface, or the
// region's mesh when the circle is detached. Returns the circle count; a nil
// circle changes nothing.
func (r *Region) AddCircle(c *levelset.Circle) int {
	if c == nil {
		return len(r.circles)
	}
	var fallback levelset.Surface
	if r.mesh != nil {
		fallback = r.mesh
	}
	vers, center, ok := circleSection(c, fallback)
	if ok {
		for _, v := range vers {
			r.AddVertex(v)
		}
		r.skeleton.PushBack(vers, center, c.Height())
	} else {
		r.log().Debug("region: circle without surface", "region", r.name, "height", c.Height())
	}
	r.circles = append(r.circles, c)
	return len(r.circles)
}

// AddVertices adds vers to the region and appends a cross-section with the
// given center and height, for boundaries not represented as level circles.
func (r *Region) AddVertices(vers []int, center r3.Vec, height float64) {
	for _, v := range vers {
		r.AddVertex(v)
	}
	r.skeleton.PushBack(vers, center, height)
}

// Circles returns the ingested circles in order.
func (r *Region) Circles() []*levelset.Circle { return slices.Clone(r.circles) }

// CircleCount returns the number of ingested circles.
func (r *Region) CircleCount() int { return len(r.circles) }

// RegionSkeleton returns the region's cross-section sequence.
func (r *Region) RegionSkeleton() *Skeleton { return r.skeleton }

// Color returns the display color tag.
func (r *Region) Color() color.RGBA { return r.color }

// SetColor sets the display color tag.
func (r *Region) SetColor(c color.RGBA) { r.color = c }
