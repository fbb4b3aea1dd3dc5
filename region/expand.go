// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bodyseg/skeleton"
)

// Expand grows the region to a connected patch around the start node, lifts
// it to surface vertices and canonicalizes the start node. Without a bound
// mesh or skeleton it does nothing.
//
// Returns ErrNoStart or ErrStartOutOfRange, leaving the region untouched,
// when the start node is missing or not a node of the skeleton graph.
func (r *Region) Expand() error {
	g := r.graph()
	if g == nil {
		return nil
	}
	if !r.hasStart {
		return fmt.Errorf("%w: region %q", ErrNoStart, r.name)
	}
	if !g.Contains(r.start) {
		return fmt.Errorf("%w: region %q start %d, %d nodes", ErrStartOutOfRange, r.name, r.start, g.NodeCount())
	}

	seed, before := r.start, len(r.nodes)
	r.grow(g)
	r.ExpandVertices()
	r.ConfirmStart()

	r.log().Debug("region: expanded",
		"region", r.name,
		"seed", seed,
		"start", r.start,
		"nodesBefore", before,
		"nodes", len(r.nodes),
		"detached", len(r.detached),
		"vertices", len(r.vertices),
	)
	if r.tracer != nil {
		if err := r.tracer.TraceRegion(r); err != nil {
			r.log().Warn("region: trace failed", "region", r.name, "err", err)
		}
	}
	return nil
}

// graph returns the bound skeleton graph, or nil.
func (r *Region) graph() *skeleton.Graph {
	if r.mesh == nil {
		return nil
	}
	return r.mesh.Skeleton()
}

// grow runs the back-filling BFS from r.start. Scratch arrays are sized to
// the graph and dropped on return.
func (r *Region) grow(g *skeleton.Graph) {
	n := g.NodeCount()
	inRegion := make([]bool, n)
	visited := make([]bool, n)
	pre := make([]int, n)
	for i := range pre {
		pre[i] = -1
	}

	// the seed roots every back-filled path
	r.nodes[r.start] = struct{}{}
	for id := range r.nodes {
		if g.Contains(id) {
			inRegion[id] = true
		}
	}

	queue := make([]int, 0, n)
	queue = append(queue, r.start)
	visited[r.start] = true
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, nei := range g.Neighbors(cur) {
			if visited[nei] {
				continue
			}
			if !inRegion[nei] {
				pre[nei] = cur
			} else {
				// pre chains of non-region nodes always end at a region node
				for p := cur; !inRegion[p]; p = pre[p] {
					inRegion[p] = true
					r.nodes[p] = struct{}{}
				}
			}
			visited[nei] = true
			queue = append(queue, nei)
		}
	}

	var detached []int
	for id := range r.nodes {
		if !g.Contains(id) || !visited[id] {
			detached = append(detached, id)
		}
	}
	slices.Sort(detached)
	for _, id := range detached {
		delete(r.nodes, id)
	}
	r.detached = detached
	if len(detached) > 0 {
		r.log().Warn("region: pruned nodes unreachable from start",
			"region", r.name, "start", r.start, "nodes", detached)
	}
}

// ExpandVertices adds the correspondence vertices of every region node to the
// vertex set. It is idempotent and does nothing without a bound skeleton.
func (r *Region) ExpandVertices() {
	g := r.graph()
	if g == nil {
		return
	}
	for id := range r.nodes {
		for _, v := range g.CorrespondenceVertices(id) {
			r.vertices[v] = struct{}{}
		}
	}
}

// ConfirmStart replaces the start node with the region's canonical entry
// node and reports whether one was determined. A start with exactly one
// neighbor inside the region is already canonical. Otherwise the shallowest
// branch endpoint of a BFS through region members is chosen, first
// discovered on ties.
//
// On failure the start is left unchanged and a warning is logged.
func (r *Region) ConfirmStart() bool {
	g := r.graph()
	if g == nil || !r.hasStart || !g.Contains(r.start) {
		return false
	}

	members := 0
	for _, nei := range g.Neighbors(r.start) {
		if r.HasSkeletonNode(nei) {
			members++
		}
	}
	if members == 1 {
		return true
	}

	n := g.NodeCount()
	step := make([]int, n)
	visited := make([]bool, n)
	queue := make([]int, 0, len(r.nodes)+1)
	queue = append(queue, r.start)
	visited[r.start] = true

	best, bestStep := -1, 0
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		extended := false
		for _, nei := range g.Neighbors(cur) {
			if visited[nei] || !r.HasSkeletonNode(nei) {
				continue
			}
			extended = true
			step[nei] = step[cur] + 1
			visited[nei] = true
			queue = append(queue, nei)
		}
		if !extended && (best < 0 || step[cur] < bestStep) {
			best, bestStep = cur, step[cur]
		}
	}
	if best < 0 {
		r.log().Warn("region: no branch endpoint, start unchanged", "region", r.name, "start", r.start)
		return false
	}
	r.start = best
	return true
}
