// Package bodyseg splits a scanned human body into anatomical regions by
// growing connected patches over the body's skeleton graph.
//
// What is in here?
//
//	skeleton/       dense int-indexed skeleton graph, fixtures, vertex binding (kd-tree)
//	mesh/           welded triangle surface, STL loading, vertex→skeleton node lookup
//	levelset/       level circles: ordered surface edge crossings at a given height
//	region/         growth, vertex lift, entry node canonicalization, cross-sections
//	cgfile/         .cg point/graph text files and the region dump tracer
//	config/         process configuration (YAML or legacy key/value)
//	cmd/regiongrow  command line driver
//
// Quick ASCII example (skeleton path, region {2}, seed 0):
//
//	0───1───2───3───4        →   region {0,1,2}, start 0
//	●       ■
//
// Growth inserts the BFS-shortest path from the seed to every region node,
// lifts the nodes to their surface vertices and moves the start to the
// nearest branch endpoint of the region.
//
//	go get github.com/katalvlaran/bodyseg/region
package bodyseg
