// SPDX-License-Identifier: MIT

package cgfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/bodyseg/region"
)

// Dumper is a region.Tracer writing a region to Dir for visual inspection:
//
//	<name>.cg        skeleton node points of the region
//	<name>_front.cg  the canonical start node
//	<name><i>.cg     center of the i-th cross-section
type Dumper struct {
	Dir string
}

var _ region.Tracer = Dumper{}

// TraceRegion writes the dump files of r, creating Dir if needed.
// A region without a bound skeleton is skipped.
func (d Dumper) TraceRegion(r *region.Region) error {
	if r.Mesh() == nil || r.Mesh().Skeleton() == nil {
		return nil
	}
	g := r.Mesh().Skeleton()
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("cgfile: dump %q: %w", r.Name(), err)
	}

	nodes := r.SkeletonNodes()
	pts := make([]r3.Vec, len(nodes))
	for i, n := range nodes {
		pts[i] = g.PointAt(n)
	}
	if err := d.writeFile(r.Name()+".cg", pts); err != nil {
		return err
	}
	if start, ok := r.Start(); ok {
		if err := d.writeFile(r.Name()+"_front.cg", []r3.Vec{g.PointAt(start)}); err != nil {
			return err
		}
	}
	for i, sec := range r.RegionSkeleton().Nodes() {
		if err := d.writeFile(fmt.Sprintf("%s%d.cg", r.Name(), i), []r3.Vec{sec.Center()}); err != nil {
			return err
		}
	}
	return nil
}

func (d Dumper) writeFile(name string, pts []r3.Vec) (err error) {
	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return fmt.Errorf("cgfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePoints(f, pts)
}
