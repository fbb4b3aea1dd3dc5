// Command regiongrow grows one body region over the skeleton of a scanned body
// and reports the resulting node set, vertex count and entry node.
//
// Usage:
//
//	regiongrow -config body.txt -name arm_l -nodes 12,13 -seed 10
//
// The seed may be given as a mesh vertex instead (-vertex), in which case the
// skeleton node bound to that vertex is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bodyseg/cgfile"
	"github.com/katalvlaran/bodyseg/config"
	"github.com/katalvlaran/bodyseg/mesh"
	"github.com/katalvlaran/bodyseg/region"
)

func main() {
	var (
		cfgPath = flag.String("config", "config.txt", "configuration file (.yaml or legacy key/value)")
		name    = flag.String("name", "region", "region name, also the dump file prefix")
		nodes   = flag.String("nodes", "", "comma separated skeleton nodes of the initial region")
		seed    = flag.Int("seed", -1, "seed skeleton node")
		vertex  = flag.Int("vertex", -1, "seed mesh vertex, used when -seed is not set")
	)
	flag.Parse()

	if err := run(*cfgPath, *name, *nodes, *seed, *vertex); err != nil {
		fmt.Fprintln(os.Stderr, "regiongrow:", err)
		os.Exit(1)
	}
}

func run(cfgPath, name, nodeList string, seed, vertex int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	region.SetLogger(log)

	meshPath, err := cfg.MeshPath()
	if err != nil {
		return err
	}
	skelPath, err := cfg.SkeletonPath()
	if err != nil {
		return err
	}
	m, err := mesh.LoadSTL(meshPath)
	if err != nil {
		return err
	}
	g, err := cgfile.ReadFile(skelPath)
	if err != nil {
		return err
	}
	if err = m.AttachSkeleton(g); err != nil {
		return err
	}
	log.Info("loaded", "mesh", meshPath, "vertices", m.VertexCount(), "faces", m.FaceCount(),
		"skeleton", skelPath, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if seed < 0 && vertex >= 0 {
		n, ok := m.CorrespondingNode(vertex)
		if !ok {
			return fmt.Errorf("vertex %d has no skeleton node", vertex)
		}
		seed = n
	}
	if seed < 0 {
		return errors.New("no seed: set -seed or -vertex")
	}

	ids, err := parseNodes(nodeList)
	if err != nil {
		return err
	}

	var opts []region.Option
	if cfg.RegionDumpPath != "" {
		opts = append(opts, region.WithTracer(cgfile.Dumper{Dir: cfg.RegionDumpPath}))
	}
	r := region.New(name, m, opts...)
	for _, id := range ids {
		r.AddSkeletonNode(id)
	}
	r.SetStart(seed)
	if err = r.Expand(); err != nil {
		return err
	}

	start, _ := r.Start()
	log.Info("region grown", "name", r.Name(), "nodes", r.SkeletonNodes(),
		"vertices", r.VertexCount(), "start", start, "detached", r.Detached())
	return nil
}

// parseNodes splits a comma separated id list. An empty list is valid.
func parseNodes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad node %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
