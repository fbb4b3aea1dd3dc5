// SPDX-License-Identifier: MIT

package region

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/katalvlaran/bodyseg/levelset"
	"github.com/katalvlaran/bodyseg/skeleton"
)

// Sentinel errors for region growing.
var (
	// ErrNoStart is returned by Expand when no start node was set.
	ErrNoStart = errors.New("region: start node not set")

	// ErrStartOutOfRange is returned by Expand when the start node is not a
	// node of the bound skeleton graph.
	ErrStartOutOfRange = errors.New("region: start node out of range")
)

// Mesh is the surface a region is carved from: vertex positions and edges for
// resolving level circles, plus the skeleton graph regions grow over.
type Mesh interface {
	levelset.Surface
	// Skeleton returns the skeleton graph, or nil when none is attached.
	Skeleton() *skeleton.Graph
}

// Tracer receives a region after every successful Expand, typically to dump it
// for visual inspection. Errors are logged and otherwise ignored.
type Tracer interface {
	TraceRegion(r *Region) error
}

// Option configures a Region at construction.
type Option func(*Options)

// Options holds the tunables of a Region.
type Options struct {
	// Logger overrides the package logger for this region. Nil means Logger().
	Logger *slog.Logger

	// Tracer, if non-nil, is invoked at the end of Expand.
	Tracer Tracer

	// Color is the display tag of the region.
	Color color.RGBA
}

// DefaultOptions returns Options with the package logger, no tracer and an
// opaque white color.
func DefaultOptions() Options {
	return Options{
		Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WithLogger sets a region-specific logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer registers a tracer called after each Expand.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		o.Tracer = t
	}
}

// WithColor sets the display color tag.
func WithColor(c color.RGBA) Option {
	return func(o *Options) {
		o.Color = c
	}
}
