// Package tess is the built-in levelmesh Tessellator.
//
// Every filled shape is flattened into polygons, the polygons are sorted
// into outlines and holes under the shape's FillRule, and each outline with
// its holes is triangulated by constrained Delaunay triangulation
// (github.com/ByteArena/poly2tri-go). Each outline becomes one
// levelmesh.TriangleGeometry.
//
// poly2tri rejects holes that touch or cross their outline. Such a hole is
// left out with a warning and the outline is filled without it. An outline
// that cannot be triangulated even without holes is skipped; when no
// outline of a color survives, Tessellate returns the first
// TriangulationError and the color produces no floor.
package tess

import (
	"fmt"
	"log/slog"

	"github.com/ByteArena/poly2tri-go"

	"github.com/appen-isen/levelmesh"
	"github.com/appen-isen/levelmesh/internal/path"
)

// Tessellator implements levelmesh.Tessellator. It holds no state and is
// safe for concurrent use.
type Tessellator struct{}

// New returns a Tessellator.
func New() *Tessellator {
	return &Tessellator{}
}

var _ levelmesh.Tessellator = (*Tessellator)(nil)

// TriangulationError reports an outline the triangulator rejected,
// typically a self-intersecting contour.
type TriangulationError struct {
	Shape  int // index of the entry in the Tessellate input
	Reason any
}

func (e *TriangulationError) Error() string {
	return fmt.Sprintf("tess: triangulation of shape %d failed: %v", e.Shape, e.Reason)
}

// Tessellate triangulates every entry in its own scene transform.
//
// Shapes that cannot be triangulated are logged and left out; the error is
// reported only when no shape produced any triangles.
func (t *Tessellator) Tessellate(entries []levelmesh.ShapeEntry, opts levelmesh.TessellationOptions) ([]levelmesh.TriangleGeometry, error) {
	f := flattenerFor(opts)

	var (
		out      []levelmesh.TriangleGeometry
		firstErr error
	)
	for i, e := range entries {
		if e.Shape == nil || e.Shape.Path == nil {
			continue
		}
		rings := flattenPath(e.Shape.Path.Transform(e.Transform), f)
		for _, poly := range nest(rings, e.Shape.FillRule) {
			g, err := triangulateOutline(i, poly)
			if err != nil {
				err = &TriangulationError{Shape: i, Reason: err}
				levelmesh.Logger().Warn("tess: skipping outline", slog.Any("error", err))
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			if g.TriangleCount() > 0 {
				out = append(out, g)
			}
		}
	}

	if len(out) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// flattenerFor maps tessellation options onto the curve flattener.
func flattenerFor(opts levelmesh.TessellationOptions) path.Flattener {
	return path.Flattener{
		Tolerance: opts.MaxCordDeviation,
		MaxAngle:  opts.MaxTanAngleDeviation,
		MaxStep:   opts.StepDistance,
		MinStep:   opts.SamplingStepSize,
	}
}

// triangulateOutline triangulates poly, leaving out the holes poly2tri
// rejects.
func triangulateOutline(shape int, poly polygon) (levelmesh.TriangleGeometry, error) {
	g, err := triangulate(poly.outer, poly.holes)
	if err == nil || len(poly.holes) == 0 {
		return g, err
	}
	if _, err := triangulate(poly.outer, nil); err != nil {
		return levelmesh.TriangleGeometry{}, err
	}

	// Add the holes back one at a time and keep those that triangulate.
	var kept []ring
	for h, hole := range poly.holes {
		try := append(kept[:len(kept):len(kept)], hole)
		if _, err := triangulate(poly.outer, try); err != nil {
			levelmesh.Logger().Warn("tess: dropping hole",
				slog.Int("shape", shape),
				slog.Int("hole", h),
				slog.Any("error", err))
			continue
		}
		kept = try
	}
	return triangulate(poly.outer, kept)
}

// triangulate runs poly2tri on one outline and its holes. poly2tri reports
// bad input (duplicate points, crossing edges) by panicking.
func triangulate(outer ring, holes []ring) (g levelmesh.TriangleGeometry, err error) {
	defer func() {
		if r := recover(); r != nil {
			g, err = levelmesh.TriangleGeometry{}, fmt.Errorf("%v", r)
		}
	}()

	index := make(map[*poly2tri.Point]int)
	toP2T := func(r ring) []*poly2tri.Point {
		pts := make([]*poly2tri.Point, len(r))
		for i, p := range r {
			pp := poly2tri.NewPoint(p.X, p.Y)
			index[pp] = len(g.Vertices)
			g.Vertices = append(g.Vertices, levelmesh.Pt(p.X, p.Y))
			pts[i] = pp
		}
		return pts
	}

	swctx := poly2tri.NewSweepContext(toP2T(outer), false)
	for _, h := range holes {
		swctx.AddHole(toP2T(h))
	}
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		var tri [3]int
		for k := 0; k < 3; k++ {
			idx, ok := index[tr.Points[k]]
			if !ok {
				return levelmesh.TriangleGeometry{}, fmt.Errorf("triangulator introduced a vertex")
			}
			tri[k] = idx
		}
		g.Indices = append(g.Indices, tri[0], tri[1], tri[2])
	}
	return g, nil
}
