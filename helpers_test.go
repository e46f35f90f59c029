package levelmesh

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

// polygonPath returns a closed path through pts.
func polygonPath(pts ...Point) *Path {
	p := NewPath()
	p.Polygon(pts...)
	return p
}

func filled(c RGBA, pts ...Point) *Shape {
	return &Shape{Path: polygonPath(pts...), Fill: Solid(c)}
}

func stroked(c RGBA, pts ...Point) *Shape {
	return &Shape{Path: polygonPath(pts...), Stroke: &Stroke{Color: c, Width: 1}}
}

// passthrough is a fake tessellator that fan-triangulates the anchors of
// every contour after applying the entry transform. It is exact for convex
// polygons.
var passthrough = TessellatorFunc(func(entries []ShapeEntry, _ TessellationOptions) ([]TriangleGeometry, error) {
	var out []TriangleGeometry
	for _, e := range entries {
		for _, c := range e.Shape.Path.Contours() {
			anchors := c.Anchors()
			if len(anchors) < 3 {
				continue
			}
			var g TriangleGeometry
			for _, a := range anchors {
				g.Vertices = append(g.Vertices, e.Transform.TransformPoint(a))
			}
			for i := 1; i+1 < len(anchors); i++ {
				g.Indices = append(g.Indices, 0, i, i+1)
			}
			out = append(out, g)
		}
	}
	return out, nil
})

func vecNear(a, b f32.Vec3, eps float32) bool {
	for k := 0; k < 3; k++ {
		if float32(math.Abs(float64(a[k]-b[k]))) > eps {
			return false
		}
	}
	return true
}

// requireValid fails the test when m breaks a buffer invariant.
func requireValid(t *testing.T, m *MeshBuffer) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("len(Normals) = %d, want %d", len(m.Normals), len(m.Positions))
	}
}
