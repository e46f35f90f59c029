package levelmesh

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestBuildFloorMeshRoundTrip(t *testing.T) {
	g := TriangleGeometry{
		Vertices: []Point{{1.5, 2}, {-3, 4.25}, {7, -8}},
		Indices:  []int{0, 1, 2},
	}
	m := BuildFloorMesh([]TriangleGeometry{g}, Point{}, 1, Rotation{})
	requireValid(t, m)
	for i, v := range g.Vertices {
		want := f32.Vec3{float32(v.X), 0, float32(-v.Y)}
		if m.Positions[i] != want {
			t.Errorf("vertex %d = %v, want %v", i, m.Positions[i], want)
		}
	}
}

func TestBuildFloorMeshCentersAndScales(t *testing.T) {
	g := TriangleGeometry{
		Vertices: []Point{{10, 10}, {12, 10}, {10, 14}},
		Indices:  []int{0, 1, 2},
	}
	m := BuildFloorMesh([]TriangleGeometry{g}, Pt(10, 10), 0.5, Rotation{})
	want := []f32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, -2}}
	for i := range want {
		if m.Positions[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, m.Positions[i], want[i])
		}
	}
}

func TestBuildFloorMeshWindingRule(t *testing.T) {
	verts := []Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}, {2, 6}}
	tests := []struct {
		name    string
		indices []int
	}{
		{"counter-clockwise input", []int{0, 3, 2, 0, 2, 1, 3, 4, 2}},
		{"clockwise input", []int{0, 1, 2, 0, 2, 3, 3, 2, 4}},
		{"mixed input", []int{0, 1, 2, 0, 3, 2, 2, 4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := TriangleGeometry{Vertices: verts, Indices: tt.indices}
			m := BuildFloorMesh([]TriangleGeometry{g}, Pt(1, 1), 2, Rotation{})
			requireValid(t, m)
			if m.TriangleCount() != 3 {
				t.Fatalf("TriangleCount() = %d, want 3", m.TriangleCount())
			}
			for tri := 0; tri < m.TriangleCount(); tri++ {
				a := verts[m.Indices[3*tri]]
				b := verts[m.Indices[3*tri+1]]
				c := verts[m.Indices[3*tri+2]]
				if !clockwise(a, b, c) {
					t.Errorf("triangle %d (%v %v %v) is not clockwise", tri, a, b, c)
				}
			}
			for i, n := range m.Normals {
				if !vecNear(n, f32.Vec3{0, 1, 0}, 1e-6) {
					t.Errorf("normal %d = %v, want +Y", i, n)
				}
			}
		})
	}
}

func TestBuildFloorMeshEmitsRuleOrder(t *testing.T) {
	verts := []Point{{0, 0}, {0, 1}, {1, 0}}
	tests := []struct {
		name    string
		indices []int
		want    []uint32
	}{
		// (c.y-a.y)*(b.x-a.x) = 0 is not > (b.y-a.y)*(c.x-a.x) = 1.
		{"not clockwise is reversed", []int{0, 1, 2}, []uint32{0, 2, 1}},
		// Swapping b and c gives 1 > 0.
		{"clockwise is rotated", []int{0, 2, 1}, []uint32{1, 0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildFloorMesh([]TriangleGeometry{{Vertices: verts, Indices: tt.indices}}, Point{}, 1, Rotation{})
			for i := range tt.want {
				if m.Indices[i] != tt.want[i] {
					t.Fatalf("Indices = %v, want %v", m.Indices, tt.want)
				}
			}
		})
	}
}

func TestBuildFloorMeshOffsetsChunks(t *testing.T) {
	tri := TriangleGeometry{Vertices: []Point{{0, 0}, {1, 0}, {0, 1}}, Indices: []int{0, 1, 2}}
	m := BuildFloorMesh([]TriangleGeometry{tri, tri}, Point{}, 1, Rotation{})
	requireValid(t, m)
	if m.VertexCount() != 6 || m.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d triangles, want 6, 2", m.VertexCount(), m.TriangleCount())
	}
	for _, idx := range m.Indices[3:] {
		if idx < 3 {
			t.Errorf("second chunk index %d points into the first chunk", idx)
		}
	}
}

func TestBuildFloorMeshSkipsBadChunks(t *testing.T) {
	good := TriangleGeometry{Vertices: []Point{{0, 0}, {1, 0}, {0, 1}}, Indices: []int{0, 1, 2}}
	geoms := []TriangleGeometry{
		{},
		{Vertices: good.Vertices},
		{Indices: []int{0, 1, 2}},
		{Vertices: good.Vertices, Indices: []int{0, 1}},
		{Vertices: good.Vertices, Indices: []int{0, 1, 3}},
		{Vertices: good.Vertices, Indices: []int{0, -1, 2}},
		good,
	}
	m := BuildFloorMesh(geoms, Point{}, 1, Rotation{})
	requireValid(t, m)
	if m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Errorf("got %d vertices, %d triangles, want 3, 1", m.VertexCount(), m.TriangleCount())
	}
}

func TestBuildFloorMeshEmpty(t *testing.T) {
	m := BuildFloorMesh(nil, Point{}, 1, Rotation{})
	requireValid(t, m)
	if !m.IsEmpty() || m.VertexCount() != 0 {
		t.Errorf("empty input built %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if m.Bounds != (Bounds3{}) {
		t.Errorf("Bounds = %+v, want zero", m.Bounds)
	}
}

func TestBuildFloorMeshNegativeScaleMirrors(t *testing.T) {
	g := TriangleGeometry{Vertices: []Point{{1, 1}, {2, 1}, {1, 2}}, Indices: []int{0, 1, 2}}
	m := BuildFloorMesh([]TriangleGeometry{g}, Point{}, -1, Rotation{})
	requireValid(t, m)
	if want := (f32.Vec3{-1, 0, 1}); m.Positions[0] != want {
		t.Errorf("vertex 0 = %v, want %v", m.Positions[0], want)
	}
}

func TestBuildFloorMeshBounds(t *testing.T) {
	g := TriangleGeometry{Vertices: []Point{{0, 0}, {4, 0}, {0, 2}}, Indices: []int{0, 1, 2}}
	m := BuildFloorMesh([]TriangleGeometry{g}, Point{}, 1, Rotation{})
	want := Bounds3{Min: f32.Vec3{0, 0, -2}, Max: f32.Vec3{4, 0, 0}}
	if m.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", m.Bounds, want)
	}
}
