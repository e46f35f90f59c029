package levelmesh

import (
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// IndexFormat specifies the width of index buffer elements.
type IndexFormat uint32

const (
	// IndexFormatUint16 uses 16-bit unsigned integers.
	IndexFormatUint16 IndexFormat = 0

	// IndexFormatUint32 uses 32-bit unsigned integers.
	IndexFormatUint32 IndexFormat = 1
)

// String returns the format name.
func (f IndexFormat) String() string {
	if f == IndexFormatUint32 {
		return "uint32"
	}
	return "uint16"
}

// max16BitVertices is the largest vertex count addressable by uint16 indices.
const max16BitVertices = 65535

// Interleaved vertex layout: float32x3 position followed by float32x3 normal.
const (
	positionOffset = 0
	normalOffset   = 12
	vertexStride   = 24
)

// Bounds3 is an axis-aligned bounding box.
type Bounds3 struct {
	Min, Max f32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds3) Center() f32.Vec3 {
	return f32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the extent of the box along each axis.
func (b Bounds3) Size() f32.Vec3 {
	return f32.Vec3{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// MeshBuffer is a renderer- and collider-ready triangle list.
//
// Positions and Normals have one entry per vertex. Indices holds one triple
// per triangle; every index addresses a vertex.
type MeshBuffer struct {
	Positions []f32.Vec3
	Normals   []f32.Vec3
	Indices   []uint32
	Bounds    Bounds3
}

// VertexCount returns the number of vertices.
func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no triangles.
func (m *MeshBuffer) IsEmpty() bool {
	return len(m.Indices) == 0
}

// IndexFormat returns the narrowest index width able to address every vertex.
func (m *MeshBuffer) IndexFormat() IndexFormat {
	if len(m.Positions) > max16BitVertices {
		return IndexFormatUint32
	}
	return IndexFormatUint16
}

// Indices16 returns a 16-bit copy of the index buffer. It returns false when
// the mesh needs 32-bit indices.
func (m *MeshBuffer) Indices16() ([]uint16, bool) {
	if m.IndexFormat() != IndexFormatUint16 {
		return nil, false
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out, true
}

// Validate checks the buffer invariants: the index count is a multiple of
// three and every index addresses a vertex.
func (m *MeshBuffer) Validate() error {
	if len(m.Indices)%3 != 0 {
		return &TriangleListError{IndexCount: len(m.Indices)}
	}
	n := len(m.Positions)
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return &IndexRangeError{Position: i, Index: idx, VertexCount: n}
		}
	}
	return nil
}

// RecalculateNormals recomputes vertex normals by accumulating the
// area-weighted face normal (b-a)x(c-a) of every triangle that uses the
// vertex. Vertices not used by any triangle get a zero normal, and
// triangles with out-of-range indices are ignored.
func (m *MeshBuffer) RecalculateNormals() {
	n := uint32(len(m.Positions))
	acc := make([][3]float64, n)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		ia, ib, ic := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		if ia >= n || ib >= n || ic >= n {
			continue // reported by Validate
		}
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]

		ux, uy, uz := float64(b[0]-a[0]), float64(b[1]-a[1]), float64(b[2]-a[2])
		vx, vy, vz := float64(c[0]-a[0]), float64(c[1]-a[1]), float64(c[2]-a[2])
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx

		for _, i := range [3]uint32{ia, ib, ic} {
			acc[i][0] += nx
			acc[i][1] += ny
			acc[i][2] += nz
		}
	}

	normals := make([]f32.Vec3, len(acc))
	for i, v := range acc {
		l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if l == 0 {
			continue
		}
		normals[i] = f32.Vec3{float32(v[0] / l), float32(v[1] / l), float32(v[2] / l)}
	}
	m.Normals = normals
}

// RecalculateBounds recomputes the bounding box from the vertex positions.
// An empty mesh gets the zero box.
func (m *MeshBuffer) RecalculateBounds() {
	if len(m.Positions) == 0 {
		m.Bounds = Bounds3{}
		return
	}
	lo, hi := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	m.Bounds = Bounds3{Min: lo, Max: hi}
}

// finish recomputes the derived attributes after a builder has filled in
// positions and indices.
func (m *MeshBuffer) finish() {
	m.RecalculateNormals()
	m.RecalculateBounds()
}

// Interleave packs positions and normals into one float32 slice laid out
// as described by VertexLayout.
func (m *MeshBuffer) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		var n f32.Vec3
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// VertexLayout describes the Interleave output for a render pipeline:
// position at location 0, normal at location 1.
func (m *MeshBuffer) VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: positionOffset, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x3, Offset: normalOffset, ShaderLocation: 1},   // normal
		},
	}
}

// PrimitiveState describes how the index buffer is assembled: a triangle
// list, drawn without culling because walls are double-sided by geometry.
func (m *MeshBuffer) PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
