package levelmesh

import "log/slog"

// BuildFloorMesh converts tessellated 2D triangles into one flat mesh on
// the XZ plane.
//
// Each vertex (x, y) becomes (x-cx, 0, -(y-cy)), is multiplied by scale and
// then rotated. Triangles are re-ordered so that all of them share one
// winding, measured on the input 2D positions: a clockwise triangle
// (i1, i2, i3) is emitted as (i3, i1, i2), any other as (i1, i3, i2). The
// resulting face normals point up (+Y) before rotation.
//
// Chunks without vertices, with partial triangles or with indices outside
// the chunk are skipped. No chunks yields an empty, valid MeshBuffer.
func BuildFloorMesh(geoms []TriangleGeometry, center Point, scale float64, rot Rotation) *MeshBuffer {
	pl := newPlacement(center, scale, rot)
	m := &MeshBuffer{}

	for i, g := range geoms {
		if !g.usable() {
			Logger().Debug("levelmesh: skipping floor chunk",
				slog.Int("chunk", i),
				slog.Int("vertices", len(g.Vertices)),
				slog.Int("indices", len(g.Indices)))
			continue
		}

		base := uint32(len(m.Positions))
		for _, v := range g.Vertices {
			m.Positions = append(m.Positions, pl.world(v, 0))
		}

		for t := 0; t < len(g.Indices); t += 3 {
			i1, i2, i3 := g.Indices[t], g.Indices[t+1], g.Indices[t+2]
			a, b, c := base+uint32(i1), base+uint32(i2), base+uint32(i3)
			if clockwise(g.Vertices[i1], g.Vertices[i2], g.Vertices[i3]) {
				m.Indices = append(m.Indices, c, a, b)
			} else {
				m.Indices = append(m.Indices, a, c, b)
			}
		}
	}

	m.finish()
	return m
}

// clockwise reports whether the triangle (a, b, c) is clockwise in
// illustration space, where Y grows downward.
func clockwise(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}
