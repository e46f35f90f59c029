package levelmesh

import "log/slog"

// Per-anchor vertex block of a wall: bottom and top vertices, each
// duplicated so the two faces of the ribbon get their own normals.
const (
	wallLowFront  = 0
	wallLowBack   = 1
	wallHighFront = 2
	wallHighBack  = 3
	wallBlock     = 4
)

// BuildWallMesh extrudes every closed loop into a vertical double-sided
// ribbon of the given height.
//
// For a loop of N anchors the ribbon has 4N vertices and 4N triangles: two
// front and two back triangles per edge, the last edge closing the loop.
// Loops with fewer than three anchors are skipped. Loops are not connected
// to each other.
func BuildWallMesh(paths []WallPath, center Point, scale float64, rot Rotation, height float64) *MeshBuffer {
	pl := newPlacement(center, scale, rot)
	m := &MeshBuffer{}

	for i, w := range paths {
		if !w.Extrudable() {
			Logger().Debug("levelmesh: skipping degenerate wall",
				slog.Int("path", i),
				slog.Int("points", len(w.Points)))
			continue
		}

		base := uint32(len(m.Positions))
		for _, p := range w.Points {
			low := pl.world(p, 0)
			high := pl.world(p, height)
			m.Positions = append(m.Positions, low, low, high, high)
		}

		n := uint32(len(w.Points))
		for k := uint32(0); k < n; k++ {
			cur := base + k*wallBlock
			next := base + ((k+1)%n)*wallBlock

			l, h := cur+wallLowFront, cur+wallHighFront
			nl, nh := next+wallLowFront, next+wallHighFront
			m.Indices = append(m.Indices,
				l, h, nl,
				h, nh, nl,
			)

			bl, bh := cur+wallLowBack, cur+wallHighBack
			bnl, bnh := next+wallLowBack, next+wallHighBack
			m.Indices = append(m.Indices,
				bl, bnl, bh,
				bh, bnl, bnh,
			)
		}
	}

	m.finish()
	return m
}
