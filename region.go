package levelmesh

import (
	"fmt"
	"log/slog"

	"github.com/appen-isen/levelmesh/internal/parallel"
)

// Kind tells floor regions from wall regions.
type Kind int

const (
	// KindFloor is a flat mesh built from filled shapes of one color.
	KindFloor Kind = iota

	// KindWall is an extruded ribbon built from stroked contours of one color.
	KindWall
)

// String returns the kind name, which is also the record name prefix.
func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "Floor"
	case KindWall:
		return "Wall"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MeshRecord is one generated region. Records are not modified after
// GenerateRegions returns them.
type MeshRecord struct {
	Name  string
	Color ColorKey
	Kind  Kind
	Mesh  *MeshBuffer
}

// RegionName returns the deterministic record name for a region,
// e.g. "Floor_FF0000" or "Wall_00FF0080".
func RegionName(kind Kind, key ColorKey) string {
	return kind.String() + "_" + key.Name()
}

// Generator turns collected illustration shapes into mesh records.
// A Generator holds no state between calls and may be reused.
type Generator struct {
	tess Tessellator
	cfg  Config
}

// NewGenerator creates a Generator that tessellates floors with t.
//
// Example:
//
//	g := levelmesh.NewGenerator(tess.New(), levelmesh.WithWallHeight(2))
//	records, err := g.Generate(root)
func NewGenerator(t Tessellator, opts ...Option) *Generator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{tess: t, cfg: cfg}
}

// Config returns the generator settings.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate collects root and generates its regions. The illustration is
// centered on the configured Center, or on the middle of the collected
// bounds when none is set.
//
// An illustration without fills or strokes yields no records and no error.
func (g *Generator) Generate(root *Node) ([]MeshRecord, error) {
	c, err := Collect(root)
	if err != nil {
		return nil, err
	}
	center := c.Bounds().Center()
	if g.cfg.Center != nil {
		center = *g.cfg.Center
	}
	return g.GenerateRegions(c, center)
}

// regionJob is one color group to build.
type regionJob struct {
	kind Kind
	key  ColorKey
}

// GenerateRegions builds one floor record per fill color and one wall
// record per stroke color, floors first, each in first-seen color order.
//
// A floor color whose tessellation fails or returns no triangles is skipped
// with a warning, as is a wall color whose loops are all degenerate. The
// only error is a broken mesh invariant, which indicates a bug.
func (g *Generator) GenerateRegions(c *Collection, center Point) ([]MeshRecord, error) {
	if c == nil || c.Empty() {
		return []MeshRecord{}, nil
	}

	jobs := make([]regionJob, 0, len(c.floorKeys)+len(c.wallKeys))
	for _, key := range c.FloorKeys() {
		jobs = append(jobs, regionJob{kind: KindFloor, key: key})
	}
	for _, key := range c.WallKeys() {
		jobs = append(jobs, regionJob{kind: KindWall, key: key})
	}

	results := make([]*MeshBuffer, len(jobs))
	build := func(i int) {
		results[i] = g.build(c, jobs[i], center)
	}

	if g.cfg.Workers > 1 && len(jobs) > 1 {
		pool := parallel.NewWorkerPool(min(g.cfg.Workers, len(jobs)))
		pool.ForEach(len(jobs), build)
		pool.Close()
	} else {
		for i := range jobs {
			build(i)
		}
	}

	records := make([]MeshRecord, 0, len(jobs))
	for i, job := range jobs {
		mesh := results[i]
		if mesh == nil {
			continue
		}
		name := RegionName(job.kind, job.key)
		if err := mesh.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		Logger().Debug("levelmesh: region built",
			slog.String("name", name),
			slog.Int("vertices", mesh.VertexCount()),
			slog.Int("triangles", mesh.TriangleCount()),
			slog.String("indexFormat", mesh.IndexFormat().String()))
		records = append(records, MeshRecord{
			Name:  name,
			Color: job.key,
			Kind:  job.kind,
			Mesh:  mesh,
		})
	}

	Logger().Info("levelmesh: regions generated",
		slog.Int("records", len(records)),
		slog.Int("groups", len(jobs)))
	return records, nil
}

// build returns the mesh of one color group, or nil when the group
// produced no triangles.
func (g *Generator) build(c *Collection, job regionJob, center Point) *MeshBuffer {
	switch job.kind {
	case KindFloor:
		return g.buildFloor(c.Floors[job.key], job.key, center)
	case KindWall:
		mesh := BuildWallMesh(c.Walls[job.key], center, g.cfg.Scale, g.cfg.Rotation, g.cfg.WallHeight)
		if mesh.IsEmpty() {
			Logger().Warn("levelmesh: no extrudable wall, skipping color",
				slog.String("color", job.key.String()))
			return nil
		}
		return mesh
	}
	return nil
}

func (g *Generator) buildFloor(entries []ShapeEntry, key ColorKey, center Point) *MeshBuffer {
	if g.tess == nil {
		Logger().Warn("levelmesh: no tessellator configured, skipping color",
			slog.String("color", key.String()))
		return nil
	}

	geoms, err := g.tess.Tessellate(entries, g.cfg.Tessellation)
	if err != nil {
		Logger().Warn("levelmesh: tessellation failed, skipping color",
			slog.String("color", key.String()),
			slog.Any("error", err))
		return nil
	}
	if len(geoms) == 0 {
		Logger().Warn("levelmesh: no geometry generated, skipping color",
			slog.String("color", key.String()))
		return nil
	}

	mesh := BuildFloorMesh(geoms, center, g.cfg.Scale, g.cfg.Rotation)
	if mesh.IsEmpty() {
		Logger().Warn("levelmesh: tessellation produced no triangles, skipping color",
			slog.String("color", key.String()))
		return nil
	}
	return mesh
}
