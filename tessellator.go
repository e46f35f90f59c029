package levelmesh

// TriangleGeometry is one chunk of tessellator output: 2D vertices and
// triangle index triples local to this chunk.
type TriangleGeometry struct {
	Vertices []Point
	Indices  []int
}

// TriangleCount returns the number of complete index triples.
func (g TriangleGeometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// usable reports whether the chunk can be appended to a mesh: it has
// vertices, whole triangles, and every index addresses one of its vertices.
func (g TriangleGeometry) usable() bool {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return false
	}
	for _, idx := range g.Indices {
		if idx < 0 || idx >= len(g.Vertices) {
			return false
		}
	}
	return true
}

// TessellationOptions controls how curved shapes are approximated by
// triangles. Distances are in illustration units.
type TessellationOptions struct {
	// StepDistance is the maximum length of a curve segment; zero or
	// negative disables the limit.
	StepDistance float64

	// MaxCordDeviation is the maximum distance between a curve and its
	// chord.
	MaxCordDeviation float64

	// MaxTanAngleDeviation is the maximum turn of the curve tangent, in
	// radians, across one segment; zero or negative disables the limit.
	MaxTanAngleDeviation float64

	// SamplingStepSize is the smallest curve parameter interval that is
	// still subdivided, in (0, 1].
	SamplingStepSize float64

	// PixelsPerUnit is the illustration resolution. It is handed to the
	// tessellator unchanged; the mesh builders never read it.
	PixelsPerUnit float64
}

// DefaultTessellationOptions returns the editor defaults.
func DefaultTessellationOptions() TessellationOptions {
	return TessellationOptions{
		StepDistance:         1.0,
		MaxCordDeviation:     0.5,
		MaxTanAngleDeviation: 0.1,
		SamplingStepSize:     0.01,
		PixelsPerUnit:        100,
	}
}

// Tessellator turns filled shapes into triangles.
//
// Tessellate receives the entries of one fill color; every entry carries
// its own scene transform, which the tessellator must apply. It may return
// any number of chunks, including none.
type Tessellator interface {
	Tessellate(entries []ShapeEntry, opts TessellationOptions) ([]TriangleGeometry, error)
}

// TessellatorFunc adapts an ordinary function to the Tessellator interface.
type TessellatorFunc func(entries []ShapeEntry, opts TessellationOptions) ([]TriangleGeometry, error)

// Tessellate calls f(entries, opts).
func (f TessellatorFunc) Tessellate(entries []ShapeEntry, opts TessellationOptions) ([]TriangleGeometry, error) {
	return f(entries, opts)
}
