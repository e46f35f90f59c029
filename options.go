package levelmesh

// Config holds the generation settings. The zero value is not useful; start
// from DefaultConfig.
//
// Values are not validated: a negative Scale mirrors the level, a zero
// WallHeight flattens walls into ribbons on the floor plane.
type Config struct {
	// Scale multiplies every generated position.
	Scale float64

	// Rotation is applied to the centered, scaled meshes.
	Rotation Rotation

	// WallHeight is the extrusion height of every wall, before Scale.
	WallHeight float64

	// Tessellation is handed to the Tessellator for every floor color.
	Tessellation TessellationOptions

	// Center overrides the illustration point placed at the world origin.
	// When nil, Generate uses the center of the collected bounds.
	Center *Point

	// Workers is the number of goroutines building color groups. Values
	// below 2 build sequentially.
	Workers int
}

// DefaultConfig returns the editor defaults.
func DefaultConfig() Config {
	return Config{
		Scale:        1,
		WallHeight:   1,
		Tessellation: DefaultTessellationOptions(),
		Workers:      1,
	}
}

// Option configures a Generator during creation.
//
// Example:
//
//	g := levelmesh.NewGenerator(tess.New(),
//	    levelmesh.WithScale(0.01),
//	    levelmesh.WithWallHeight(300),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(c Config) Option {
	return func(o *Config) {
		*o = c
	}
}

// WithScale sets the global mesh scale.
func WithScale(s float64) Option {
	return func(o *Config) {
		o.Scale = s
	}
}

// WithRotation sets the rotation applied to every mesh.
func WithRotation(r Rotation) Option {
	return func(o *Config) {
		o.Rotation = r
	}
}

// WithWallHeight sets the wall extrusion height.
func WithWallHeight(h float64) Option {
	return func(o *Config) {
		o.WallHeight = h
	}
}

// WithTessellationOptions sets the options passed to the Tessellator.
func WithTessellationOptions(t TessellationOptions) Option {
	return func(o *Config) {
		o.Tessellation = t
	}
}

// WithPixelsPerUnit sets the illustration resolution handed to the
// Tessellator.
func WithPixelsPerUnit(ppu float64) Option {
	return func(o *Config) {
		o.Tessellation.PixelsPerUnit = ppu
	}
}

// WithCenter fixes the illustration point placed at the world origin.
func WithCenter(p Point) Option {
	return func(o *Config) {
		o.Center = &p
	}
}

// WithWorkers builds color groups on n goroutines.
//
// Output is identical to a sequential run; only wall-clock time changes.
// The Tessellator must be safe for concurrent use when n > 1.
func WithWorkers(n int) Option {
	return func(o *Config) {
		o.Workers = n
	}
}
