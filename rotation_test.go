package levelmesh

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestRotationApply(t *testing.T) {
	tests := []struct {
		name string
		rot  Rotation
		in   f32.Vec3
		want f32.Vec3
	}{
		{"zero", Rotation{}, f32.Vec3{1, 2, 3}, f32.Vec3{1, 2, 3}},
		{"x 90", Rotation{X: 90}, f32.Vec3{0, 1, 0}, f32.Vec3{0, 0, 1}},
		{"y 90", Rotation{Y: 90}, f32.Vec3{1, 0, 0}, f32.Vec3{0, 0, -1}},
		{"z 90", Rotation{Z: 90}, f32.Vec3{1, 0, 0}, f32.Vec3{0, 1, 0}},
		{"y 180", Rotation{Y: 180}, f32.Vec3{1, 0, 1}, f32.Vec3{-1, 0, -1}},
		// Z first: +X goes to +Y, then X 90 takes +Y to +Z.
		{"z then x", Rotation{X: 90, Z: 90}, f32.Vec3{1, 0, 0}, f32.Vec3{0, 0, 1}},
		// Y 90 last takes that +Z to +X.
		{"z then x then y", Rotation{X: 90, Y: 90, Z: 90}, f32.Vec3{1, 0, 0}, f32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.rot.matrix().apply(float64(tt.in[0]), float64(tt.in[1]), float64(tt.in[2]))
			got := f32.Vec3{float32(x), float32(y), float32(z)}
			if !vecNear(got, tt.want, 1e-6) {
				t.Errorf("rotate %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotationMat3(t *testing.T) {
	if got := (Rotation{}).Mat3(); got != (f32.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("zero rotation Mat3() = %v, want identity", got)
	}
	m := Rotation{Z: 90}.Mat3()
	// Row-major: row 0 is (cos, -sin, 0).
	if !vecNear(f32.Vec3{m[0], m[1], m[2]}, f32.Vec3{0, -1, 0}, 1e-6) {
		t.Errorf("Mat3() first row = %v", m[:3])
	}
}

func TestPlacementWorld(t *testing.T) {
	pl := newPlacement(Pt(10, 20), 0.5, Rotation{})
	got := pl.world(Pt(14, 16), 6)
	want := f32.Vec3{2, 3, 2}
	if got != want {
		t.Errorf("world() = %v, want %v", got, want)
	}
}
