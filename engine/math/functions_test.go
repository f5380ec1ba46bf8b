package math

import (
	m "math"
	"testing"
)

const tol = 1e-12

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", NewVec3(0, 0, 5), NewVec3(0, 0, 1)},
		{"diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"zero stays zero", NewVec3Zero(), NewVec3Zero()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); !got.Compare(tt.want, tol) {
				t.Fatalf("Normalized(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVec3Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		axis  Vec3
		angle float64
		want  Vec3
	}{
		{"quarter turn about z", NewVec3(1, 0, 0), NewVec3(0, 0, 2), K_PI / 2, NewVec3(0, 1, 0)},
		{"half turn about y", NewVec3(1, 0, 1), NewVec3(0, 1, 0), K_PI, NewVec3(-1, 0, -1)},
		{"point on the axis", NewVec3(0, 0, 3), NewVec3(0, 0, 1), 1.234, NewVec3(0, 0, 3)},
		{"zero axis", NewVec3(1, 2, 3), NewVec3Zero(), 1, NewVec3(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.axis, tt.angle)
			if !got.Compare(tt.want, 1e-9) {
				t.Fatalf("Rotate = %v, want %v", got, tt.want)
			}
			if m.Abs(got.Length()-tt.v.Length()) > 1e-9 {
				t.Fatalf("Rotate changed the length: %v -> %v", tt.v.Length(), got.Length())
			}
		})
	}
}

func TestVec3Products(t *testing.T) {
	x, y := NewVec3(1, 0, 0), NewVec3(0, 1, 0)
	if got := x.Cross(y); !got.Compare(NewVec3(0, 0, 1), tol) {
		t.Errorf("x cross y = %v", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("x dot y = %v", got)
	}
	if got := NewVec3(1, 2, 2).Distance(NewVec3Zero()); got != 3 {
		t.Errorf("Distance = %v", got)
	}
	if got := NewVec3FromSlice([]float64{9, 9, 9, 1, 2, 3}, 1); got != NewVec3(1, 2, 3) {
		t.Errorf("NewVec3FromSlice = %v", got)
	}
}

func TestExtents3D(t *testing.T) {
	e := NewExtents3DEmpty()
	if !e.IsEmpty() || e.Diagonal() != 0 || e.Center() != NewVec3Zero() {
		t.Fatalf("empty extents = %+v", e)
	}
	e = e.Expand(NewVec3(-1, 0, 2)).Expand(NewVec3(1, 2, 4))
	if e.IsEmpty() {
		t.Fatal("expanded extents still empty")
	}
	if e.Min != NewVec3(-1, 0, 2) || e.Max != NewVec3(1, 2, 4) {
		t.Fatalf("extents = %+v", e)
	}
	if got := e.Center(); got != NewVec3(0, 1, 3) {
		t.Errorf("Center = %v", got)
	}
	if got := e.Diagonal(); m.Abs(got-m.Sqrt(12)) > tol {
		t.Errorf("Diagonal = %v", got)
	}
	if got := e.Translate(NewVec3(1, 1, 1)); got.Min != NewVec3(0, 1, 3) {
		t.Errorf("Translate = %+v", got)
	}
}

func TestColor(t *testing.T) {
	c := NewColor(2, -1, 0.5, 1)
	if c != (Color{R: 1, G: 0, B: 0.5, A: 1}) {
		t.Fatalf("NewColor did not clamp: %+v", c)
	}
	if got := c.WithAlpha(0.25).A; got != 0.25 {
		t.Errorf("WithAlpha = %v", got)
	}
	if got := c.Blend(Color{}); got != (Color{R: 0.5, G: 0, B: 0.25, A: 0.5}) {
		t.Errorf("Blend = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp on ints")
	}
	if Clamp(0.5, 0.0, 0.25) != 0.25 {
		t.Error("Clamp on floats")
	}
}

func TestAngles(t *testing.T) {
	if got := DegToRad(180); m.Abs(got-K_PI) > tol {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := RadToDeg(K_PI / 2); m.Abs(got-90) > 1e-9 {
		t.Errorf("RadToDeg(pi/2) = %v", got)
	}
}
