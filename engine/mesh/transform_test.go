package mesh

import (
	stdmath "math"
	"testing"

	"github.com/spaghettifunk/trimesh/engine/math"
)

func TestTranslate(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	m.Translate(math.NewVec3(1, -2, 3))

	bb := m.BBox()
	if bb.Min != math.NewVec3(1, -2, 3) || bb.Max != math.NewVec3(2, -1, 4) {
		t.Fatalf("bbox %v after Translate", bb)
	}
}

func TestRotateAboutBarycenter(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	center := m.Barycenter()

	m.Rotate(math.NewVec3(0, 0, 1), stdmath.Pi/2)

	if got := m.Barycenter(); !got.Compare(center, 1e-12) {
		t.Errorf("barycenter moved to %v", got)
	}
	// the right side (+x) now faces +y
	if got := m.FaceNormal(10); !got.Compare(math.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("face 10 normal %v, want (0,1,0)", got)
	}
	bb := m.BBox()
	if !bb.Min.Compare(math.NewVec3(0, 0, 0), 1e-12) || !bb.Max.Compare(math.NewVec3(1, 1, 1), 1e-12) {
		t.Errorf("bbox %v after a quarter turn", bb)
	}
}

func TestNormalizeArea(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	m.NormalizeArea()
	if got := m.Area(); stdmath.Abs(got-1) > 1e-12 {
		t.Fatalf("area %g after NormalizeArea, want 1", got)
	}

	// area 5e-7 is clamped to 1e-4, so the scale factor is 100
	tiny := mustTrimesh(t, []float64{0, 0, 0, 1e-3, 0, 0, 0, 1e-3, 0}, triFaces, strict())
	tiny.NormalizeArea()
	if got := tiny.Vert(1); !got.Compare(math.NewVec3(0.1, 0, 0), 1e-12) {
		t.Fatalf("vertex 1 at %v after NormalizeArea, want (0.1, 0, 0)", got)
	}
	if got := tiny.Area(); stdmath.Abs(got-5e-3) > 1e-12 {
		t.Fatalf("area %g, want 5e-3", got)
	}
}

func TestScaleAboutOrigin(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	m.Scale(2)
	if got := m.BBox(); !got.Min.Compare(math.NewVec3Zero(), 1e-12) || !got.Max.Compare(math.NewVec3(2, 2, 2), 1e-12) {
		t.Fatalf("bbox %+v after Scale(2)", got)
	}
}

func TestCenterBBox(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	m.CenterBBox()
	if got := m.BBox().Center(); !got.Compare(math.NewVec3Zero(), 1e-12) {
		t.Fatalf("bbox center %v, want origin", got)
	}
	if got := m.BBox().Min; !got.Compare(math.NewVec3(-0.5, -0.5, -0.5), 1e-12) {
		t.Fatalf("bbox min %v", got)
	}
}
