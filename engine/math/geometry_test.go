package math

import "testing"

func TestTriangle(t *testing.T) {
	a, b, c := NewVec3(0, 0, 0), NewVec3(2, 0, 0), NewVec3(0, 2, 0)

	if got := TriangleCross(a, b, c); got != NewVec3(0, 0, 4) {
		t.Errorf("TriangleCross = %v", got)
	}
	if got := TriangleNormal(a, c, b); got != NewVec3(0, 0, -1) {
		t.Errorf("TriangleNormal of the reversed winding = %v", got)
	}
	if got := TriangleArea(a, b, c); got != 2 {
		t.Errorf("TriangleArea = %v", got)
	}
	if got := TriangleCentroid(a, b, c); !got.Compare(NewVec3(2.0/3, 2.0/3, 0), 1e-12) {
		t.Errorf("TriangleCentroid = %v", got)
	}
}

func TestTriangleNormalOfColinearPoints(t *testing.T) {
	got := TriangleNormal(NewVec3(0, 0, 0), NewVec3(1, 1, 1), NewVec3(2, 2, 2))
	if got != NewVec3Zero() {
		t.Fatalf("TriangleNormal = %v, want zero vector", got)
	}
}
