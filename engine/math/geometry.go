package math

// TriangleCross returns cross(b-a, c-a). Its direction follows the winding a, b, c and its
// length is twice the triangle area.
func TriangleCross(a, b, c Vec3) Vec3 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return edge1.Cross(edge2)
}

// TriangleNormal returns the unit normal of the triangle a, b, c.
// NOTE: colinear points give the zero vector, never NaN.
func TriangleNormal(a, b, c Vec3) Vec3 {
	return TriangleCross(a, b, c).Normalized()
}

// TriangleArea returns the area of the triangle a, b, c.
func TriangleArea(a, b, c Vec3) float64 {
	return 0.5 * TriangleCross(a, b, c).Length()
}

// TriangleCentroid returns the average of the three corners.
func TriangleCentroid(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c).DivScalar(3)
}
