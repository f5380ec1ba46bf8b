package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid coordinate. */
	K_INFINITY float64 = 1e300
	/** @brief Smallest positive number where 1.0 + K_DOUBLE_EPSILON != 1.0 */
	K_DOUBLE_EPSILON float64 = 2.220446049250313e-16
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

// NewVec3FromSlice reads the vector stored at xyz[3*i:3*i+3].
func NewVec3FromSlice(xyz []float64, i int) Vec3 {
	return Vec3{xyz[3*i+0], xyz[3*i+1], xyz[3*i+2]}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float64) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) DivScalar(scalar float64) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 * A zero-length vector is returned unchanged instead of being divided by zero.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors.
 */
func (v Vec3) Dot(other Vec3) float64 {
	p := float64(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float64) bool {
	if m.Abs(v.X-other.X) > tolerance {
		return false
	}

	if m.Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if m.Abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Min returns the componentwise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{m.Min(v.X, other.X), m.Min(v.Y, other.Y), m.Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{m.Max(v.X, other.X), m.Max(v.Y, other.Y), m.Max(v.Z, other.Z)}
}

// Rotate rotates v around axis by angle radians (Rodrigues' formula).
// The axis does not need to be normalized; a zero axis leaves v unchanged.
func (v Vec3) Rotate(axis Vec3, angle float64) Vec3 {
	k := axis.Normalized()
	if k.LengthSquared() == 0 {
		return v
	}
	c := m.Cos(angle)
	s := m.Sin(angle)
	return v.MulScalar(c).
		Add(k.Cross(v).MulScalar(s)).
		Add(k.MulScalar(k.Dot(v) * (1 - c)))
}

// ------------------------------------------
// Extents
// ------------------------------------------

// NewExtents3DEmpty returns inverted extents that any point will expand.
func NewExtents3DEmpty() Extents3D {
	return Extents3D{
		Min: Vec3{K_INFINITY, K_INFINITY, K_INFINITY},
		Max: Vec3{-K_INFINITY, -K_INFINITY, -K_INFINITY},
	}
}

// IsEmpty reports whether no point has been added to e.
func (e Extents3D) IsEmpty() bool {
	return e.Min.X > e.Max.X || e.Min.Y > e.Max.Y || e.Min.Z > e.Max.Z
}

// Expand grows e so that it contains p.
func (e Extents3D) Expand(p Vec3) Extents3D {
	return Extents3D{Min: e.Min.Min(p), Max: e.Max.Max(p)}
}

// Center returns the midpoint of e, or the origin when e is empty.
func (e Extents3D) Center() Vec3 {
	if e.IsEmpty() {
		return NewVec3Zero()
	}
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Diagonal returns the length of the box diagonal, or 0 when e is empty.
func (e Extents3D) Diagonal() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.Max.Distance(e.Min)
}

// Translate moves both corners of e by delta.
func (e Extents3D) Translate(delta Vec3) Extents3D {
	if e.IsEmpty() {
		return e
	}
	return Extents3D{Min: e.Min.Add(delta), Max: e.Max.Add(delta)}
}

// ------------------------------------------
// Colour
// ------------------------------------------

// NewColor returns a colour with every channel clamped to [0, 1].
func NewColor(r, g, b, a float32) Color {
	return Color{
		R: Clamp(r, 0, 1),
		G: Clamp(g, 0, 1),
		B: Clamp(b, 0, 1),
		A: Clamp(a, 0, 1),
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = Clamp(alpha, 0, 1)
	return c
}

// Blend returns the channelwise average of c and other.
func (c Color) Blend(other Color) Color {
	return Color{
		R: (c.R + other.R) * 0.5,
		G: (c.G + other.G) * 0.5,
		B: (c.B + other.B) * 0.5,
		A: (c.A + other.A) * 0.5,
	}
}

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}
