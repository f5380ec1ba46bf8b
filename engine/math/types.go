package math

// Vec3 represents a 3D vector or a point in space.
type Vec3 struct {
	X, Y, Z float64
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief An RGBA colour with components in [0, 1].
 */
type Color struct {
	R, G, B, A float32
}
