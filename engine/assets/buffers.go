package assets

import (
	"io"
)

// Buffers are the flat arrays exchanged with the mesh core: 3 coordinates per vertex and
// 3 zero-based vertex ids per triangle.
type Buffers struct {
	Coords []float64
	Faces  []int
}

func (b *Buffers) NumVerts() int { return len(b.Coords) / 3 }
func (b *Buffers) NumFaces() int { return len(b.Faces) / 3 }

// BufferSource is anything that can hand out flat buffers, a mesh in particular.
type BufferSource interface {
	VectorCoords() []float64
	FaceIndices() []int
}

// BuffersOf copies the buffers of src.
func BuffersOf(src BufferSource) *Buffers {
	return &Buffers{Coords: src.VectorCoords(), Faces: src.FaceIndices()}
}

// Format reads and writes one mesh file format.
type Format interface {
	Name() string
	Extensions() []string
	Read(r io.Reader) (*Buffers, error)
	Write(w io.Writer, b *Buffers) error
}

// fan appends the triangles (c0, ci, ci+1) of a convex polygon.
func fan(dst []int, corners []int) []int {
	for i := 1; i+1 < len(corners); i++ {
		dst = append(dst, corners[0], corners[i], corners[i+1])
	}
	return dst
}
