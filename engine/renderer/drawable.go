package renderer

import (
	"github.com/spaghettifunk/trimesh/engine/math"
	"github.com/spaghettifunk/trimesh/engine/mesh"
)

type ObjectType uint32

const (
	OBJECT_TYPE_TRIMESH  ObjectType = 0x1
	OBJECT_TYPE_TETMESH  ObjectType = 0x2
	OBJECT_TYPE_QUADMESH ObjectType = 0x4
	OBJECT_TYPE_SKELETON ObjectType = 0x8
)

func (t ObjectType) String() string {
	switch t {
	case OBJECT_TYPE_TRIMESH:
		return "trimesh"
	case OBJECT_TYPE_TETMESH:
		return "tetmesh"
	case OBJECT_TYPE_QUADMESH:
		return "quadmesh"
	case OBJECT_TYPE_SKELETON:
		return "skeleton"
	}
	return "unknown"
}

// Drawable is what a viewer needs to frame an object.
type Drawable interface {
	Type() ObjectType
	SceneCenter() math.Vec3
	SceneRadius() float64
}

// Triangle is one shaded face ready to be rasterized.
type Triangle struct {
	Verts  [3]math.Vec3
	Normal math.Vec3
	Color  math.Color
}

// TriangleSource is a Drawable that can be rendered as flat triangles.
type TriangleSource interface {
	Drawable
	Triangles() []Triangle
}

// DrawableTrimesh exposes a Trimesh to the renderer. It reads the mesh through Snapshot and never
// keeps element ids between calls.
type DrawableTrimesh struct {
	mesh *mesh.Trimesh
}

var _ TriangleSource = (*DrawableTrimesh)(nil)

func NewDrawableTrimesh(m *mesh.Trimesh) *DrawableTrimesh {
	return &DrawableTrimesh{mesh: m}
}

func (d *DrawableTrimesh) Type() ObjectType {
	return OBJECT_TYPE_TRIMESH
}

func (d *DrawableTrimesh) SceneCenter() math.Vec3 {
	return d.mesh.BBox().Center()
}

// SceneRadius is half the bounding box diagonal.
func (d *DrawableTrimesh) SceneRadius() float64 {
	return d.mesh.BBox().Diagonal() * 0.5
}

// Triangles returns the visible faces with their normals and colours.
func (d *DrawableTrimesh) Triangles() []Triangle {
	snap := d.mesh.Snapshot()
	tris := make([]Triangle, 0, len(snap.FaceData))
	for fid, data := range snap.FaceData {
		if !data.Visible {
			continue
		}
		tri := Triangle{Color: data.Color}
		for off := 0; off < 3; off++ {
			tri.Verts[off] = snap.Positions[snap.Faces[3*fid+off]]
		}
		if fid < len(snap.FaceNormals) {
			tri.Normal = snap.FaceNormals[fid]
		}
		tris = append(tris, tri)
	}
	return tris
}
