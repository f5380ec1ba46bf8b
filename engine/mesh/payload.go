package mesh

import (
	"github.com/spaghettifunk/trimesh/engine/math"
)

// Payload is the capability set required from per-element attachment data.
// Default builds the value given to a freshly created element and Merge combines two values
// when their elements are fused by an edge collapse. Values are copied, never shared.
type Payload[T any] interface {
	Default() T
	Merge(other T) T
}

// Colorable payloads accept the colour setters of Mesh.
type Colorable interface {
	SetColor(c math.Color)
	SetAlpha(a float32)
}

// Showable payloads accept the visibility setters of Mesh.
type Showable interface {
	SetVisible(visible bool)
	IsVisible() bool
}

var (
	defaultVertColor = math.Color{R: 1, G: 1, B: 1, A: 1}
	defaultEdgeColor = math.Color{R: 0, G: 0, B: 0, A: 1}
	defaultFaceColor = math.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}
)

// VertData is the standard vertex attachment.
type VertData struct {
	Color   math.Color
	Visible bool
	Label   int
}

func (VertData) Default() VertData {
	return VertData{Color: defaultVertColor, Visible: true}
}

// Merge averages the colours and keeps the element visible if either was.
func (d VertData) Merge(other VertData) VertData {
	d.Color = d.Color.Blend(other.Color)
	d.Visible = d.Visible || other.Visible
	return d
}

func (d *VertData) SetColor(c math.Color) { d.Color = c }
func (d *VertData) SetAlpha(a float32)    { d.Color = d.Color.WithAlpha(a) }
func (d *VertData) SetVisible(v bool)     { d.Visible = v }
func (d *VertData) IsVisible() bool       { return d.Visible }

// EdgeData is the standard edge attachment.
type EdgeData struct {
	Color   math.Color
	Visible bool
	Marked  bool
}

func (EdgeData) Default() EdgeData {
	return EdgeData{Color: defaultEdgeColor, Visible: true}
}

// Merge keeps the receiver's colour and ORs the flags.
func (d EdgeData) Merge(other EdgeData) EdgeData {
	d.Visible = d.Visible || other.Visible
	d.Marked = d.Marked || other.Marked
	return d
}

func (d *EdgeData) SetColor(c math.Color) { d.Color = c }
func (d *EdgeData) SetAlpha(a float32)    { d.Color = d.Color.WithAlpha(a) }
func (d *EdgeData) SetVisible(v bool)     { d.Visible = v }
func (d *EdgeData) IsVisible() bool       { return d.Visible }

// FaceData is the standard face attachment.
type FaceData struct {
	Color   math.Color
	Visible bool
	Label   int
}

func (FaceData) Default() FaceData {
	return FaceData{Color: defaultFaceColor, Visible: true}
}

func (d FaceData) Merge(other FaceData) FaceData {
	d.Visible = d.Visible || other.Visible
	return d
}

func (d *FaceData) SetColor(c math.Color) { d.Color = c }
func (d *FaceData) SetAlpha(a float32)    { d.Color = d.Color.WithAlpha(a) }
func (d *FaceData) SetVisible(v bool)     { d.Visible = v }
func (d *FaceData) IsVisible() bool       { return d.Visible }

// NoData is an empty attachment for meshes that only need topology.
type NoData struct{}

func (NoData) Default() NoData     { return NoData{} }
func (NoData) Merge(NoData) NoData { return NoData{} }

// Trimesh is a mesh carrying the standard attachments.
type Trimesh = Mesh[VertData, EdgeData, FaceData]

// Topomesh is a mesh without attachments.
type Topomesh = Mesh[NoData, NoData, NoData]

// NewTrimesh builds a Trimesh from flat buffers, see New.
func NewTrimesh(coords []float64, faces []int, opts Options) (*Trimesh, error) {
	return New[VertData, EdgeData, FaceData](coords, faces, opts)
}
