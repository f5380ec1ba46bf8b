package mesh

import (
	"github.com/spaghettifunk/trimesh/engine/math"
)

// The setters below act on attachments implementing Colorable or Showable (through a pointer)
// and do nothing for other payload types.

func setColor[T any](data []T, c math.Color) {
	for i := range data {
		if p, ok := any(&data[i]).(Colorable); ok {
			p.SetColor(c)
		}
	}
}

func setAlpha[T any](data []T, a float32) {
	for i := range data {
		if p, ok := any(&data[i]).(Colorable); ok {
			p.SetAlpha(a)
		}
	}
}

func setVisible[T any](data []T, visible bool) {
	for i := range data {
		if p, ok := any(&data[i]).(Showable); ok {
			p.SetVisible(visible)
		}
	}
}

func (m *Mesh[V, E, F]) VertSetColor(c math.Color) { setColor(m.vData, c) }
func (m *Mesh[V, E, F]) EdgeSetColor(c math.Color) { setColor(m.eData, c) }
func (m *Mesh[V, E, F]) FaceSetColor(c math.Color) { setColor(m.fData, c) }
func (m *Mesh[V, E, F]) VertSetAlpha(a float32)    { setAlpha(m.vData, a) }
func (m *Mesh[V, E, F]) EdgeSetAlpha(a float32)    { setAlpha(m.eData, a) }
func (m *Mesh[V, E, F]) FaceSetAlpha(a float32)    { setAlpha(m.fData, a) }

// ElemShowAll makes every face visible again.
func (m *Mesh[V, E, F]) ElemShowAll() { setVisible(m.fData, true) }

// FaceSetVisible shows or hides a single face.
func (m *Mesh[V, E, F]) FaceSetVisible(fid int, visible bool) {
	setVisible(m.fData[fid:fid+1], visible)
}

// FaceIsVisible reports false only for a Showable attachment that was hidden.
func (m *Mesh[V, E, F]) FaceIsVisible(fid int) bool {
	if p, ok := any(&m.fData[fid]).(Showable); ok {
		return p.IsVisible()
	}
	return true
}
