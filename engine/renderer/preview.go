package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/image/vector"

	"github.com/spaghettifunk/trimesh/engine/math"
)

const (
	DEFAULT_PREVIEW_SIZE = 512
	// ambient light share; the rest comes from the directional light
	previewAmbient = 0.25
)

type PreviewOptions struct {
	Width  int
	Height int
	// Background fills the pixels no triangle covers.
	Background math.Color
	// LightDir points from the scene towards the light.
	LightDir math.Vec3
	// Margin is the fraction of the half-size left empty around the object.
	Margin float64
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      DEFAULT_PREVIEW_SIZE,
		Height:     DEFAULT_PREVIEW_SIZE,
		Background: math.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
		LightDir:   math.NewVec3(0.3, 0.4, 1),
		Margin:     0.1,
	}
}

// Preview renders src with an orthographic camera looking down -Z. Triangles are drawn back to
// front and flat shaded; both sides of a face receive light.
func Preview(src TriangleSource, opts PreviewOptions) *image.RGBA {
	if opts.Width <= 0 {
		opts.Width = DEFAULT_PREVIEW_SIZE
	}
	if opts.Height <= 0 {
		opts.Height = DEFAULT_PREVIEW_SIZE
	}
	opts.Margin = math.Clamp(opts.Margin, 0, 0.9)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(opts.Background, 1)), image.Point{}, draw.Src)

	tris := src.Triangles()
	if len(tris) == 0 {
		return img
	}

	center := src.SceneCenter()
	half := float64(opts.Width)
	if opts.Height < opts.Width {
		half = float64(opts.Height)
	}
	half *= 0.5 * (1 - opts.Margin)
	scale := 1.0
	if r := src.SceneRadius(); r > 0 {
		scale = half / r
	}
	light := opts.LightDir.Normalized()

	// farthest first
	depth := func(t Triangle) float64 { return t.Verts[0].Z + t.Verts[1].Z + t.Verts[2].Z }
	slices.SortStableFunc(tris, func(a, b Triangle) int {
		da, db := depth(a), depth(b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	cx, cy := float64(opts.Width)*0.5, float64(opts.Height)*0.5
	project := func(p math.Vec3) (float32, float32) {
		return float32(cx + (p.X-center.X)*scale), float32(cy - (p.Y-center.Y)*scale)
	}

	raster := vector.NewRasterizer(opts.Width, opts.Height)
	for _, t := range tris {
		raster.Reset(opts.Width, opts.Height)
		x, y := project(t.Verts[0])
		raster.MoveTo(x, y)
		x, y = project(t.Verts[1])
		raster.LineTo(x, y)
		x, y = project(t.Verts[2])
		raster.LineTo(x, y)
		raster.ClosePath()

		lambert := t.Normal.Normalized().Dot(light)
		if lambert < 0 {
			lambert = -lambert
		}
		shade := previewAmbient + (1-previewAmbient)*lambert
		raster.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(t.Color, shade)), image.Point{})
	}
	return img
}

func toNRGBA(c math.Color, shade float64) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(math.Clamp(float64(v)*shade, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: uint8(math.Clamp(float64(c.A), 0, 1)*255 + 0.5),
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	return nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "saving preview %s", path)
	}
	if err := WritePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "saving preview %s", path)
}
