package plotdraw

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

func toFixed(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// filled is implemented by primitives that carry a fill color.
type filled interface {
	Fill() color.Color
}

func fillColor(p Primitive) color.Color {
	if f, ok := p.(filled); ok {
		return f.Fill()
	}
	return color.Black
}

// Render rasterizes the registered primitives into a new image in draw
// order. Each primitive's vertex loop is transformed by its assigned
// composite transform and scan-filled.
func (p *Plot) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	scanner := rasterx.NewScannerGV(p.width, p.height, img, img.Bounds())
	filler := rasterx.NewFiller(p.width, p.height, scanner)

	for _, prim := range p.primitives {
		verts := prim.Vertices()
		if len(verts) < 3 {
			continue
		}
		m := prim.Transform()

		scanner.SetColor(fillColor(prim))

		filler.Start(toFixed(m.TransformPoint(verts[0])))
		for _, v := range verts[1:] {
			filler.Line(toFixed(m.TransformPoint(v)))
		}
		filler.Stop(true)
		filler.Draw()
		filler.Clear()
	}

	return img
}

// WritePNG renders the plot and writes it as PNG.
func (p *Plot) WritePNG(w io.Writer) error {
	return png.Encode(w, p.Render())
}

// SavePNG renders the plot and writes it to a PNG file.
func (p *Plot) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.Render())
}
