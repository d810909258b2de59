// Package preview rasterizes dashes into a top-down image of the road.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/markup"
)

// Options controls the output image.
type Options struct {
	// Scale is the number of pixels per metre.
	Scale float64
	// Margin is the number of pixels left free around the dashes. Zero and
	// negative values leave none.
	Margin int
	// Background fills the image before any dash is drawn.
	Background color.Color
}

// DefaultOptions are the options of the markupview command. [Render] falls
// back to their Scale and Background when those are unset.
var DefaultOptions = Options{
	Scale:      50,
	Margin:     16,
	Background: color.RGBA{R: 40, G: 40, B: 44, A: 255},
}

// transform maps world coordinates to pixels. World y points up, image y
// points down.
type transform struct {
	scale      float64
	minX, maxY float64
	margin     float64
}

func (tr transform) apply(p markup.Point) fixed.Point26_6 {
	x := (p.X-tr.minX)*tr.scale + tr.margin
	y := (tr.maxY-p.Y)*tr.scale + tr.margin
	return rasterx.ToFixedP(x, y)
}

// bounds returns the smallest rectangle holding every corner of dashes.
func bounds(dashes []markup.Dash) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, d := range dashes {
		for _, c := range d.Corners() {
			minX = min(minX, c.X)
			minY = min(minY, c.Y)
			maxX = max(maxX, c.X)
			maxY = max(maxY, c.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// Render draws every dash as a filled quadrilateral, fitting the image to
// the dashes. Without dashes it returns an image holding only the margin,
// or a single pixel if there is no margin.
func Render(dashes []markup.Dash, opts Options) *image.RGBA {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions.Scale
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Background == nil {
		opts.Background = DefaultOptions.Background
	}

	tr := transform{scale: opts.Scale, margin: float64(opts.Margin)}
	w, h := 2*opts.Margin, 2*opts.Margin
	if len(dashes) > 0 {
		minX, minY, maxX, maxY := bounds(dashes)
		tr.minX, tr.maxY = minX, maxY
		w += int(math.Ceil((maxX - minX) * opts.Scale))
		h += int(math.Ceil((maxY - minY) * opts.Scale))
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(img.Bounds().Dx(), img.Bounds().Dy(), img, img.Bounds())
	filler := rasterx.NewFiller(img.Bounds().Dx(), img.Bounds().Dy(), scanner)
	for _, d := range dashes {
		corners := d.Corners()
		filler.SetColor(d.Color)
		filler.Start(tr.apply(corners[0]))
		for _, c := range corners[1:] {
			filler.Line(tr.apply(c))
		}
		filler.Stop(true)
		filler.Draw()
		filler.Clear()
	}
	markup.Logger().Debug("markup: preview rendered", "dashes", len(dashes), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img
}

// WritePNG renders dashes and encodes the result as PNG.
func WritePNG(w io.Writer, dashes []markup.Dash, opts Options) error {
	return png.Encode(w, Render(dashes, opts))
}
