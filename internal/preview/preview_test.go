package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"honnef.co/go/markup"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestRender(t *testing.T) {
	dashes := []markup.Dash{
		{Position: markup.Pt(0, 0), Length: 2, Width: 1, Color: white},
	}
	bg := color.RGBA{A: 255}
	img := Render(dashes, Options{Scale: 10, Margin: 5, Background: bg})

	b := img.Bounds()
	if b.Dx() < 30 || b.Dx() > 31 || b.Dy() < 20 || b.Dy() > 21 {
		t.Fatalf("got %v, want about 30x20", b)
	}
	if got := img.RGBAAt(15, 10); got != white {
		t.Errorf("centre: got %v, want %v", got, white)
	}
	if got := img.RGBAAt(1, 1); got != bg {
		t.Errorf("margin: got %v, want %v", got, bg)
	}
}

func TestRenderOrientation(t *testing.T) {
	// Two dashes side by side in y; the one with the larger y must end up
	// at the top of the image.
	red := color.RGBA{R: 255, A: 255}
	dashes := []markup.Dash{
		{Position: markup.Pt(0, 0), Length: 1, Width: 1, Color: white},
		{Position: markup.Pt(0, 2), Length: 1, Width: 1, Color: red},
	}
	img := Render(dashes, Options{Scale: 10, Margin: 0, Background: color.RGBA{A: 255}})
	if got := img.RGBAAt(5, 5); got != red {
		t.Errorf("top: got %v, want %v", got, red)
	}
	if got := img.RGBAAt(5, 25); got != white {
		t.Errorf("bottom: got %v, want %v", got, white)
	}
}

func TestRenderEmpty(t *testing.T) {
	for _, tt := range []struct {
		margin int
		want   int
	}{
		{0, 1},
		{-3, 1},
		{4, 8},
	} {
		img := Render(nil, Options{Margin: tt.margin})
		if img.Bounds().Dx() != tt.want || img.Bounds().Dy() != tt.want {
			t.Errorf("margin %d: got %v, want %dx%d", tt.margin, img.Bounds(), tt.want, tt.want)
		}
		if got := img.RGBAAt(0, 0); got != DefaultOptions.Background {
			t.Errorf("margin %d: got background %v, want %v", tt.margin, got, DefaultOptions.Background)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	dashes := []markup.Dash{
		{Position: markup.Pt(3, 4), Angle: 1, Length: 1.5, Width: 0.15, Color: white},
	}
	if err := WritePNG(&buf, dashes, Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatal(err)
	}
}
