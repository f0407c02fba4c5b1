package render

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(7, 5)
	c.Clear(red)
	img := c.Image()
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := img.RGBAAt(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, got)
			}
		}
	}
	if w, h := c.Size(); w != 7 || h != 5 {
		t.Fatalf("size = %dx%d, want 7x5", w, h)
	}
}

func TestFillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(black)
	square := []Vertex{{4, 4}, {12, 4}, {12, 12}, {4, 12}}
	c.FillPolygon(square, red)
	img := c.Image()
	if got := img.RGBAAt(8, 8); got != red {
		t.Fatalf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(15, 15); got != black {
		t.Fatalf("outside pixel = %v, want black", got)
	}
	if got := img.RGBAAt(3, 8); got != black {
		t.Fatalf("pixel left of the edge = %v, want black", got)
	}
}

func TestFillPolygonClipsToCanvas(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(black)
	c.FillPolygon([]Vertex{{-1e6, -1e6}, {1e6, -1e6}, {1e6, 1e6}, {-1e6, 1e6}}, red)
	if got := c.Image().RGBAAt(9, 9); got != red {
		t.Fatalf("covered corner = %v, want red", got)
	}
	c.Clear(black)
	c.FillPolygon([]Vertex{{-30, -30}, {-20, -30}, {-20, -20}}, red)
	if got := c.Image().RGBAAt(0, 0); got != black {
		t.Fatalf("off-canvas polygon painted %v", got)
	}
	c.FillPolygon([]Vertex{{1, 1}, {5, 5}}, red)
	if got := c.Image().RGBAAt(3, 3); got != black {
		t.Fatal("degenerate polygon painted pixels")
	}
}

func TestStrokePolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(black)
	c.StrokePolygon([]Vertex{{4.5, 4.5}, {14.5, 4.5}, {14.5, 14.5}, {4.5, 14.5}}, 1, white)
	img := c.Image()
	if got := img.RGBAAt(9, 4); got != white {
		t.Fatalf("top edge pixel = %v, want white", got)
	}
	if got := img.RGBAAt(14, 9); got != white {
		t.Fatalf("right edge pixel = %v, want white", got)
	}
	if got := img.RGBAAt(9, 9); got != black {
		t.Fatalf("interior pixel = %v, want black", got)
	}
}

func TestLabel(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Clear(black)
	c.Label(2, 14, "H", white)
	img := c.Image()
	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("label drew nothing")
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    color.RGBA
	}{
		{0, 1, 1, color.RGBA{R: 255, A: 255}},
		{1.0 / 3, 1, 1, color.RGBA{G: 255, A: 255}},
		{2.0 / 3, 1, 1, color.RGBA{B: 255, A: 255}},
		{1, 1, 1, color.RGBA{R: 255, A: 255}},
		{0.5, 0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{0.25, 1, 0, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := HueColor(tt.h, tt.s, tt.v); got != tt.want {
			t.Fatalf("HueColor(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}
