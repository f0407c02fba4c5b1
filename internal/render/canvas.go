package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Vertex is a point on the canvas in pixel units.
type Vertex struct {
	X, Y float32
}

// Canvas is a CPU drawing surface for convex polygons and their outlines.
// Later draws cover earlier ones.
type Canvas struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	guard float32
	path  []Vertex
}

// NewCanvas allocates a w*h canvas.
func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:   vector.NewRasterizer(1, 1),
		guard: float32(2 * max(w, h)),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	fillRGBA(c.img.Pix, col)
}

// FillPolygon paints the interior of a convex polygon.
func (c *Canvas) FillPolygon(pts []Vertex, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.path = append(c.path[:0], pts...)
	c.drawPath(col)
}

// StrokePolygon outlines a closed polygon with lines of the given width.
func (c *Canvas) StrokePolygon(pts []Vertex, width float32, col color.RGBA) {
	for i := range pts {
		c.StrokeLine(pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// StrokeLine draws a segment as a thin quad.
func (c *Canvas) StrokeLine(a, b Vertex, width float32, col color.RGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l < 1e-3 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	// Extend along the segment so joined edges meet at the corners.
	ex, ey := dx/l*width/2, dy/l*width/2
	c.path = append(c.path[:0],
		Vertex{a.X + nx - ex, a.Y + ny - ey},
		Vertex{b.X + nx + ex, b.Y + ny + ey},
		Vertex{b.X - nx + ex, b.Y - ny + ey},
		Vertex{a.X - nx - ex, a.Y - ny - ey},
	)
	c.drawPath(col)
}

// drawPath rasterizes c.path into its clipped bounding box only.
func (c *Canvas) drawPath(col color.RGBA) {
	w, h := c.Size()
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for i, p := range c.path {
		p.X = clampf(p.X, -c.guard, float32(w)+c.guard)
		p.Y = clampf(p.Y, -c.guard, float32(h)+c.guard)
		c.path[i] = p
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	c.ras.Reset(r.Dx(), r.Dy())
	c.ras.MoveTo(c.path[0].X-ox, c.path[0].Y-oy)
	for _, p := range c.path[1:] {
		c.ras.LineTo(p.X-ox, p.Y-oy)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, r, image.NewUniform(col), image.Point{})
}

// Label writes text with its baseline at (x, y) using the 7x13 bitmap face.
func (c *Canvas) Label(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
