package life3d

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"life3d/internal/render"
)

const (
	bucketsPerUnit = 10
	cubeHalf       = 0.45
	nearLimit      = 1.5
	outlineWidth   = 1
)

// FaceKind names a cube face by the axis and side of its outward normal.
type FaceKind uint8

const (
	FaceZMinus FaceKind = iota
	FaceZPlus
	FaceXMinus
	FaceXPlus
	FaceYMinus
	FaceYPlus
)

// Corner indexes follow x + 2y + 4z, with 0 the low side of each axis.
var faceCorners = [...][4]int{
	FaceZMinus: {0, 1, 3, 2},
	FaceZPlus:  {4, 5, 7, 6},
	FaceXMinus: {0, 2, 6, 4},
	FaceXPlus:  {1, 3, 7, 5},
	FaceYMinus: {0, 1, 5, 4},
	FaceYPlus:  {2, 3, 7, 6},
}

// Palette colors the cube faces.
type Palette struct {
	Background color.RGBA
	Outline    color.RGBA
	// X, Y and Z color faces whose normal lies along that axis.
	X, Y, Z color.RGBA
}

// DefaultPalette is green x faces, red y faces and blue z faces on black.
var DefaultPalette = Palette{
	Background: color.RGBA{A: 255},
	Outline:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	X:          color.RGBA{G: 200, A: 255},
	Y:          color.RGBA{R: 200, A: 255},
	Z:          color.RGBA{B: 220, A: 255},
}

// DrawnCube records one cube as it was painted.
type DrawnCube struct {
	Cell    Point
	Corners [8]render.Vertex
	Faces   []FaceKind
}

// Frame describes the last rendered image.
type Frame struct {
	Cubes []DrawnCube
	// OnScreen is false when no visible cell lands on the surface.
	OnScreen bool
}

// Renderer draws the live cells of a world as cubes, farthest first, so
// nearer cubes paint over farther ones without a depth buffer.
type Renderer struct {
	width, height int
	canvas        *render.Canvas

	heads []CellID
	tails []CellID

	Wireframe bool
	Palette   Palette

	face  [4]render.Vertex
	frame Frame
}

// NewRenderer creates a renderer for a width*height surface and a world with
// the given extents.
func NewRenderer(width, height, columns, rows, stacks int) *Renderer {
	n := (columns + rows + stacks) * bucketsPerUnit
	if n < 1 {
		n = 1
	}
	return &Renderer{
		width:   width,
		height:  height,
		canvas:  render.NewCanvas(width, height),
		heads:   make([]CellID, n),
		tails:   make([]CellID, n),
		Palette: DefaultPalette,
	}
}

// Image returns the rendered surface.
func (r *Renderer) Image() *image.RGBA { return r.canvas.Image() }

// Canvas exposes the drawing surface for overlays.
func (r *Renderer) Canvas() *render.Canvas { return r.canvas }

// Render paints the world as seen from view. The returned frame shares
// storage with the renderer and is valid until the next call.
func (r *Renderer) Render(w *World, view View) Frame {
	r.canvas.Clear(r.Palette.Background)
	r.frame.Cubes = r.frame.Cubes[:0]
	r.frame.OnScreen = false

	center := w.Center()
	origin := mgl64.Vec3{float64(center.X), float64(center.Y), float64(center.Z)}
	r.sort(w.list, view, origin)
	r.frame.OnScreen = r.onScreen(w.list, view, origin)

	for b := len(r.heads) - 1; b >= 0; b-- {
		for id := r.heads[b]; id != NoCell; id = w.list.Cell(id).bucket {
			c := w.list.Cell(id)
			if !c.Visible {
				continue
			}
			p := mgl64.Vec3{float64(c.X), float64(c.Y), float64(c.Z)}.Sub(origin)
			r.drawCube(Point{c.X, c.Y, c.Z}, p, view)
		}
	}
	return r.frame
}

// sort refreshes every record's distance and visibility and chains it into
// its distance bucket.
func (r *Renderer) sort(l *Worklist, view View, origin mgl64.Vec3) {
	for i := range r.heads {
		r.heads[i], r.tails[i] = NoCell, NoCell
	}
	last := len(r.heads) - 1
	for id := l.Head(); id != NoCell; id = l.Next(id) {
		c := l.Cell(id)
		p := mgl64.Vec3{float64(c.X), float64(c.Y), float64(c.Z)}.Sub(origin)
		d := view.Eye.Sub(p).Len()
		c.Dist = d
		c.Visible = view.Facing(p) && d > nearLimit
		c.bucket = NoCell

		b := int(d * bucketsPerUnit)
		if b > last {
			b = last
		}
		if r.heads[b] == NoCell {
			r.heads[b] = id
		} else {
			l.Cell(r.tails[b]).bucket = id
		}
		r.tails[b] = id
	}
}

// onScreen reports whether any visible cell, widened by its projected
// radius, overlaps the surface.
func (r *Renderer) onScreen(l *Worklist, view View, origin mgl64.Vec3) bool {
	rsize := 0.47 * float64(r.width) / (HalfScreenD * 2)
	a := math.Mod(math.Abs(view.Azimuth), 90)
	if a > 45 {
		a = 90 - a
	}
	rsize /= math.Cos(mgl64.DegToRad(a))

	for id := l.Head(); id != NoCell; id = l.Next(id) {
		c := l.Cell(id)
		if !c.Visible {
			continue
		}
		p := mgl64.Vec3{float64(c.X), float64(c.Y), float64(c.Z)}.Sub(origin)
		sx, sy, ok := view.Project(p)
		if !ok {
			continue
		}
		rad := rsize * EyeToScreen / c.Dist
		if sx+rad >= 0 && sy+rad >= 0 && sx-rad < float64(r.width) && sy-rad < float64(r.height) {
			return true
		}
	}
	return false
}

func (r *Renderer) drawCube(cell Point, p mgl64.Vec3, view View) {
	var dc DrawnCube
	dc.Cell = cell
	out := 0
	i := 0
	for _, dz := range [2]float64{-cubeHalf, cubeHalf} {
		for _, dy := range [2]float64{-cubeHalf, cubeHalf} {
			for _, dx := range [2]float64{-cubeHalf, cubeHalf} {
				sx, sy, ok := view.Project(p.Add(mgl64.Vec3{dx, dy, dz}))
				if !ok {
					return
				}
				if !view.Inside(sx, sy) {
					out++
				}
				dc.Corners[i] = render.Vertex{X: float32(sx), Y: float32(sy)}
				i++
			}
		}
	}
	if out == len(dc.Corners) {
		return
	}

	toEye := view.Eye.Sub(p)
	dx, dy, dz := toEye.Elem()
	if dz > cubeHalf {
		dc.Faces = append(dc.Faces, FaceZPlus)
	} else if dz < -cubeHalf {
		dc.Faces = append(dc.Faces, FaceZMinus)
	}
	if r.Wireframe {
		dc.Faces = append(dc.Faces, FaceXMinus, FaceXPlus, FaceYMinus, FaceYPlus)
	} else {
		if dx > cubeHalf {
			dc.Faces = append(dc.Faces, FaceXPlus)
		} else if dx < -cubeHalf {
			dc.Faces = append(dc.Faces, FaceXMinus)
		}
		if dy > cubeHalf {
			dc.Faces = append(dc.Faces, FaceYPlus)
		} else if dy < -cubeHalf {
			dc.Faces = append(dc.Faces, FaceYMinus)
		}
	}

	for _, f := range dc.Faces {
		for k, ci := range faceCorners[f] {
			r.face[k] = dc.Corners[ci]
		}
		if !r.Wireframe {
			r.canvas.FillPolygon(r.face[:], r.faceColor(f))
		}
		r.canvas.StrokePolygon(r.face[:], outlineWidth, r.Palette.Outline)
	}
	r.frame.Cubes = append(r.frame.Cubes, dc)
}

func (r *Renderer) faceColor(f FaceKind) color.RGBA {
	switch f {
	case FaceXMinus, FaceXPlus:
		return r.Palette.X
	case FaceYMinus, FaceYPlus:
		return r.Palette.Y
	}
	return r.Palette.Z
}
