package life3d

import (
	"bytes"
	"image/color"
	"reflect"
	"slices"
	"testing"
)

func renderWorld(t *testing.T, cells ...Point) (*World, *Renderer, View) {
	t.Helper()
	w := NewWorld(WorldConfig{Columns: 128, Rows: 128, Stacks: 64, Rule: DefaultRule})
	if err := w.Load(cells, w.Center()); err != nil {
		t.Fatalf("load: %v", err)
	}
	cols, rows, stacks := w.Extents()
	return w, NewRenderer(640, 480, cols, rows, stacks), NewCamera().View(640, 480)
}

func TestRenderEmptyWorld(t *testing.T) {
	w, r, view := renderWorld(t)
	f := r.Render(w, view)
	if len(f.Cubes) != 0 || f.OnScreen {
		t.Fatalf("empty world drew %d cubes, on screen %v", len(f.Cubes), f.OnScreen)
	}
	bg := DefaultPalette.Background
	img := r.Image()
	if got := img.RGBAAt(320, 240); got != bg {
		t.Fatalf("center pixel = %v, want background %v", got, bg)
	}
}

func TestRenderSingleCube(t *testing.T) {
	w, r, view := renderWorld(t, Point{})
	f := r.Render(w, view)
	if len(f.Cubes) != 1 || !f.OnScreen {
		t.Fatalf("drew %d cubes, on screen %v; want 1 cube on screen", len(f.Cubes), f.OnScreen)
	}
	cube := f.Cubes[0]
	if cube.Cell != w.Center() {
		t.Fatalf("cube cell = %v, want %v", cube.Cell, w.Center())
	}
	want := []FaceKind{FaceZPlus, FaceXPlus, FaceYPlus}
	if !slices.Equal(cube.Faces, want) {
		t.Fatalf("faces = %v, want %v", cube.Faces, want)
	}
	if got := r.Image().RGBAAt(320, 240); got == DefaultPalette.Background {
		t.Fatal("center pixel was not painted")
	}
	c := w.list.Cell(w.list.Head())
	if !c.Visible || c.Dist < 49.9 || c.Dist > 50.1 {
		t.Fatalf("record visibility %v dist %v", c.Visible, c.Dist)
	}
}

func TestRenderWireframeOutlinesSides(t *testing.T) {
	w, r, view := renderWorld(t, Point{})
	r.Wireframe = true
	f := r.Render(w, view)
	if len(f.Cubes) != 1 {
		t.Fatalf("drew %d cubes, want 1", len(f.Cubes))
	}
	want := []FaceKind{FaceZPlus, FaceXMinus, FaceXPlus, FaceYMinus, FaceYPlus}
	if !slices.Equal(f.Cubes[0].Faces, want) {
		t.Fatalf("wireframe faces = %v, want %v", f.Cubes[0].Faces, want)
	}
	img := r.Image()
	for _, col := range []color.RGBA{DefaultPalette.X, DefaultPalette.Y, DefaultPalette.Z} {
		for y := 0; y < 480; y++ {
			for x := 0; x < 640; x++ {
				if img.RGBAAt(x, y) == col {
					t.Fatalf("wireframe filled a face with %v at (%d, %d)", col, x, y)
				}
			}
		}
	}
}

func TestRenderFarthestFirst(t *testing.T) {
	// The default camera sits on the +y side, so the +y cell is nearer.
	w, r, view := renderWorld(t, Point{0, 5, 0}, Point{})
	f := r.Render(w, view)
	if len(f.Cubes) != 2 {
		t.Fatalf("drew %d cubes, want 2", len(f.Cubes))
	}
	c := w.Center()
	if f.Cubes[0].Cell != c || f.Cubes[1].Cell != c.Add(Point{0, 5, 0}) {
		t.Fatalf("draw order = %v, %v", f.Cubes[0].Cell, f.Cubes[1].Cell)
	}
}

func TestRenderSkipsCellsBehindEye(t *testing.T) {
	// Roughly 1.2 times the default eye position.
	w, r, view := renderWorld(t, Point{10, 56, 21})
	f := r.Render(w, view)
	if len(f.Cubes) != 0 || f.OnScreen {
		t.Fatalf("cell behind the eye drew %d cubes, on screen %v", len(f.Cubes), f.OnScreen)
	}
	if c := w.list.Cell(w.list.Head()); c.Visible {
		t.Fatal("cell behind the eye marked visible")
	}
	if w.Population() != 1 {
		t.Fatal("rendering changed the population")
	}
}

func TestRenderClampsFarBuckets(t *testing.T) {
	w := NewWorld(WorldConfig{Columns: 8, Rows: 8, Stacks: 8, Rule: DefaultRule})
	if err := w.Spawn(4, 4, 4); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	r := NewRenderer(320, 240, 8, 8, 8)
	f := r.Render(w, NewCamera().View(320, 240))
	if len(f.Cubes) != 1 {
		t.Fatalf("drew %d cubes, want 1", len(f.Cubes))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	f := Families()[0]
	w, r, view := renderWorld(t, f.Patterns[1].Cells...)
	first := slices.Clone(r.Render(w, view).Cubes)
	pix := bytes.Clone(r.Image().Pix)
	second := r.Render(w, view)
	if !reflect.DeepEqual(first, second.Cubes) {
		t.Fatal("rendering twice produced different cubes")
	}
	if !bytes.Equal(pix, r.Image().Pix) {
		t.Fatal("rendering twice produced different pixels")
	}
	if len(first) == 0 {
		t.Fatal("pattern drew no cubes")
	}
}
