//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"life3d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var keyHelp = []string{
	"space  pause/resume",
	"n      single step",
	"r      reset, same seed",
	"s      reset, new seed",
	"c, ->  next pattern",
	"w      wireframe",
	"i      info, h help",
	"q      quit",
}

// Overlay draws a status box and key help on top of the simulation view.
type Overlay struct {
	sim      core.Sim
	showInfo bool
	showHelp bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, showInfo: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay sections.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	var lines []string
	if o.showInfo {
		lines = append(lines, o.statusLines()...)
	}
	if paused {
		lines = append(lines, "-- paused --")
	}
	if o.showHelp {
		lines = append(lines, keyHelp...)
	}
	if len(lines) == 0 {
		return
	}

	const (
		padding    = 6
		lineHeight = 15
		charWidth  = 7
	)
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*charWidth)
	}
	o.drawBox(screen, padding, padding, width+2*padding, len(lines)*lineHeight+padding, color.RGBA{A: 150})
	face := basicfont.Face7x13
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	for i, l := range lines {
		text.Draw(screen, l, face, 2*padding, padding+(i+1)*lineHeight-3, fg)
	}
}

func (o *Overlay) statusLines() []string {
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return []string{o.sim.Name()}
	}
	snap := provider.Parameters()
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	return []string{
		fmt.Sprintf("%s  %s", o.sim.Name(), value("rule")),
		value("pattern"),
		fmt.Sprintf("gen %s  cells %s", value("generation"), value("population")),
		fmt.Sprintf("blocks %s  cubes %s", value("blocks"), value("cubes")),
		fmt.Sprintf("peak %s  avg %s  %s gen/s", value("peak_population"), value("average_population"), value("generations_per_second")),
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
