package life3d

import (
	"image"
	"log"
	"time"

	"github.com/pkg/errors"

	"life3d/internal/core"
	"life3d/internal/render"
	pcore "life3d/pkg/core"
)

// Effect runs a World and renders it every step. When a pattern dies out,
// settles, drifts off screen or runs for too long, the effect loads another
// one.
type Effect struct {
	cfg Config
	log *log.Logger
	rng *pcore.RNG

	sel        Selection
	candidates []int
	family     int
	pattern    int
	label      string

	world    *World
	renderer *Renderer
	camera   *Camera
	frame    Frame
	stats    *Stats
	seed     int64
}

// New returns an effect with the default configuration.
func New() *Effect {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns an effect for cfg. Call Reset before stepping.
func NewWithConfig(cfg Config) *Effect {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = def.Cycles
	}
	e := &Effect{
		cfg:    cfg,
		log:    log.Default(),
		camera: NewCamera(),
		stats:  NewStats(),
		family: -1,
	}
	e.camera.Speed = cfg.CameraSpeed
	sel, err := cfg.Selection()
	if err != nil {
		e.log.Printf("life3d: %v; using %s", err, DefaultRule)
	}
	e.sel = sel
	e.candidates = sel.Candidates()
	e.world = NewWorld(cfg.World(e.initialRule()))
	cols, rows, stacks := e.world.Extents()
	e.renderer = NewRenderer(cfg.Width, cfg.Height, cols, rows, stacks)
	e.renderer.Wireframe = cfg.Wireframe
	return e
}

func (e *Effect) initialRule() Rule {
	if e.sel.Mode == SelectFixed {
		return e.sel.Rule
	}
	if len(e.candidates) > 0 {
		return families[e.candidates[0]].Rule
	}
	return DefaultRule
}

// SetLogger replaces the logger used for warnings and verbose output.
func (e *Effect) SetLogger(l *log.Logger) {
	if l != nil {
		e.log = l
	}
}

// Name returns the simulation identifier.
func (e *Effect) Name() string { return "life3d" }

// Size returns the frame dimensions.
func (e *Effect) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Frame returns the last rendered image.
func (e *Effect) Frame() *image.RGBA { return e.renderer.Image() }

// LastFrame describes the cubes drawn by the last render.
func (e *Effect) LastFrame() Frame { return e.frame }

// World exposes the running world.
func (e *Effect) World() *World { return e.world }

// Stats returns the run counters.
func (e *Effect) Stats() *Stats { return e.stats }

// Pattern returns the name of the loaded pattern.
func (e *Effect) Pattern() string { return e.label }

// Wireframe reports whether cubes are drawn as outlines.
func (e *Effect) Wireframe() bool { return e.renderer.Wireframe }

// SetWireframe switches between solid and outline cubes and redraws.
func (e *Effect) SetWireframe(on bool) {
	e.renderer.Wireframe = on
	e.cfg.Wireframe = on
	e.render()
}

// Reset reloads the world from seed. A zero seed uses the configured one.
// The configured pattern file, if any, is loaded instead of a library
// pattern.
func (e *Effect) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.seed = seed
	e.rng = pcore.NewRNG(seed)
	e.stats = NewStats()
	if e.cfg.PatternFile != "" {
		e.pickFamily()
		e.world.Clear()
		if err := e.loadFile(e.cfg.PatternFile); err != nil {
			e.log.Printf("life3d: %v; seeding random soup", err)
			e.loadSoup()
		}
		e.render()
		return
	}
	e.reload()
}

// Step advances one generation and renders it.
func (e *Effect) Step() {
	if e.rng == nil {
		e.Reset(0)
	}
	start := time.Now()
	res, err := e.world.Step()
	if err != nil {
		e.log.Printf("life3d: %v; resetting world", err)
		e.restart()
		return
	}
	e.stats.Update(res, e.world.Blocks(), time.Since(start))
	e.camera.Advance()
	e.render()

	gen := e.world.Generation()
	switch {
	case res.Stagnant:
		e.verbosef("%s stagnant after %d generations", e.label, gen)
		e.restart()
	case gen > e.cfg.Cycles:
		e.restart()
	case !e.frame.OnScreen:
		e.verbosef("%s left the view", e.label)
		e.restart()
	case e.cfg.BatchCount > 0 && gen%e.cfg.BatchCount == 0:
		if _, err := e.world.Shoot(e.rng); err != nil {
			e.log.Printf("life3d: %v; resetting world", err)
			e.restart()
		}
	}
}

// NextPattern loads the next library pattern. After the last slot of a
// family the P and G selectors move on to the next family.
func (e *Effect) NextPattern() {
	if e.rng == nil {
		e.Reset(0)
	}
	e.pattern++
	if e.pattern >= e.slots() {
		e.pattern = 0
		if e.sel.Mode != SelectFixed && len(e.candidates) > 0 {
			pos := 0
			for i, f := range e.candidates {
				if f == e.family {
					pos = i
				}
			}
			e.setFamily(e.candidates[(pos+1)%len(e.candidates)])
		}
	}
	e.load()
}

// restart counts a reset and reloads.
func (e *Effect) restart() {
	e.stats.Resets++
	e.reload()
}

// reload picks a fresh family and pattern at random.
func (e *Effect) reload() {
	e.pickFamily()
	e.pattern = e.rng.IntN(e.slots())
	e.load()
}

func (e *Effect) pickFamily() {
	switch {
	case e.sel.Mode != SelectFixed && len(e.candidates) > 0:
		e.setFamily(e.candidates[e.rng.IntN(len(e.candidates))])
	case len(e.candidates) > 0:
		e.setFamily(e.candidates[0])
	default:
		e.family = -1
		e.world.SetRule(e.sel.Rule)
	}
	e.renderer.Palette = randomPalette(e.rng)
}

func (e *Effect) setFamily(i int) {
	e.family = i
	e.world.SetRule(families[i].Rule)
}

// slots counts the library patterns of the current family plus two random
// soup slots.
func (e *Effect) slots() int {
	if e.family < 0 {
		return 2
	}
	return len(families[e.family].Patterns) + 2
}

func (e *Effect) load() {
	e.world.Clear()
	if e.family >= 0 && e.pattern < len(families[e.family].Patterns) {
		p := families[e.family].Patterns[e.pattern]
		if err := e.world.Load(p.Cells, e.world.Center()); err != nil {
			e.log.Printf("life3d: %v; seeding random soup", err)
			e.world.Clear()
			e.loadSoup()
		} else {
			e.label = p.Name
		}
	} else {
		e.loadSoup()
	}
	e.verbosef("rule %s, pattern %s", e.world.Rule(), e.label)
	e.render()
}

func (e *Effect) loadSoup() {
	e.label = "random soup"
	if err := e.world.RandomSoup(e.rng, e.cfg.SoupPercent, e.cfg.SoupSize); err != nil {
		e.log.Printf("life3d: %v", err)
		e.world.Clear()
	}
}

func (e *Effect) loadFile(path string) error {
	p, err := LoadPatternFile(path)
	if err != nil {
		return err
	}
	if err := e.world.Load(p.Cells, e.world.Center()); err != nil {
		e.world.Clear()
		return errors.Wrapf(err, "loading %s", p.Name)
	}
	e.label = p.Name
	return nil
}

func (e *Effect) render() {
	w, h := e.cfg.Width, e.cfg.Height
	e.frame = e.renderer.Render(e.world, e.camera.View(w, h))
}

func (e *Effect) verbosef(format string, args ...any) {
	if e.cfg.Verbose {
		e.log.Printf("life3d: "+format, args...)
	}
}

// randomPalette picks each axis color from a different third of the hue
// wheel, in random order.
func randomPalette(rng *pcore.RNG) Palette {
	p := DefaultPalette
	first := rng.IntN(3)
	var hues [3]float64
	for band := 0; band < 3; band++ {
		hues[(first+band)%3] = (float64(band) + rng.Float64()) / 3
	}
	p.X = render.HueColor(hues[0], 0.85, 0.9)
	p.Y = render.HueColor(hues[1], 0.85, 0.9)
	p.Z = render.HueColor(hues[2], 0.85, 0.9)
	return p
}

func init() {
	core.Register("life3d", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
