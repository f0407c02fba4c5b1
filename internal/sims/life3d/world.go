package life3d

import (
	"github.com/pkg/errors"

	pcore "life3d/pkg/core"
)

// DefaultStagnationLimit is the number of consecutive unchanged generations
// after which a world reports itself stagnant.
const DefaultStagnationLimit = 3

// WorldConfig sizes a World.
type WorldConfig struct {
	Columns int
	Rows    int
	Stacks  int
	Rule    Rule

	// MaxBlocks caps the number of allocated storage blocks. Zero means no
	// cap.
	MaxBlocks       int
	StagnationLimit int
}

// StepResult summarizes one generation.
type StepResult struct {
	Births     int
	Deaths     int
	Population int
	Stagnant   bool
}

// World is a sparse 3D Life universe: a cell store, the list of live cells and
// the rule that advances them.
type World struct {
	columns, rows, stacks int

	store *Store
	list  *Worklist
	rule  Rule

	generation      int
	quiet           int
	stagnationLimit int
}

var neighborhood = func() [MaxNeighbors]Point {
	var out [MaxNeighbors]Point
	i := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out[i] = Point{dx, dy, dz}
				i++
			}
		}
	}
	return out
}()

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	store := NewStore(cfg.Columns, cfg.Rows, cfg.Stacks, cfg.MaxBlocks)
	limit := cfg.StagnationLimit
	if limit <= 0 {
		limit = DefaultStagnationLimit
	}
	rule := cfg.Rule
	if rule == (Rule{}) {
		rule = DefaultRule
	}
	w := &World{
		store:           store,
		list:            NewWorklist(),
		rule:            rule,
		stagnationLimit: limit,
	}
	w.columns, w.rows, w.stacks = store.Extents()
	return w
}

// Extents returns the world dimensions.
func (w *World) Extents() (columns, rows, stacks int) {
	return w.columns, w.rows, w.stacks
}

// Center returns the middle cell of the world.
func (w *World) Center() Point {
	return Point{X: w.columns / 2, Y: w.rows / 2, Z: w.stacks / 2}
}

// Rule returns the active rule.
func (w *World) Rule() Rule { return w.rule }

// SetRule replaces the rule used by subsequent steps.
func (w *World) SetRule(r Rule) { w.rule = r }

// Population returns the number of live cells.
func (w *World) Population() int { return w.list.Len() }

// Generation returns the number of steps since the last Clear.
func (w *World) Generation() int { return w.generation }

// Blocks returns the number of allocated storage blocks.
func (w *World) Blocks() int { return w.store.Blocks() }

// Alive reports whether the cell at the coordinate is alive.
func (w *World) Alive(x, y, z int) bool {
	return isAlive(w.store.Read(x, y, z))
}

// Cells returns the coordinates of every live cell in list order.
func (w *World) Cells() []Point {
	out := make([]Point, 0, w.list.Len())
	for id := w.list.Head(); id != NoCell; id = w.list.Next(id) {
		c := w.list.Cell(id)
		out = append(out, Point{c.X, c.Y, c.Z})
	}
	return out
}

// Spawn brings the cell at the coordinate to life. Coordinates wrap.
func (w *World) Spawn(x, y, z int) error {
	x, y, z = wrap(x, w.columns), wrap(y, w.rows), wrap(z, w.stacks)
	if w.Alive(x, y, z) {
		return nil
	}
	_, err := w.append(x, y, z)
	return err
}

func (w *World) append(x, y, z int) (CellID, error) {
	if err := w.store.Write(x, y, z, aliveBit); err != nil {
		return NoCell, err
	}
	return w.list.Append(x, y, z), nil
}

// Clear kills every cell, frees all storage and restarts the generation
// counter.
func (w *World) Clear() {
	w.store.Clear()
	w.list.Reset()
	w.generation = 0
	w.quiet = 0
}

// Load spawns a pattern whose offsets are relative to origin. Cells that fall
// outside the world are skipped.
func (w *World) Load(cells []Point, origin Point) error {
	for _, c := range cells {
		p := origin.Add(c)
		if p.X < 0 || p.Y < 0 || p.Z < 0 || p.X >= w.columns || p.Y >= w.rows || p.Z >= w.stacks {
			continue
		}
		if err := w.Spawn(p.X, p.Y, p.Z); err != nil {
			return errors.Wrapf(err, "loading cell %v", p)
		}
	}
	return nil
}

// RandomSoup fills a cube of the given edge around the center, making each
// cell alive with the given percent chance.
func (w *World) RandomSoup(rng *pcore.RNG, percent, size int) error {
	c := w.Center()
	lo := Point{c.X - size/2, c.Y - size/2, c.Z - size/2}
	for z := lo.Z; z < lo.Z+size; z++ {
		for y := lo.Y; y < lo.Y+size; y++ {
			for x := lo.X; x < lo.X+size; x++ {
				if !rng.Percent(percent) {
					continue
				}
				if err := w.Spawn(x, y, z); err != nil {
					return errors.Wrap(err, "seeding random soup")
				}
			}
		}
	}
	return nil
}

// shotRange is how far from the center a glider is launched.
const shotRange = 10

// Shoot launches one of the rule's gliders from about ten cells off center,
// aimed back toward the center. It reports false when the rule has no known
// glider.
func (w *World) Shoot(rng *pcore.RNG) (bool, error) {
	options := GlidersFor(w.rule)
	if len(options) == 0 {
		return false, nil
	}
	g := options[rng.IntN(len(options))]
	c := w.Center()
	start, sign := aim(rng, c.X, g.Drift.X)
	y, sy := aim(rng, c.Y, g.Drift.Y)
	z, sz := aim(rng, c.Z, g.Drift.Z)
	for _, p := range g.Cells {
		if err := w.Spawn(start+p.X*sign, y+p.Y*sy, z+p.Z*sz); err != nil {
			return false, errors.Wrap(err, "shooting glider")
		}
	}
	return true, nil
}

// aim picks a launch coordinate on one axis and the mirror sign that makes the
// glider travel toward center along it. On an axis the glider does not travel,
// launches past the center are mirrored.
func aim(rng *pcore.RNG, center, drift int) (int, int) {
	if drift == 0 {
		v := center + rng.IntN(shotRange/2) - shotRange/4
		if v > center {
			return v, -1
		}
		return v, 1
	}
	if rng.Bool() {
		return center - shotRange, 1
	}
	return center + shotRange, -1
}

// Step advances the world by one generation. A store failure aborts the step;
// the world must then be cleared before further use.
func (w *World) Step() (StepResult, error) {
	w.list.Release()

	if err := w.spread(); err != nil {
		return StepResult{}, errors.Wrapf(err, "generation %d: spread", w.generation+1)
	}
	births, deaths, err := w.resolve()
	if err != nil {
		return StepResult{}, errors.Wrapf(err, "generation %d: resolve", w.generation+1)
	}
	w.store.Reclaim()
	w.generation++

	if births+deaths == 0 {
		w.quiet++
	} else {
		w.quiet = 0
	}
	res := StepResult{
		Births:     births,
		Deaths:     deaths,
		Population: w.list.Len(),
	}
	res.Stagnant = res.Population == 0 || w.quiet >= w.stagnationLimit
	return res, nil
}

// spread adds every live cell to the neighbor count of its 26 neighbors.
func (w *World) spread() error {
	for id := w.list.Head(); id != NoCell; id = w.list.Next(id) {
		c := w.list.Cell(id)
		for _, d := range neighborhood {
			if err := w.store.Increment(c.X+d.X, c.Y+d.Y, c.Z+d.Z, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolve walks the list from tail to head so cells born during the pass,
// which are appended at the tail, are not visited again. Dead neighbors are
// born or have their count cleared; the center then survives with a zeroed
// count or dies.
func (w *World) resolve() (births, deaths int, err error) {
	id := w.list.Tail()
	for id != NoCell {
		prev := w.list.Prev(id)
		c := *w.list.Cell(id)
		for _, d := range neighborhood {
			x := wrap(c.X+d.X, w.columns)
			y := wrap(c.Y+d.Y, w.rows)
			z := wrap(c.Z+d.Z, w.stacks)
			v := w.store.Read(x, y, z)
			if isAlive(v) {
				continue
			}
			if w.rule.Born(neighborCount(v)) {
				if _, err := w.append(x, y, z); err != nil {
					return births, deaths, err
				}
				births++
				continue
			}
			if v != 0 {
				if err := w.store.Write(x, y, z, 0); err != nil {
					return births, deaths, err
				}
			}
		}
		if w.rule.Survives(neighborCount(w.store.Read(c.X, c.Y, c.Z))) {
			err = w.store.Write(c.X, c.Y, c.Z, aliveBit)
		} else {
			err = w.store.Write(c.X, c.Y, c.Z, 0)
			w.list.Remove(id)
			deaths++
		}
		if err != nil {
			return births, deaths, err
		}
		id = prev
	}
	return births, deaths, nil
}
