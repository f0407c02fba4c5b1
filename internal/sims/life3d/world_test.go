package life3d

import (
	"testing"

	"github.com/pkg/errors"

	pcore "life3d/pkg/core"
)

func newTestWorld(t *testing.T, n int, rule string) *World {
	t.Helper()
	return NewWorld(WorldConfig{Columns: n, Rows: n, Stacks: n, Rule: MustParseRule(rule)})
}

func cellSet(w *World) map[Point]bool {
	out := make(map[Point]bool, w.Population())
	for _, c := range w.Cells() {
		out[c] = true
	}
	return out
}

// checkInvariants verifies the store/list bijection, that live cells carry
// no leftover count and that no allocated block is empty.
func checkInvariants(t *testing.T, w *World) {
	t.Helper()
	listed := cellSet(w)
	if len(listed) != w.Population() {
		t.Fatalf("list holds %d records for %d distinct cells", w.Population(), len(listed))
	}
	alive := 0
	w.store.forEachBlock(func(bx, by, bz int, b *block) {
		if b.empty() {
			t.Fatalf("empty block at (%d,%d,%d) survived reclaim", bx, by, bz)
		}
		for off, v := range b {
			p := Point{bx + off&blockMask, by + (off>>2)&blockMask, bz + off>>4}
			if !isAlive(v) {
				if v != 0 {
					t.Fatalf("dead cell %v keeps count %d", p, neighborCount(v))
				}
				continue
			}
			alive++
			if neighborCount(v) != 0 {
				t.Fatalf("live cell %v keeps count %d", p, neighborCount(v))
			}
			if !listed[p] {
				t.Fatalf("live cell %v has no record", p)
			}
		}
	})
	if alive != len(listed) {
		t.Fatalf("store has %d live cells, list has %d", alive, len(listed))
	}
}

func stepN(t *testing.T, w *World, n int) StepResult {
	t.Helper()
	var res StepResult
	for i := 0; i < n; i++ {
		var err error
		res, err = w.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
		checkInvariants(t, w)
	}
	return res
}

func TestGliderRoundTrip(t *testing.T) {
	for _, rule := range []string{"S45/B5", "S567/B6"} {
		for i, g := range GlidersFor(MustParseRule(rule)) {
			w := newTestWorld(t, 32, rule)
			origin := Point{8, 8, 8}
			if err := w.Load(g.Cells, origin); err != nil {
				t.Fatalf("%s glider %d: load: %v", rule, i, err)
			}
			stepN(t, w, g.Period)

			got := cellSet(w)
			if len(got) != len(g.Cells) {
				t.Fatalf("%s glider %d: population %d after one period, want %d", rule, i, len(got), len(g.Cells))
			}
			for _, c := range g.Cells {
				want := origin.Add(c).Add(g.Drift)
				if !got[want] {
					t.Fatalf("%s glider %d: missing %v after one period", rule, i, want)
				}
			}
		}
	}
}

func TestGliderTwoGenerations(t *testing.T) {
	w := newTestWorld(t, 32, "S45/B5")
	g := GlidersFor(w.Rule())[0]
	if err := w.Load(g.Cells, Point{10, 10, 10}); err != nil {
		t.Fatalf("load: %v", err)
	}
	res := stepN(t, w, 2)
	if res.Population != 10 || w.Population() != 10 {
		t.Fatalf("population after 2 generations = %d (list %d), want 10", res.Population, w.Population())
	}
}

func TestPresetPeriods(t *testing.T) {
	for _, f := range Families() {
		for _, p := range f.Patterns {
			if p.Period == 0 {
				continue
			}
			w := NewWorld(WorldConfig{Columns: 32, Rows: 32, Stacks: 32, Rule: f.Rule})
			if err := w.Load(p.Cells, w.Center()); err != nil {
				t.Fatalf("%s %s: load: %v", f.Rule, p.Name, err)
			}
			start := cellSet(w)
			stepN(t, w, p.Period)
			got := cellSet(w)
			if len(got) != len(start) {
				t.Fatalf("%s %s: population %d after period %d, want %d", f.Rule, p.Name, len(got), p.Period, len(start))
			}
			for c := range start {
				if !got[c] {
					t.Fatalf("%s %s: cell %v missing after period %d", f.Rule, p.Name, c, p.Period)
				}
			}
		}
	}
}

func TestEmptyWorldStagnates(t *testing.T) {
	w := newTestWorld(t, 16, "S45/B5")
	res, err := w.Step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !res.Stagnant {
		t.Fatal("empty world should report stagnation on the first step")
	}
	if res.Population != 0 || w.Blocks() != 0 {
		t.Fatalf("empty world has population %d and %d blocks", res.Population, w.Blocks())
	}
}

func TestStillLifeStagnatesAfterLimit(t *testing.T) {
	w := NewWorld(WorldConfig{Columns: 16, Rows: 16, Stacks: 16, Rule: MustParseRule("S45/B5"), StagnationLimit: 2})
	// Two 2x2 layers make a block where every cell sees 7 neighbors, which
	// S7/B9 keeps forever.
	w.SetRule(MustParseRule("S7/B9"))
	for _, p := range []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}} {
		if err := w.Spawn(4+p.X, 4+p.Y, 4+p.Z); err != nil {
			t.Fatalf("spawn: %v", err)
		}
	}
	res := stepN(t, w, 1)
	if res.Stagnant || res.Population != 8 {
		t.Fatalf("after 1 quiet step: stagnant=%v population=%d", res.Stagnant, res.Population)
	}
	res = stepN(t, w, 1)
	if !res.Stagnant {
		t.Fatal("still life should be stagnant after the limit")
	}
}

func TestIsolatedCellDies(t *testing.T) {
	w := newTestWorld(t, 16, "S45/B5")
	if err := w.Spawn(5, 6, 7); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if w.Blocks() != 1 {
		t.Fatalf("blocks after spawn = %d, want 1", w.Blocks())
	}
	res := stepN(t, w, 1)
	if res.Deaths != 1 || res.Births != 0 {
		t.Fatalf("births=%d deaths=%d, want 0 and 1", res.Births, res.Deaths)
	}
	if w.Population() != 0 || w.list.Head() != NoCell {
		t.Fatalf("population after death = %d", w.Population())
	}
	if w.Blocks() != 0 {
		t.Fatalf("blocks after reclaim = %d, want 0", w.Blocks())
	}
	if !res.Stagnant {
		t.Fatal("world with no cells should be stagnant")
	}
}

func TestSpreadWrapsAtOrigin(t *testing.T) {
	w := NewWorld(WorldConfig{Columns: 16, Rows: 12, Stacks: 8, Rule: DefaultRule})
	if err := w.Spawn(0, 0, 0); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if err := w.spread(); err != nil {
		t.Fatalf("spread: %v", err)
	}
	for _, p := range []Point{{15, 11, 7}, {15, 0, 0}, {0, 11, 0}, {0, 0, 7}, {1, 1, 1}, {15, 1, 7}} {
		if got := neighborCount(w.store.Read(p.X, p.Y, p.Z)); got != 1 {
			t.Fatalf("count at %v = %d, want 1", p, got)
		}
	}
	if got := neighborCount(w.store.Read(0, 0, 0)); got != 0 {
		t.Fatalf("center count = %d, want 0", got)
	}
	if got := w.store.Read(-1, -1, -1); got != w.store.Read(15, 11, 7) {
		t.Fatalf("negative coordinates do not wrap: %d", got)
	}
}

func TestStoreFullAbortsStep(t *testing.T) {
	w := NewWorld(WorldConfig{Columns: 16, Rows: 16, Stacks: 16, Rule: DefaultRule, MaxBlocks: 1})
	if err := w.Spawn(0, 0, 0); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	_, err := w.Step()
	if err == nil {
		t.Fatal("expected step to fail when neighbors need more blocks")
	}
	if errors.Cause(err) != ErrStoreFull {
		t.Fatalf("error cause = %v, want ErrStoreFull", errors.Cause(err))
	}
	w.Clear()
	if w.Population() != 0 || w.Blocks() != 0 || w.Generation() != 0 {
		t.Fatal("Clear should discard every cell and block")
	}
}

func TestSpawnIsIdempotent(t *testing.T) {
	w := newTestWorld(t, 8, "S45/B5")
	for i := 0; i < 3; i++ {
		if err := w.Spawn(9, 9, 9); err != nil {
			t.Fatalf("spawn: %v", err)
		}
	}
	if w.Population() != 1 || !w.Alive(1, 1, 1) {
		t.Fatalf("population = %d, wrapped cell alive = %v", w.Population(), w.Alive(1, 1, 1))
	}
}

func TestLoadSkipsOutOfBounds(t *testing.T) {
	w := newTestWorld(t, 8, "S45/B5")
	if err := w.Load([]Point{{0, 0, 0}, {-5, 0, 0}, {0, 9, 0}}, Point{1, 1, 1}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Population() != 1 {
		t.Fatalf("population = %d, want 1", w.Population())
	}
}

// denseStep is a brute-force toroidal reference.
func denseStep(cells map[Point]bool, n int, r Rule) map[Point]bool {
	next := map[Point]bool{}
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				count := 0
				for _, d := range neighborhood {
					p := Point{(x + d.X + n) % n, (y + d.Y + n) % n, (z + d.Z + n) % n}
					if cells[p] {
						count++
					}
				}
				p := Point{x, y, z}
				if (cells[p] && r.Survives(count)) || (!cells[p] && r.Born(count)) {
					next[p] = true
				}
			}
		}
	}
	return next
}

func TestMatchesDenseReference(t *testing.T) {
	const n = 12
	for _, rule := range []string{"S45/B5", "S567/B6", "S56/B5", "S4567/B5"} {
		w := newTestWorld(t, n, rule)
		if err := w.RandomSoup(pcore.NewRNG(7), 30, 8); err != nil {
			t.Fatalf("%s: soup: %v", rule, err)
		}
		want := cellSet(w)
		for gen := 1; gen <= 8; gen++ {
			want = denseStep(want, n, w.Rule())
			stepN(t, w, 1)
			got := cellSet(w)
			if len(got) != len(want) {
				t.Fatalf("%s gen %d: population %d, reference %d", rule, gen, len(got), len(want))
			}
			for p := range want {
				if !got[p] {
					t.Fatalf("%s gen %d: reference cell %v missing", rule, gen, p)
				}
			}
		}
	}
}

func TestShootLaunchesGlider(t *testing.T) {
	w := NewWorld(WorldConfig{Columns: 64, Rows: 64, Stacks: 64, Rule: MustParseRule("S45/B5")})
	ok, err := w.Shoot(pcore.NewRNG(3))
	if err != nil || !ok {
		t.Fatalf("shoot: ok=%v err=%v", ok, err)
	}
	if w.Population() != 10 {
		t.Fatalf("population after shot = %d, want 10", w.Population())
	}
	before := distanceToCenter(w)
	stepN(t, w, 8)
	if w.Population() != 10 {
		t.Fatalf("glider population after 8 generations = %d, want 10", w.Population())
	}
	if after := distanceToCenter(w); after >= before {
		t.Fatalf("glider moved away from center: %d -> %d", before, after)
	}

	w.SetRule(MustParseRule("S67/B67"))
	if ok, _ := w.Shoot(pcore.NewRNG(3)); ok {
		t.Fatal("rule without gliders should not shoot")
	}
}

func distanceToCenter(w *World) int {
	c := w.Center()
	total := 0
	for _, p := range w.Cells() {
		total += abs(p.X-c.X) + abs(p.Y-c.Y) + abs(p.Z-c.Z)
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestAimMirrorsPastCenter(t *testing.T) {
	rng := pcore.NewRNG(11)
	const center = 32
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v, sign := aim(rng, center, 0)
		if v < center-shotRange/4 || v > center+shotRange/4 {
			t.Fatalf("launch %d outside %d±%d", v, center, shotRange/4)
		}
		if (v > center) != (sign == -1) {
			t.Fatalf("aim at %d gave sign %d", v, sign)
		}
		seen[sign] = true
	}
	if !seen[1] || !seen[-1] {
		t.Fatalf("signs seen %v, want both", seen)
	}

	for i := 0; i < 50; i++ {
		v, sign := aim(rng, center, 1)
		if (v < center) != (sign == 1) {
			t.Fatalf("drifting axis: launch %d sign %d does not head to center", v, sign)
		}
	}
}
