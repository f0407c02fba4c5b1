package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life3d/internal/sims/life3d"
)

type job struct {
	family  int
	pattern int
	rule    life3d.Rule
	name    string
	period  int
	cells   []life3d.Point
	drift   life3d.Point
}

type result struct {
	job
	detected   int
	population int
	peak       int
	peakBlocks int
	stagnantAt int
	elapsed    time.Duration
}

func (r result) ok() bool {
	return r.period == 0 || r.detected == r.period
}

func main() {
	steps := flag.Int("steps", 120, "generations to simulate per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 64, "world edge length")
	rule := flag.String("rule", "P", "rule or selector (P, G) to sweep")
	pngDir := flag.String("png", "", "directory for a final frame of every pattern")
	flag.Parse()

	sel, err := life3d.ParseSelection(*rule)
	if err != nil {
		log.Fatal(err)
	}
	jobs := buildJobs(sel)
	if len(jobs) == 0 {
		log.Fatalf("no library patterns for %s", sel)
	}
	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Sweeping %d patterns (%d workers, %d steps, %d^3 world)\n", len(jobs), *workers, *steps, *size)

	start := time.Now()
	results := make([]result, len(jobs))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runJob(j, *size, *steps, *pngDir)
			if err != nil {
				return errors.Wrapf(err, "%s %s", j.rule, j.name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].family != results[b].family {
			return results[a].family < results[b].family
		}
		return results[a].pattern < results[b].pattern
	})

	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "MISMATCH"
			failed++
		}
		stagnant := "-"
		if r.stagnantAt > 0 {
			stagnant = fmt.Sprint(r.stagnantAt)
		}
		fmt.Printf("%-9s %-28s period=%-2d detected=%-2d pop=%-4d peak=%-4d blocks=%-4d stagnant=%-4s %8s %s\n",
			r.rule, r.name, r.period, r.detected, r.population, r.peak, r.peakBlocks, stagnant,
			r.elapsed.Round(time.Microsecond), status)
	}
	fmt.Printf("\n%d patterns, %d mismatches, elapsed %s\n", len(results), failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func buildJobs(sel life3d.Selection) []job {
	var jobs []job
	families := life3d.Families()
	for _, fi := range sel.Candidates() {
		f := families[fi]
		for pi, p := range f.Patterns {
			jobs = append(jobs, job{
				family:  fi,
				pattern: pi,
				rule:    f.Rule,
				name:    p.Name,
				period:  p.Period,
				cells:   p.Cells,
			})
		}
		for gi, gl := range life3d.GlidersFor(f.Rule) {
			jobs = append(jobs, job{
				family:  fi,
				pattern: len(f.Patterns) + gi,
				rule:    f.Rule,
				name:    fmt.Sprintf("glider %d", gi),
				period:  gl.Period,
				cells:   gl.Cells,
				drift:   gl.Drift,
			})
		}
	}
	return jobs
}

// runJob evolves one pattern and reports the first generation at which it
// reappears, shifted by its drift for gliders.
func runJob(j job, size, steps int, pngDir string) (result, error) {
	start := time.Now()
	w := life3d.NewWorld(life3d.WorldConfig{Columns: size, Rows: size, Stacks: size, Rule: j.rule})
	origin := w.Center()
	if err := w.Load(j.cells, origin); err != nil {
		return result{}, err
	}
	initial := make(map[life3d.Point]bool, len(j.cells))
	for _, c := range w.Cells() {
		initial[c] = true
	}

	res := result{job: j, peak: w.Population()}
	for gen := 1; gen <= steps; gen++ {
		step, err := w.Step()
		if err != nil {
			return result{}, err
		}
		res.peak = max(res.peak, step.Population)
		res.peakBlocks = max(res.peakBlocks, w.Blocks())
		if step.Stagnant && res.stagnantAt == 0 {
			res.stagnantAt = gen
		}
		if res.detected == 0 {
			if offset, ok := shift(j.drift, gen, j.period); ok && matches(w, initial, offset) {
				res.detected = gen
			}
		}
		if step.Population == 0 {
			break
		}
	}
	res.population = w.Population()
	res.elapsed = time.Since(start)

	if pngDir != "" {
		if err := writeFrame(w, j, pngDir); err != nil {
			return result{}, err
		}
	}
	return res, nil
}

// shift is the displacement expected after gen generations. Gliders only
// line up at whole periods.
func shift(drift life3d.Point, gen, period int) (life3d.Point, bool) {
	if drift == (life3d.Point{}) {
		return drift, true
	}
	if period <= 0 || gen%period != 0 {
		return life3d.Point{}, false
	}
	n := gen / period
	return life3d.Point{X: drift.X * n, Y: drift.Y * n, Z: drift.Z * n}, true
}

func matches(w *life3d.World, initial map[life3d.Point]bool, offset life3d.Point) bool {
	if w.Population() != len(initial) {
		return false
	}
	cols, rows, stacks := w.Extents()
	for _, c := range w.Cells() {
		back := life3d.Point{
			X: (c.X - offset.X + cols) % cols,
			Y: (c.Y - offset.Y + rows) % rows,
			Z: (c.Z - offset.Z + stacks) % stacks,
		}
		if !initial[back] {
			return false
		}
	}
	return true
}

func writeFrame(w *life3d.World, j job, dir string) error {
	const width, height = 320, 240
	cols, rows, stacks := w.Extents()
	r := life3d.NewRenderer(width, height, cols, rows, stacks)
	frame := r.Render(w, life3d.NewCamera().View(width, height))
	caption := fmt.Sprintf("%s %s (%d cubes)", j.rule, j.name, len(frame.Cubes))
	r.Canvas().Label(6, height-8, caption, color.White)

	name := fmt.Sprintf("%02d-%02d-%s.png", j.family, j.pattern, slug(j.name))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return errors.Wrap(err, "creating frame")
	}
	if err := png.Encode(f, r.Image()); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding frame")
	}
	return f.Close()
}

func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return '-'
	}, s)
}
