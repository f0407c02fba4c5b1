package main

import (
	"os"
	"path/filepath"
	"testing"

	"life3d/internal/sims/life3d"
)

func TestGliderJobsDetectPeriod(t *testing.T) {
	sel, err := life3d.ParseSelection("G")
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	jobs := buildJobs(sel)
	if len(jobs) != 18+14+6 {
		t.Fatalf("built %d jobs, want 38", len(jobs))
	}
	for _, j := range jobs {
		if j.drift == (life3d.Point{}) {
			continue
		}
		res, err := runJob(j, 32, 8, "")
		if err != nil {
			t.Fatalf("%s %s: %v", j.rule, j.name, err)
		}
		if !res.ok() || res.detected != 4 {
			t.Fatalf("%s %s: detected period %d", j.rule, j.name, res.detected)
		}
	}
}

func TestWriteFrame(t *testing.T) {
	dir := t.TempDir()
	f := life3d.Families()[0]
	j := job{family: 0, pattern: 0, rule: f.Rule, name: f.Patterns[0].Name, period: f.Patterns[0].Period, cells: f.Patterns[0].Cells}
	if _, err := runJob(j, 32, 2, dir); err != nil {
		t.Fatalf("runJob: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "00-00-blinker.png")); err != nil {
		t.Fatalf("frame not written: %v", err)
	}
}
