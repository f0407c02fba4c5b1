package life3d

import "time"

// Stats tracks run counters for display and sweeps.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	Births               int
	Deaths               int
	Blocks               int
	Resets               int
	StartTime            time.Time
}

// NewStats returns zeroed stats starting now.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one generation into the counters.
func (s *Stats) Update(res StepResult, blocks int, duration time.Duration) {
	s.TotalGenerations++
	s.Births += res.Births
	s.Deaths += res.Deaths
	s.Blocks = blocks
	if res.Population > s.PeakPopulation {
		s.PeakPopulation = res.Population
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(res.Population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(res.Population) * 0.1)
	}
}
