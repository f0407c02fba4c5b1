package life3d

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the life3d effect.
type Config struct {
	// Width and Height size the rendered frame in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	Stacks  int `json:"stacks"`

	// Rule is "S<digits>/B<digits>", a legacy four-digit rule, or one of the
	// selectors "P" and "G".
	Rule        string `json:"rule"`
	PatternFile string `json:"pattern_file"`
	Seed        int64  `json:"seed"`

	// Cycles is the number of generations before a new pattern is chosen.
	Cycles int `json:"cycles"`
	// BatchCount is the glider shooting interval in generations. Zero
	// disables the shooter.
	BatchCount      int  `json:"batch_count"`
	StagnationLimit int  `json:"stagnation_limit"`
	MaxBlocks       int  `json:"max_blocks"`
	SoupPercent     int  `json:"soup_percent"`
	SoupSize        int  `json:"soup_size"`
	Wireframe       bool `json:"wireframe"`
	Verbose         bool `json:"verbose"`

	// CameraSpeed scales how fast the camera wanders. Zero holds the
	// classic fixed view.
	CameraSpeed float64 `json:"camera_speed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          480,
		Columns:         128,
		Rows:            128,
		Stacks:          64,
		Rule:            "G",
		Seed:            1337,
		Cycles:          85,
		BatchCount:      35,
		StagnationLimit: DefaultStagnationLimit,
		SoupPercent:     30,
		SoupSize:        10,
		CameraSpeed:     1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the values from a string map layered on top. Malformed
// or out-of-range values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	positive := map[string]*int{
		"w":       &c.Width,
		"h":       &c.Height,
		"columns": &c.Columns,
		"rows":    &c.Rows,
		"stacks":  &c.Stacks,
		"cycles":  &c.Cycles,
	}
	for key, dst := range positive {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := map[string]*int{
		"batch_count":      &c.BatchCount,
		"stagnation_limit": &c.StagnationLimit,
		"max_blocks":       &c.MaxBlocks,
		"soup_percent":     &c.SoupPercent,
		"soup_size":        &c.SoupSize,
	}
	for key, dst := range nonNegative {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["camera_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.CameraSpeed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["pattern"]; ok {
		c.PatternFile = v
	}
	flags := map[string]*bool{
		"wireframe": &c.Wireframe,
		"verbose":   &c.Verbose,
	}
	for key, dst := range flags {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// LoadConfig reads a JSON config file. Keys missing from the file keep their
// default values.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", filename)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[LoadConfig] failed to unmarshal config: %s", filename)
	}
	return c, nil
}

// Selection parses Rule. A malformed rule yields the default rule and the
// parse error.
func (c Config) Selection() (Selection, error) {
	sel, err := ParseSelection(c.Rule)
	if err != nil {
		return Selection{Mode: SelectFixed, Rule: DefaultRule}, err
	}
	return sel, nil
}

// World returns the world sizing derived from the config.
func (c Config) World(r Rule) WorldConfig {
	return WorldConfig{
		Columns:         c.Columns,
		Rows:            c.Rows,
		Stacks:          c.Stacks,
		Rule:            r,
		MaxBlocks:       c.MaxBlocks,
		StagnationLimit: c.StagnationLimit,
	}
}
