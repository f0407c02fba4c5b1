package life3d

import (
	"math"
	"strconv"
	"time"

	"life3d/internal/core"
)

func (e *Effect) Parameters() core.ParameterSnapshot {
	cols, rows, stacks := e.world.Extents()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("columns", "Columns", cols),
				intParam("rows", "Rows", rows),
				intParam("stacks", "Stacks", stacks),
				int64Param("seed", "Seed", e.seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				stringParam("rule", "Rule", e.world.Rule().String()),
				stringParam("selection", "Selection", e.sel.String()),
				stringParam("pattern", "Pattern", e.label),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("cycles", "Cycles", e.cfg.Cycles),
				intParam("batch_count", "Glider interval", e.cfg.BatchCount),
				intParam("stagnation_limit", "Stagnation limit", e.cfg.StagnationLimit),
				floatParam("camera_speed", "Camera speed", e.camera.Speed),
				boolParam("wireframe", "Wireframe", e.renderer.Wireframe),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				intParam("generation", "Generation", e.world.Generation()),
				intParam("population", "Population", e.world.Population()),
				intParam("blocks", "Blocks", e.world.Blocks()),
				intParam("cubes", "Cubes drawn", len(e.frame.Cubes)),
				intParam("peak_population", "Peak population", e.stats.PeakPopulation),
				floatParam("average_population", "Average population", tenths(e.stats.AveragePopulation)),
				intParam("births", "Births", e.stats.Births),
				intParam("deaths", "Deaths", e.stats.Deaths),
				intParam("total_generations", "Total generations", e.stats.TotalGenerations),
				floatParam("generations_per_second", "Generations/s", tenths(e.stats.GenerationsPerSecond)),
				stringParam("uptime", "Uptime", time.Since(e.stats.StartTime).Round(time.Second).String()),
				intParam("resets", "Resets", e.stats.Resets),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (e *Effect) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "cycles", Label: "Cycles", Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true},
		{Key: "batch_count", Label: "Glider interval", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
		{Key: "stagnation_limit", Label: "Stagnation limit", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 50, HasMin: true, HasMax: true},
		{Key: "camera_speed", Label: "Camera speed", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "wireframe", Label: "Wireframe", Type: core.ParamTypeBool},
	}
}

func (e *Effect) SetIntParameter(key string, value int) bool {
	switch key {
	case "cycles":
		if value < 1 {
			return false
		}
		e.cfg.Cycles = value
	case "batch_count":
		if value < 0 {
			return false
		}
		e.cfg.BatchCount = value
	case "stagnation_limit":
		if value < 1 {
			return false
		}
		e.cfg.StagnationLimit = value
		e.world.stagnationLimit = value
	default:
		return false
	}
	return true
}

func (e *Effect) SetFloatParameter(key string, value float64) bool {
	if key != "camera_speed" || value < 0 {
		return false
	}
	e.cfg.CameraSpeed = value
	e.camera.Speed = value
	return true
}

func (e *Effect) SetBoolParameter(key string, value bool) bool {
	if key != "wireframe" {
		return false
	}
	e.SetWireframe(value)
	return true
}

func tenths(v float64) float64 {
	return math.Round(v*10) / 10
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
