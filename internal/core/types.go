package core

import "image"

// Size describes the dimensions of a rendered frame.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract an effect must implement. Step advances
// the simulation and redraws the frame; Frame returns the last drawn image.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Frame() *image.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
