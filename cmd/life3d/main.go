//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life3d/internal/app"
	"life3d/internal/core"
	"life3d/internal/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := newSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("life3d - " + sim.Name())
	ebiten.SetTPS(max(ebiten.DefaultTPS, cfg.TPS))
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newSim builds the requested simulation. For life3d a -config file is read
// first and -set options are layered on top of it.
func newSim(cfg *app.Config) (core.Sim, error) {
	opts := cfg.Set.Map()
	if cfg.Sim == "life3d" && cfg.ConfigFile != "" {
		simCfg, err := life3d.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		return life3d.NewWithConfig(simCfg.Apply(opts)), nil
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, errors.New("unknown sim " + cfg.Sim)
	}
	return factory(opts), nil
}
