//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"overgrowth/internal/app"
	"overgrowth/internal/gen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	genCfg := gen.DefaultConfig().ForStage(cfg.Stage)
	genCfg.Cols = cfg.Cols
	genCfg.Rows = cfg.Rows
	genCfg.Seed = cfg.Seed

	game := app.New(genCfg, cfg.Scale)

	ebiten.SetWindowTitle("overgrowth")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(genCfg.Cols*cfg.Scale, genCfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
