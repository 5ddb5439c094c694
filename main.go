package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and the debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelID := flag.String("level", "", "start level id from levels.json (random when empty)")
	assetsDir := flag.String("assets", "", "load backgrounds and sprites from this directory instead of the embedded copies")
	seed := flag.Uint64("seed", 0, "seed for level selection (0 = time based)")
	watch := flag.Bool("watch", false, "hot-reload prefabs/*.yaml while running")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("levelq")

	game := NewGame(Options{
		Debug:     *debug,
		LevelID:   *levelID,
		AssetsDir: *assetsDir,
		Seed:      *seed,
		Watch:     *watch,
	})
	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
