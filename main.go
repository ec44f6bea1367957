package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay, state logging and level hot reload")
	levelName := flag.String("level", "training", "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts instead of the keyboard")
	flag.Parse()

	game, err := NewGame(*levelName, *scriptName, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dashshot")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
