package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/aimstick/common"
)

func main() {
	debug := flag.Bool("debug", false, "show the debug overlay (toggle with F3)")
	watch := flag.Bool("watch", false, "hot reload controller tuning from prefabs/")
	sceneName := flag.String("scene", "", "scene spec in prefabs/ (default scene.yaml)")
	configName := flag.String("config", "", "controller spec in prefabs/ (default controller.yaml)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("aimstick")

	game, err := NewGame(Options{
		Debug:      *debug,
		Watch:      *watch,
		SceneName:  *sceneName,
		ConfigName: *configName,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
