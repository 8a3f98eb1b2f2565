package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	sceneName := flag.String("scene", "", "scene spec in prefabs/ (default scene.yaml)")
	configName := flag.String("config", "", "controller spec in prefabs/ (default controller.yaml)")
	logPath := flag.String("log", "termstick.log", "log file (the terminal is taken by the screen)")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	host, err := NewHost(screen, *sceneName, *configName)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	host.Run()
	screen.Fini()
}
