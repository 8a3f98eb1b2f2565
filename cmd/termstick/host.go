package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/entity"
	"github.com/milk9111/aimstick/ecs/system"
	"github.com/milk9111/aimstick/prefabs"
)

const frameInterval = 16 * time.Millisecond

// mousePointer is the only pointer a terminal reports.
const mousePointer control.PointerID = 0

// Host drives the controller from terminal mouse events and draws the scene
// as character cells.
type Host struct {
	screen     tcell.Screen
	world      *ecs.World
	input      *system.InputSystem
	controller *control.Controller
	canvas     *Canvas

	mouseDown bool
	lastCell  [2]int
	debug     bool
}

func NewHost(screen tcell.Screen, sceneName, configName string) (*Host, error) {
	cfg, err := prefabs.LoadControllerConfig(configName)
	if err != nil {
		log.Printf("controller config %s: %v, using defaults", configName, err)
		cfg = control.DefaultConfig()
	}
	scene, err := prefabs.LoadSceneSpec(sceneName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildScene(w, scene); err != nil {
		return nil, err
	}

	clock := system.WallClock()
	ctl := control.NewController(cfg, entity.Bindings(w, scene.Bindings), system.NewAnimationSink(w))
	in := system.NewInputSystem(ctl)
	w.AddSystem(in)
	w.AddSystem(system.NewPlayerControllerSystem(ctl, clock))
	w.AddSystem(system.NewAnimationSystem(clock))

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	return &Host{
		screen:     screen,
		world:      w,
		input:      in,
		controller: ctl,
		canvas:     NewCanvas(screen),
		debug:      true,
	}, nil
}

// Run polls events on a goroutine and runs frames on a ticker. All events
// that arrived since the last tick are delivered before the frame runs.
func (h *Host) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.world.Update()
			h.draw()
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'd':
				h.debug = !h.debug
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handleMouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// handleMouse turns button state changes into pointer phases.
func (h *Host) handleMouse(x, y int, pressed bool) {
	pos := h.canvas.Viewport().ToScene(float64(x)+0.5, float64(y)+0.5)
	touch := control.Touch{ID: mousePointer, Position: pos}
	cell := [2]int{x, y}

	switch {
	case pressed && !h.mouseDown:
		h.mouseDown = true
		h.input.Push(system.PointerBegan, touch)
	case pressed && cell != h.lastCell:
		h.input.Push(system.PointerMoved, touch)
	case !pressed && h.mouseDown:
		h.mouseDown = false
		h.input.Push(system.PointerEnded, touch)
	}
	h.lastCell = cell
}

func (h *Host) draw() {
	h.canvas.Begin()
	h.canvas.DrawWorld(h.world)
	if h.debug {
		h.canvas.DrawStatus(h.controller)
	}
	h.screen.Show()
}
