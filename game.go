package main

import (
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/aimstick/common"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/entity"
	"github.com/milk9111/aimstick/ecs/system"
	"github.com/milk9111/aimstick/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x1b, G: 0x1d, B: 0x2a, A: 0xff}

type Options struct {
	Debug      bool
	Watch      bool
	SceneName  string
	ConfigName string
}

type Game struct {
	opts Options

	world      *ecs.World
	clock      *system.TickClock
	input      *Input
	controller *control.Controller
	renderer   *Renderer
	viewport   common.Viewport
	watcher    *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := prefabs.LoadControllerConfig(opts.ConfigName)
	if err != nil {
		log.Printf("controller config %s: %v, using defaults", opts.ConfigName, err)
		cfg = control.DefaultConfig()
	}

	scene, err := prefabs.LoadSceneSpec(opts.SceneName)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.BuildScene(w, scene); err != nil {
		return nil, err
	}

	vp := common.NewViewport(common.BaseWidth, common.BaseHeight)
	clock := system.NewTickClock(ebiten.TPS())
	ctl := control.NewController(cfg, entity.Bindings(w, scene.Bindings), system.NewAnimationSink(w))
	inputSys := system.NewInputSystem(ctl)

	w.AddSystem(inputSys)
	w.AddSystem(system.NewPlayerControllerSystem(ctl, clock.Now))
	w.AddSystem(system.NewAnimationSystem(clock.Now))

	g := &Game{
		opts:       opts,
		world:      w,
		clock:      clock,
		input:      NewInput(inputSys, vp),
		controller: ctl,
		renderer:   NewRenderer(vp),
		viewport:   vp,
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.DiskDir, prefabs.DiskDir+"/scripts")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.opts.Debug = !g.opts.Debug
	}
	g.pollReload()

	g.input.Update()
	g.clock.Tick()
	g.world.Update()
	return nil
}

// pollReload applies tuning edits on the frame goroutine. Scene edits are
// reported but need a restart.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case prefabs.Matches(name, g.configName()) || isScript(name):
		cfg, err := prefabs.LoadControllerConfig(g.opts.ConfigName)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.controller.Configure(cfg)
		log.Printf("reloaded controller tuning from %s", name)
	case prefabs.Matches(name, g.sceneName()):
		log.Printf("%s changed, restart to rebuild the scene", name)
	}
}

func (g *Game) configName() string {
	if g.opts.ConfigName == "" {
		return prefabs.ControllerSpecName
	}
	return g.opts.ConfigName
}

func (g *Game) sceneName() string {
	if g.opts.SceneName == "" {
		return prefabs.SceneSpecName
	}
	return g.opts.SceneName
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(screen, g.world)
	if g.opts.Debug {
		drawDebug(screen, g.viewport, g.controller)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func isScript(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".tengo")
}
