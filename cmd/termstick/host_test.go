package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/aimstick/prefabs"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(160, 45)

	h, err := NewHost(screen, "", "")
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	return h, screen
}

func TestHostAppliesControllerTuning(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.DiskDir
	prefabs.DiskDir = dir
	t.Cleanup(func() { prefabs.DiskDir = prev })

	tuning := "speed: 3\nknob_radius: 40\npower_curve: eased_curve.tengo\n"
	if err := os.WriteFile(filepath.Join(dir, "controller.yaml"), []byte(tuning), 0o644); err != nil {
		t.Fatal(err)
	}

	h, _ := newTestHost(t)
	cfg := h.controller.Config()
	if cfg.Speed != 3 || cfg.KnobRadius != 40 {
		t.Fatalf("tuning not applied: speed=%v radius=%v", cfg.Speed, cfg.KnobRadius)
	}
	if got := cfg.PowerCurve(4); got != 3 {
		t.Fatalf("curve(4) = %v, want eased 3", got)
	}
	if r := h.controller.Joystick().Radius; r != 40 {
		t.Fatalf("joystick radius = %v, want 40", r)
	}
}

func TestHostMouseDrivesJoystick(t *testing.T) {
	h, _ := newTestHost(t)

	// the joystick centre (-450, -200) lands in cell (23, 35)
	h.handleMouse(23, 35, true)
	h.world.Update()
	if !h.controller.Joystick().Active {
		t.Fatalf("press on the knob should grab the joystick")
	}

	h.handleMouse(33, 35, true)
	h.world.Update()
	if off := h.controller.Joystick().Offset; off.X <= 0 || off.Len() > 50+1e-9 {
		t.Fatalf("drag right gave offset %+v", off)
	}

	h.handleMouse(23, 35, false)
	h.world.Update()
	if js := h.controller.Joystick(); js.Active {
		t.Fatalf("release near the centre should reset, got %+v", js)
	}
}

func TestHostButtonTogglesAim(t *testing.T) {
	h, _ := newTestHost(t)

	// the aim button centre (550, -250) lands in cell (148, 38)
	h.handleMouse(148, 38, true)
	h.handleMouse(148, 38, false)
	h.world.Update()
	if !h.controller.Aim().Active {
		t.Fatalf("clicking the button should enter aim mode")
	}
}

func TestHostRepeatedCellIsNotAMove(t *testing.T) {
	h, _ := newTestHost(t)
	h.handleMouse(23, 35, true)
	h.handleMouse(23, 35, true)
	if n := h.input.Pending(); n != 1 {
		t.Fatalf("pending batches = %d, want only the press", n)
	}
}

func TestCanvasDrawsVisibleShapes(t *testing.T) {
	h, screen := newTestHost(t)
	h.world.Update()
	h.draw()

	glyphAt := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	// player centre
	if r := glyphAt(80, 22); r != '@' {
		t.Fatalf("player cell = %q, want '@'", r)
	}
	// knob sits on top of the joystick ring
	if r := glyphAt(23, 35); r != 'o' {
		t.Fatalf("knob cell = %q, want 'o'", r)
	}

	for y := 0; y < 45; y++ {
		for x := 0; x < 160; x++ {
			if glyphAt(x, y) == '^' {
				t.Fatalf("hidden indicator drawn at (%d, %d)", x, y)
			}
		}
	}
}
