package entity

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
	"github.com/milk9111/aimstick/prefabs"
	"golang.org/x/image/colornames"
)

func testScene() prefabs.SceneSpec {
	return prefabs.SceneSpec{
		Name: "test",
		Entities: []prefabs.EntityBuildSpec{
			{Name: "alien", Components: map[string]any{
				"transform": map[string]any{"x": 10, "y": 0},
				"shape":     map[string]any{"kind": "rect", "width": 60, "height": 100, "color": "#7fd34e"},
			}},
			{Name: "aim_indicator", Parent: "alien", Components: map[string]any{
				"transform":  map[string]any{"y": 70},
				"shape":      map[string]any{"kind": "arrow", "width": 16, "height": 60, "color": "gold", "glyph": "^"},
				"visibility": map[string]any{"hidden": true},
			}},
			{Name: "joystick", Components: map[string]any{
				"transform": map[string]any{"x": -450, "y": -200},
				"shape":     map[string]any{"kind": "ring", "width": 160},
			}},
			{Name: "knob", Parent: "joystick", Components: map[string]any{
				"shape": map[string]any{"kind": "circle", "width": 60},
			}},
			{Name: "aim_button", Components: map[string]any{
				"transform":    map[string]any{"x": 550, "y": -250, "scale_x": 2},
				"shape":        map[string]any{"width": 40, "height": 80},
				"render_layer": map[string]any{"index": 4},
			}},
		},
		Bindings: prefabs.BindingSpec{
			Player:       "alien",
			Joystick:     "joystick",
			Knob:         "knob",
			AimIndicator: "aim_indicator",
			Button:       "aim_button",
		},
	}
}

func TestBuildSceneComponents(t *testing.T) {
	w := ecs.NewWorld()
	built, err := BuildScene(w, testScene())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(built) != 5 {
		t.Fatalf("built %d entities, want 5", len(built))
	}

	knob := built["knob"]
	tr, ok := ecs.Get(w, knob, component.TransformComponent.Kind())
	if !ok || tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Fatalf("knob should get a default transform, got %+v", tr)
	}
	p, ok := ecs.Get(w, knob, component.ParentComponent.Kind())
	if !ok || ecs.Entity(p.Entity) != built["joystick"] {
		t.Fatalf("knob parent = %+v, want joystick", p)
	}
	shape, _ := ecs.Get(w, knob, component.ShapeComponent.Kind())
	if shape.Kind != component.ShapeCircle || shape.Height != 60 {
		t.Fatalf("knob shape = %+v", shape)
	}

	ind, _ := ecs.Get(w, built["aim_indicator"], component.ShapeComponent.Kind())
	if ind.Color != color.Color(colornames.Gold) || ind.Glyph != '^' {
		t.Fatalf("indicator shape = %+v", ind)
	}
	if v, ok := ecs.Get(w, built["aim_indicator"], component.VisibilityComponent.Kind()); !ok || !v.Hidden {
		t.Fatalf("indicator should start hidden")
	}

	alien, _ := ecs.Get(w, built["alien"], component.ShapeComponent.Kind())
	if alien.Color != color.Color(color.NRGBA{R: 0x7f, G: 0xd3, B: 0x4e, A: 0xff}) {
		t.Fatalf("alien colour = %v", alien.Color)
	}

	if e, ok := Lookup(w, "aim_button"); !ok || e != built["aim_button"] {
		t.Fatalf("lookup aim_button = %v, %v", e, ok)
	}
	if _, ok := Lookup(w, "nobody"); ok {
		t.Fatalf("lookup of an unknown name succeeded")
	}
}

func TestBuildSceneErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *prefabs.SceneSpec)
		is     error
	}{
		{"duplicate_name", func(s *prefabs.SceneSpec) {
			s.Entities = append(s.Entities, prefabs.EntityBuildSpec{Name: "alien"})
		}, ErrDuplicateName},
		{"parent_after_child", func(s *prefabs.SceneSpec) {
			s.Entities[0].Parent = "aim_button"
		}, ErrUnknownParent},
		{"unknown_component", func(s *prefabs.SceneSpec) {
			s.Entities[2].Components["physics_body"] = map[string]any{}
		}, nil},
		{"bad_colour", func(s *prefabs.SceneSpec) {
			s.Entities[0].Components["shape"] = map[string]any{"color": "not-a-colour"}
		}, nil},
		{"bad_shape_kind", func(s *prefabs.SceneSpec) {
			s.Entities[0].Components["shape"] = map[string]any{"kind": "hexagon"}
		}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spec := testScene()
			c.mutate(&spec)

			_, err := BuildScene(w, spec)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.is != nil && !errors.Is(err, c.is) {
				t.Fatalf("err = %v, want %v", err, c.is)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build left %d entities", n)
			}
		})
	}
}

func TestBindingsResolveGeometry(t *testing.T) {
	w := ecs.NewWorld()
	spec := testScene()
	if _, err := BuildScene(w, spec); err != nil {
		t.Fatalf("build: %v", err)
	}

	b := Bindings(w, spec.Bindings)
	for role, e := range map[string]control.Entity{
		"player":    b.Player,
		"joystick":  b.Joystick,
		"knob":      b.Knob,
		"indicator": b.AimIndicator,
		"button":    b.Button,
	} {
		if !e.Valid() {
			t.Fatalf("%s not resolved", role)
		}
	}
	if b.JoystickOrigin != (control.Vec2{X: -450, Y: -200}) {
		t.Fatalf("joystick origin = %+v", b.JoystickOrigin)
	}
	if b.ButtonRegion == nil {
		t.Fatalf("no button region")
	}

	cases := []struct {
		p    control.Vec2
		want bool
	}{
		{control.Vec2{X: 550, Y: -250}, true},
		{control.Vec2{X: 589, Y: -211}, true},
		{control.Vec2{X: 550, Y: -295}, false},
		{control.Vec2{X: 600, Y: -250}, false},
	}
	for _, c := range cases {
		if got := b.ButtonRegion.Contains(c.p); got != c.want {
			t.Fatalf("button contains %+v = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestBindingsMissingNames(t *testing.T) {
	w := ecs.NewWorld()
	b := Bindings(w, prefabs.BindingSpec{Player: "ghost"})
	if b.Player.Valid() || b.Button.Valid() || b.ButtonRegion != nil {
		t.Fatalf("unresolved bindings should be empty, got %+v", b)
	}
}

func TestEmbeddedSceneBuilds(t *testing.T) {
	spec, err := prefabs.LoadSceneSpec("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := BuildScene(w, spec); err != nil {
		t.Fatalf("build: %v", err)
	}
	b := Bindings(w, spec.Bindings)
	if !b.Player.Valid() || !b.Knob.Valid() || b.ButtonRegion == nil {
		t.Fatalf("embedded scene bindings incomplete: %+v", b)
	}
}
