package prefabs

import (
	"os"
	"path/filepath"
	"testing"
)

func useDiskDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedControllerConfig(t *testing.T) {
	useDiskDir(t)

	cfg, err := LoadControllerConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.KnobRadius != 50 || cfg.Speed != 8 || cfg.AimRegionX != 400 || cfg.ResetDeadzone != 200 {
		t.Fatalf("unexpected tuning %+v", cfg)
	}
	if cfg.PowerMin != nil || cfg.PowerMax != nil {
		t.Fatalf("stock tuning should leave power unbounded")
	}
	for _, p := range []float64{-2, 0, 3} {
		if got := cfg.PowerCurve(p); got != 1+p {
			t.Fatalf("curve(%v) = %v, want %v", p, got, 1+p)
		}
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "controller.yaml"), `
knob_radius: 80
speed: 2
reset_duration: 0
power_min: -1
power_max: 4
`)

	cfg, err := LoadControllerConfig("prefabs/controller.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.KnobRadius != 80 || cfg.Speed != 2 {
		t.Fatalf("disk values not applied: %+v", cfg)
	}
	if cfg.ResetDuration != 0 {
		t.Fatalf("explicit zero duration = %v, want 0", cfg.ResetDuration)
	}
	if cfg.FlipDuration != 0.1 || cfg.KnobSize != 60 {
		t.Fatalf("omitted fields should keep stock values: %+v", cfg)
	}
	if cfg.PowerMin == nil || *cfg.PowerMin != -1 || cfg.PowerMax == nil || *cfg.PowerMax != 4 {
		t.Fatalf("power bounds = %v, %v", cfg.PowerMin, cfg.PowerMax)
	}
	if _, ok := ModTime("controller.yaml"); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
}

func TestControllerConfigUsesScriptCurve(t *testing.T) {
	dir := useDiskDir(t)
	writeFile(t, filepath.Join(dir, "controller.yaml"), `
speed: 3
power_curve: eased_curve.tengo
`)

	cfg, err := LoadControllerConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Speed != 3 {
		t.Fatalf("speed = %v, want 3", cfg.Speed)
	}
	if got := cfg.PowerCurve(4); got != 3 {
		t.Fatalf("curve(4) = %v, want eased 3", got)
	}
}

func TestControllerSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"inverted_bounds", "power_min: 3\npower_max: 1\n"},
		{"missing_script", "power_curve: nope.tengo\n"},
		{"bad_yaml", "knob_radius: [1, 2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := useDiskDir(t)
			writeFile(t, filepath.Join(dir, "controller.yaml"), c.yaml)
			if _, err := LoadControllerConfig(""); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestEmbeddedScene(t *testing.T) {
	useDiskDir(t)

	scene, err := LoadSceneSpec("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	names := make(map[string]EntityBuildSpec, len(scene.Entities))
	for _, e := range scene.Entities {
		names[e.Name] = e
	}
	for _, n := range []string{
		scene.Bindings.Player,
		scene.Bindings.Joystick,
		scene.Bindings.Knob,
		scene.Bindings.AimIndicator,
		scene.Bindings.Button,
	} {
		if _, ok := names[n]; !ok {
			t.Fatalf("binding %q has no entity", n)
		}
	}
	if names["knob"].Parent != "joystick" {
		t.Fatalf("knob parent = %q, want joystick", names["knob"].Parent)
	}

	tr, err := DecodeComponentSpec[TransformComponentSpec](names["joystick"].Components["transform"])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tr.X != -450 || tr.Y != -200 {
		t.Fatalf("joystick at (%v, %v), want (-450, -200)", tr.X, tr.Y)
	}
}

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in, prefab, script string
	}{
		{"scene.yaml", "scene.yaml", "scripts/scene.yaml"},
		{"prefabs/scene.yaml", "scene.yaml", "scripts/scene.yaml"},
		{"prefabs/scripts/power_curve.tengo", "scripts/power_curve.tengo", "scripts/power_curve.tengo"},
		{"scripts/power_curve.tengo", "scripts/power_curve.tengo", "scripts/power_curve.tengo"},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.prefab {
			t.Fatalf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.prefab)
		}
		if got := cleanScriptPath(c.in); got != c.script {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.script)
		}
	}
	if !Matches("/tmp/x/prefabs/controller.yaml", "controller.yaml") {
		t.Fatalf("Matches should compare base names")
	}
	if Matches("/tmp/x/scene.yaml", "controller.yaml") {
		t.Fatalf("Matches matched a different file")
	}
}
