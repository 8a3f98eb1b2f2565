package prefabs

import "gopkg.in/yaml.v3"

const SceneSpecName = "scene.yaml"

// SceneSpec lists the entities of a scene in build order and names the ones
// the controller drives.
type SceneSpec struct {
	Name     string            `yaml:"name"`
	Entities []EntityBuildSpec `yaml:"entities"`
	Bindings BindingSpec       `yaml:"bindings"`
}

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Parent     string         `yaml:"parent"`
	Components map[string]any `yaml:"components"`
}

// BindingSpec names the scene entities the controller needs. Empty names are
// left unbound.
type BindingSpec struct {
	Player       string `yaml:"player"`
	Joystick     string `yaml:"joystick"`
	Knob         string `yaml:"knob"`
	AimIndicator string `yaml:"aim_indicator"`
	Button       string `yaml:"button"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	if filename == "" {
		filename = SceneSpecName
	}
	return LoadSpec[SceneSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

// ShapeComponentSpec describes a vector shape. Color is a hex value or an SVG
// colour name.
type ShapeComponentSpec struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
	Glyph  string  `yaml:"glyph"`
}

type VisibilityComponentSpec struct {
	Hidden bool `yaml:"hidden"`
}
