package entity

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
	"github.com/milk9111/aimstick/prefabs"
	"golang.org/x/image/colornames"
)

var (
	ErrDuplicateName = errors.New("entity: duplicate entity name")
	ErrUnknownParent = errors.New("entity: unknown parent")
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"shape":        addShape,
	"visibility":   addVisibility,
	"render_layer": addRenderLayer,
}

var componentBuildOrder = []string{
	"transform",
	"shape",
	"visibility",
	"render_layer",
}

// BuildScene creates every entity of a scene spec in order. Parents must be
// declared before their children. On error the entities created so far are
// destroyed.
func BuildScene(w *ecs.World, spec prefabs.SceneSpec) (map[string]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}

	built := make(map[string]ecs.Entity, len(spec.Entities))
	fail := func(err error) (map[string]ecs.Entity, error) {
		for _, e := range built {
			ecs.DestroyEntity(w, e)
		}
		return nil, err
	}

	for i, es := range spec.Entities {
		label := es.Name
		if label == "" {
			label = "#" + strconv.Itoa(i)
		}
		if _, dup := built[es.Name]; dup && es.Name != "" {
			return fail(fmt.Errorf("build scene %q: %w: %s", spec.Name, ErrDuplicateName, es.Name))
		}

		e, err := BuildEntity(w, es)
		if err != nil {
			return fail(fmt.Errorf("build scene %q: %w", spec.Name, err))
		}
		if es.Parent != "" {
			parent, ok := built[es.Parent]
			if !ok {
				ecs.DestroyEntity(w, e)
				return fail(fmt.Errorf("build scene %q: %s: %w %q", spec.Name, label, ErrUnknownParent, es.Parent))
			}
			if err := ecs.Add(w, e, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)}); err != nil {
				ecs.DestroyEntity(w, e)
				return fail(fmt.Errorf("build scene %q: %s: add parent: %w", spec.Name, label, err))
			}
		}
		if es.Name != "" {
			built[es.Name] = e
		} else {
			built[label] = e
		}
	}
	return built, nil
}

// BuildEntity creates one entity from its spec, adding components in a fixed
// order and then any others alphabetically.
func BuildEntity(w *ecs.World, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	e := ecs.CreateEntity(w)
	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity %q: add name: %w", spec.Name, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	apply := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity %q: no builder for component %q", spec.Name, name)
		}
		if err := builder(w, e, remaining[name]); err != nil {
			return fmt.Errorf("build entity %q: add %q: %w", spec.Name, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := apply(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := apply(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	// every scene entity gets a pose so actions have something to drive
	if !ecs.Has(w, e, component.TransformComponent.Kind()) {
		if err := addTransform(w, e, nil); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity %q: add transform: %w", spec.Name, err)
		}
	}
	return e, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type shapeSpec = prefabs.ShapeComponentSpec

func addShape(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[shapeSpec](raw)
	if err != nil {
		return fmt.Errorf("decode shape spec: %w", err)
	}

	kind := component.ShapeKind(strings.ToLower(strings.TrimSpace(spec.Kind)))
	switch kind {
	case "":
		kind = component.ShapeRect
	case component.ShapeRect, component.ShapeCircle, component.ShapeArrow, component.ShapeRing:
	default:
		return fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("negative shape size %vx%v", spec.Width, spec.Height)
	}

	shape := component.Shape{
		Kind:   kind,
		Width:  spec.Width,
		Height: spec.Height,
		Color:  color.White,
		Glyph:  '#',
	}
	if spec.Height == 0 {
		shape.Height = spec.Width
	}
	if spec.Color != "" {
		c, err := parseColor(spec.Color)
		if err != nil {
			return err
		}
		shape.Color = c
	}
	if spec.Glyph != "" {
		r, _ := utf8.DecodeRuneInString(spec.Glyph)
		shape.Glyph = r
	}
	return ecs.Add(w, e, component.ShapeComponent.Kind(), &shape)
}

type visibilitySpec = prefabs.VisibilityComponentSpec

func addVisibility(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[visibilitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode visibility spec: %w", err)
	}
	return ecs.Add(w, e, component.VisibilityComponent.Kind(), &component.Visibility{Hidden: spec.Hidden})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

// parseColor accepts #rrggbb, #rrggbbaa or an SVG colour name.
func parseColor(v string) (color.Color, error) {
	s := strings.TrimSpace(v)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
	}
	return parseHexColor(s)
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
