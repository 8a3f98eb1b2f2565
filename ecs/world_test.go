package ecs

import (
	"testing"

	"github.com/milk9111/aimstick/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("created the zero entity")
				}
				ents = append(ents, e)
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should fail")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestWorldReusedSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()

	old := CreateEntity(w)
	v := 10
	if err := Add(w, old, kind, &v); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("reused handle should differ from the stale one")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("components leaked into the reused slot")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle still reads components")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]().Kind()
	names := component.NewComponent[string]().Kind()

	e := CreateEntity(w)
	n := 3
	if err := Add(w, e, ints, &n); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, ok := Get(w, e, ints)
	if !ok || *got != 3 {
		t.Fatalf("get = %v, %v", got, ok)
	}
	*got = 4
	if again, _ := Get(w, e, ints); *again != 4 {
		t.Fatalf("get should return the stored pointer")
	}
	if Has(w, e, names) {
		t.Fatalf("entity should not carry names")
	}
	if !Remove(w, e, ints) || Has(w, e, ints) {
		t.Fatalf("remove failed")
	}
	if Remove(w, e, ints) {
		t.Fatalf("second remove should report false")
	}
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()
	v := 1

	cases := []struct {
		name string
		add  func() error
		want error
	}{
		{"dead_entity", func() error { return Add(w, Entity(99), kind, &v) }, component.ErrEntityNotAlive},
		{"nil_value", func() error { return Add(w, CreateEntity(w), kind, nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, CreateEntity(w), component.ComponentKind[int]{}, &v) }, component.ErrInvalidComponentKind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.add(); err != c.want {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestWorldQueries(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]().Kind()
	names := component.NewComponent[string]().Kind()

	both := CreateEntity(w)
	onlyInt := CreateEntity(w)
	onlyName := CreateEntity(w)

	one, two := 1, 2
	a, b := "a", "b"
	_ = Add(w, both, ints, &one)
	_ = Add(w, both, names, &a)
	_ = Add(w, onlyInt, ints, &two)
	_ = Add(w, onlyName, names, &b)

	if got := w.Query(ints, names); len(got) != 1 || got[0] != both {
		t.Fatalf("query(ints, names) = %v, want [%v]", got, both)
	}
	if got := w.Query(ints); len(got) != 2 {
		t.Fatalf("query(ints) = %v, want 2 entities", got)
	}

	sum := 0
	ForEach(w, ints, func(_ Entity, v *int) { sum += *v })
	if sum != 3 {
		t.Fatalf("ForEach sum = %d, want 3", sum)
	}

	calls := 0
	ForEach2(w, ints, names, func(e Entity, v *int, s *string) {
		calls++
		if e != both || *v != 1 || *s != "a" {
			t.Fatalf("ForEach2 visited %v (%d, %q)", e, *v, *s)
		}
	})
	if calls != 1 {
		t.Fatalf("ForEach2 calls = %d, want 1", calls)
	}

	DestroyEntity(w, both)
	if got := w.Query(ints, names); len(got) != 0 {
		t.Fatalf("destroyed entity still queried: %v", got)
	}
	if first, ok := w.First(names); !ok || first != onlyName {
		t.Fatalf("First(names) = %v, %v", first, ok)
	}
}

type countingSystem struct {
	name  string
	trace *[]string
}

func (s countingSystem) Update(*World) {
	*s.trace = append(*s.trace, s.name)
}

func TestWorldRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var trace []string
	w.AddSystem(countingSystem{"input", &trace})
	w.AddSystem(nil)
	w.AddSystem(countingSystem{"control", &trace})
	w.AddSystem(countingSystem{"animation", &trace})

	w.Update()
	w.Update()

	want := []string{"input", "control", "animation", "input", "control", "animation"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if len(w.Systems()) != 3 {
		t.Fatalf("systems = %d, want 3", len(w.Systems()))
	}
}
