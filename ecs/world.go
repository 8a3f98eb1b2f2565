package ecs

import "github.com/milk9111/aimstick/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Systems returns a copy of the update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return append([]System(nil), w.systems...)
}

// Update runs all systems once, in insertion order.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Query returns live entities carrying every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}

	// iterate the smallest store
	smallest := 0
	for i, set := range sets {
		if set.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range sets[smallest].IDs() {
		matched := true
		for i, set := range sets {
			if i != smallest && !set.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	set := w.stores[id]
	if set == nil && create {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
