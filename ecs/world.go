package ecs

import (
	"fmt"

	"github.com/milk9111/dashshot/ecs/component"
)

// DefaultTimeStep is the simulation step used when none is set.
const DefaultTimeStep = 1.0 / 60.0

// World owns entities and their components.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	timeStep float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		timeStep: DefaultTimeStep,
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, s := range w.stores {
		s.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for id := range w.entities.gen {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) store(kind component.Kind, create bool) *SparseSet {
	s, ok := w.stores[kind.ID()]
	if !ok && create {
		s = &SparseSet{}
		w.stores[kind.ID()] = s
	}
	return s
}

// AddComponent attaches or replaces a component value.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind, true).Set(int(e.id()), value)
	return nil
}

// GetComponent returns the raw component value.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind, false)
	if !s.Has(int(e.id())) {
		return nil, false
	}
	return s.Get(int(e.id())), true
}

// HasComponent reports whether e has a component of kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent detaches a component. It returns false if none was attached.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind, false).Remove(int(e.id()))
}

// Query returns the entities that have every given component.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	ids := intersectEntities(sets)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity that has every given component.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// TimeStep returns the seconds simulated per update.
func (w *World) TimeStep() float64 {
	if w == nil || w.timeStep <= 0 {
		return DefaultTimeStep
	}
	return w.timeStep
}

func (w *World) SetTimeStep(dt float64) {
	if w == nil {
		return
	}
	w.timeStep = dt
}
