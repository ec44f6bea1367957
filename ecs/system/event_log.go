package system

import (
	"log"

	"github.com/milk9111/dashshot/ecs"
)

// EventLogSystem drains the world's event queue, counting events by type and
// logging them when Verbose is set. It runs last so it sees every event
// pushed during the frame.
type EventLogSystem struct {
	Verbose bool
	counts  map[string]int
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{Verbose: verbose, counts: make(map[string]int)}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.counts[evt.Type]++
		if !s.Verbose {
			continue
		}
		switch data := evt.Data.(type) {
		case ecs.StateChange:
			log.Printf("events: %s %s: %s -> %s", evt.Type, data.Entity, data.From, data.To)
		case ecs.Entity:
			log.Printf("events: %s %s", evt.Type, data)
		default:
			log.Printf("events: %s %v", evt.Type, data)
		}
	}
}

// Count returns how many events of a type have been seen.
func (s *EventLogSystem) Count(eventType string) int {
	if s == nil {
		return 0
	}
	return s.counts[eventType]
}
