package system

import (
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

// ClockSystem accumulates simulated time. The portal pulse reads it.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (c *ClockSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		clock.Elapsed += dt
	})
}
