package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

// LevelConfig seeds the world-level singletons.
type LevelConfig struct {
	Bounds          component.LevelBounds
	LevelCount      int
	StartIndex      int
	TransitionDelay time.Duration
}

// NewLevel creates the entity that carries the level bounds, the current
// level index, the transition runtime and the clock.
func NewLevel(w *ecs.World, cfg LevelConfig) (ecs.Entity, error) {
	if cfg.LevelCount <= 0 {
		return 0, fmt.Errorf("level: need at least one level, got %d", cfg.LevelCount)
	}
	if cfg.StartIndex < 0 || cfg.StartIndex >= cfg.LevelCount {
		return 0, fmt.Errorf("level: start index %d out of range [0, %d)", cfg.StartIndex, cfg.LevelCount)
	}

	e := ecs.CreateEntity(w)
	bounds := cfg.Bounds
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	if err := ecs.Add(w, e, component.LevelStateComponent.Kind(), &component.LevelState{
		Index: cfg.StartIndex,
		Count: cfg.LevelCount,
	}); err != nil {
		return 0, fmt.Errorf("level: add state: %w", err)
	}
	if err := ecs.Add(w, e, component.TransitionRuntimeComponent.Kind(), &component.TransitionRuntime{
		Delay: cfg.TransitionDelay,
	}); err != nil {
		return 0, fmt.Errorf("level: add transition runtime: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("level: add clock: %w", err)
	}
	return e, nil
}
