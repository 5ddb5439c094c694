package system

import (
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

// AnimationSystem advances frame indexes on a per-animation fixed rate. At
// most one frame is advanced per tick so no frame is ever skipped.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil || transitionActive(w) {
		return
	}
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		advance(anim, dt)
	})
}

func advance(anim *component.Animation, dt float64) {
	def, ok := anim.Def()
	if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
		return
	}
	step := 1 / def.FPS
	anim.FrameTimer += dt
	if anim.FrameTimer >= step {
		anim.FrameTimer -= step
		anim.Frame = (anim.Frame + 1) % def.FrameCount
	}
	if anim.Frame < 0 || anim.Frame >= def.FrameCount {
		anim.Frame = 0
	}
}
