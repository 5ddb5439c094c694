package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/levelq/common"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

// PlayerControllerSystem turns input into facing, animation choice and
// horizontal movement. The player is frozen while a transition is running.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil || transitionActive(w) {
		return
	}
	bounds, ok := levelBounds(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		vx := common.Clamp(input.MoveX, -1, 1)
		if vx != 0 {
			player.Facing = common.Sign(vx)
		}

		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			if vx == 0 {
				anim.Play(component.AnimIdle)
			} else {
				anim.Play(component.AnimWalk)
			}
		}

		vel := cp.Vector{X: vx * player.Speed}
		t.Position = t.Position.Add(vel.Mult(dt))
		t.Position.X = common.Clamp(t.Position.X, 0, bounds.Width-player.Width)
		t.Position.Y = bounds.FloorY - player.Height
	})
}
