package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/levelq/assets"
	"github.com/milk9111/levelq/common"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
	"github.com/milk9111/levelq/prefabs"
)

// NewPlayer builds the hero standing on the floor. A negative StartX places
// it at the horizontal centre of the level.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, bounds component.LevelBounds) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	x := spec.StartX
	if x < 0 {
		x = math.Floor(bounds.Width / 2)
	}
	x = common.Clamp(x, 0, bounds.Width-spec.Width)

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		Width:      spec.Width,
		Height:     spec.Height,
		Speed:      spec.Speed,
		Facing:     1,
		Visible:    true,
		RespawnGap: spec.RespawnGap,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Position: cp.Vector{X: x, Y: bounds.FloorY - spec.Height},
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    animationDefs(spec),
		Current: spec.Animation.Current,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Scale:     spec.Sprite.Scale,
		FeetFudge: spec.Sprite.FeetFudge,
		WalkBob:   spec.Sprite.WalkBob,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	return player, nil
}

// ApplyPlayerSpec updates tunables on an existing player in place. Position,
// facing, visibility and the current frame are kept. loaded holds the number
// of frames decoded per animation; a reloaded FrameCount never exceeds it,
// since frames are only decoded at startup.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec, loaded map[string]int) error {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: %v has no player component", e)
	}
	player.Width = spec.Width
	player.Height = spec.Height
	player.Speed = spec.Speed
	player.RespawnGap = spec.RespawnGap

	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Scale = spec.Sprite.Scale
		s.FeetFudge = spec.Sprite.FeetFudge
		s.WalkBob = spec.Sprite.WalkBob
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Defs = animationDefs(spec)
		for name, def := range anim.Defs {
			if n, ok := loaded[name]; ok && def.FrameCount > n {
				def.FrameCount = n
				anim.Defs[name] = def
			}
		}
		if def, ok := anim.Def(); !ok || anim.Frame >= def.FrameCount {
			anim.Reset()
		}
	}
	return nil
}

// PlayerSequences lists the frame folders the asset loader must decode for
// the player's animations.
func PlayerSequences(spec *prefabs.PlayerSpec) map[string]assets.Sequence {
	out := make(map[string]assets.Sequence, len(spec.Animation.Defs))
	for name, def := range spec.Animation.Defs {
		out[name] = assets.Sequence{Folder: def.Folder, Count: def.FrameCount}
	}
	return out
}

func animationDefs(spec *prefabs.PlayerSpec) map[string]component.AnimationDef {
	defs := make(map[string]component.AnimationDef, len(spec.Animation.Defs))
	for name, def := range spec.Animation.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
		}
	}
	return defs
}
