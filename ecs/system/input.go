package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

const stickDeadzone = 0.2

// InputSystem samples the keyboard (and the first gamepad's left stick) into
// every Input component.
type InputSystem struct {
	KeyPressed func(ebiten.Key) bool
	StickX     func() float64
}

func NewInputSystem() *InputSystem {
	return &InputSystem{
		KeyPressed: ebiten.IsKeyPressed,
		StickX:     gamepadStickX,
	}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	pressed := i.KeyPressed
	if pressed == nil {
		pressed = func(ebiten.Key) bool { return false }
	}

	left := pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA)
	right := pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}
	if moveX == 0 && i.StickX != nil {
		if x := i.StickX(); math.Abs(x) > stickDeadzone {
			moveX = math.Max(-1, math.Min(1, x))
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
	})
}

func gamepadStickX() float64 {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(ids[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
}
