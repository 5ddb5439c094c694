package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

func TestInputSystem(t *testing.T) {
	cases := []struct {
		name      string
		keys      []ebiten.Key
		stick     float64
		wantMoveX float64
	}{
		{name: "nothing"},
		{name: "arrow_left", keys: []ebiten.Key{ebiten.KeyArrowLeft}, wantMoveX: -1},
		{name: "a", keys: []ebiten.Key{ebiten.KeyA}, wantMoveX: -1},
		{name: "arrow_right", keys: []ebiten.Key{ebiten.KeyArrowRight}, wantMoveX: 1},
		{name: "d", keys: []ebiten.Key{ebiten.KeyD}, wantMoveX: 1},
		{name: "both", keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}},
		{name: "stick", stick: 0.5, wantMoveX: 0.5},
		{name: "stick_deadzone", stick: -0.15},
		{name: "stick_clamped", stick: -1.4, wantMoveX: -1},
		{name: "keys_win_over_stick", keys: []ebiten.Key{ebiten.KeyD}, stick: -0.8, wantMoveX: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
				t.Fatal(err)
			}
			pressed := keys{}
			for _, k := range c.keys {
				pressed[k] = true
			}
			sys := &InputSystem{
				KeyPressed: pressed.pressed,
				StickX:     func() float64 { return c.stick },
			}
			sys.Update(w, frame)

			in, _ := ecs.Get(w, e, component.InputComponent.Kind())
			if in.MoveX != c.wantMoveX {
				t.Fatalf("moveX = %v, want %v", in.MoveX, c.wantMoveX)
			}
		})
	}
}
