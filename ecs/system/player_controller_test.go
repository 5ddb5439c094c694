package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

func TestPlayerStaysInsideLevel(t *testing.T) {
	inputs := []struct {
		name string
		keys []ebiten.Key
	}{
		{"none", nil},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}},
		{"both", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}},
		{"a", []ebiten.Key{ebiten.KeyA}},
		{"d", []ebiten.Key{ebiten.KeyD}},
	}
	starts := []float64{0, 5, 640, 1250, 1254}
	steps := []float64{frame, 0.033, 0.5}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			for _, x0 := range starts {
				for _, dt := range steps {
					s := newScene(t, x0, 1)
					for _, k := range in.keys {
						s.keys[k] = true
					}
					// Controller only: portals must not freeze the player here.
					sched := ecs.NewScheduler(&InputSystem{KeyPressed: s.keys.pressed}, NewPlayerControllerSystem())
					_, tr, _ := s.playerState(t)
					for i := 0; i < 200; i++ {
						sched.Update(s.w, dt)
						if tr.Position.X < 0 || tr.Position.X > testBounds.Width-26 {
							t.Fatalf("start %v dt %v tick %d: x=%v escaped [0, %v]", x0, dt, i, tr.Position.X, testBounds.Width-26)
						}
						if tr.Position.Y != 544 {
							t.Fatalf("player left the floor: y=%v", tr.Position.Y)
						}
					}
				}
			}
		})
	}
}

func TestPlayerControllerMovement(t *testing.T) {
	cases := []struct {
		name       string
		keys       []ebiten.Key
		wantX      float64
		wantFacing float64
		wantAnim   string
	}{
		{"idle", nil, 640, 1, component.AnimIdle},
		{"walk_right", []ebiten.Key{ebiten.KeyArrowRight}, 640 + 260*0.5, 1, component.AnimWalk},
		{"walk_left", []ebiten.Key{ebiten.KeyArrowLeft}, 640 - 260*0.5, -1, component.AnimWalk},
		{"both_cancel", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyD}, 640, 1, component.AnimIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newScene(t, 640, 1)
			for _, k := range c.keys {
				s.keys[k] = true
			}
			sched := ecs.NewScheduler(&InputSystem{KeyPressed: s.keys.pressed}, NewPlayerControllerSystem())
			sched.Update(s.w, 0.5)

			player, tr, anim := s.playerState(t)
			if tr.Position.X != c.wantX {
				t.Fatalf("x = %v, want %v", tr.Position.X, c.wantX)
			}
			if player.Facing != c.wantFacing {
				t.Fatalf("facing = %v, want %v", player.Facing, c.wantFacing)
			}
			if anim.Current != c.wantAnim {
				t.Fatalf("animation = %q, want %q", anim.Current, c.wantAnim)
			}
		})
	}
}

func TestFacingKeptWhenStopping(t *testing.T) {
	s := newScene(t, 640, 1)
	sched := ecs.NewScheduler(&InputSystem{KeyPressed: s.keys.pressed}, NewPlayerControllerSystem())

	s.keys[ebiten.KeyArrowLeft] = true
	sched.Update(s.w, frame)
	delete(s.keys, ebiten.KeyArrowLeft)
	sched.Update(s.w, frame)

	player, _, anim := s.playerState(t)
	if player.Facing != -1 {
		t.Fatalf("expected facing to stay left after release, got %v", player.Facing)
	}
	if anim.Current != component.AnimIdle {
		t.Fatalf("expected idle after release, got %q", anim.Current)
	}
}

func TestClockAccumulates(t *testing.T) {
	s := newScene(t, 640, 1)
	for i := 0; i < 3; i++ {
		s.tick(0.5)
	}
	_, clock, ok := ecs.First(s.w, component.ClockComponent.Kind())
	if !ok || clock.Elapsed != 1.5 {
		t.Fatalf("expected 1.5s elapsed, got %+v", clock)
	}
}
