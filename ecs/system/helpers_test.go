package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
	"github.com/milk9111/levelq/ecs/entity"
	"github.com/milk9111/levelq/prefabs"
)

var testBounds = component.LevelBounds{Width: 1280, Height: 720, FloorY: 600}

const testDelay = 180 * time.Millisecond

func testPlayerSpec(startX float64) *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:       "hero",
		Width:      26,
		Height:     56,
		Speed:      260,
		StartX:     startX,
		RespawnGap: 10,
		Sprite:     prefabs.SpriteSpec{Scale: 2.5, WalkBob: 2},
		Animation: prefabs.AnimationSpec{
			Current: component.AnimIdle,
			Defs: map[string]prefabs.AnimationDefSpec{
				component.AnimIdle: {Folder: "idle", FrameCount: 4, FPS: 8},
				component.AnimWalk: {Folder: "walk", FrameCount: 6, FPS: 12},
			},
		},
	}
}

func testPortalSpec() *prefabs.PortalSpec {
	return &prefabs.PortalSpec{
		Width:        22,
		Height:       86,
		InsetX:       18,
		OutlineWidth: 3,
		Pulse:        prefabs.PulseSpec{Speed: 2.2, Amount: 0.10, Base: 0.92},
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type keys map[ebiten.Key]bool

func (k keys) pressed(key ebiten.Key) bool { return k[key] }

// scene is a fully built world driven the same way the game drives it.
type scene struct {
	w      *ecs.World
	player ecs.Entity
	clock  *fakeClock
	keys   keys
	sched  *ecs.Scheduler
	trans  *TransitionSystem
}

func newScene(t *testing.T, startX float64, levelCount int) *scene {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, entity.LevelConfig{
		Bounds:          testBounds,
		LevelCount:      levelCount,
		TransitionDelay: testDelay,
	}); err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	if _, err := entity.NewPortals(w, testPortalSpec()); err != nil {
		t.Fatalf("NewPortals: %v", err)
	}
	player, err := entity.NewPlayer(w, testPlayerSpec(startX), testBounds)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	s := &scene{
		w:      w,
		player: player,
		clock:  &fakeClock{now: time.Unix(1000, 0)},
		keys:   keys{},
	}
	s.trans = &TransitionSystem{Now: s.clock.Now, Rand: rand.New(rand.NewPCG(7, 11))}
	s.sched = newTestScheduler(s)
	return s
}

// newTestScheduler wires systems in the order the game runs them.
func newTestScheduler(s *scene) *ecs.Scheduler {
	return ecs.NewScheduler(
		&InputSystem{KeyPressed: s.keys.pressed},
		NewPlayerControllerSystem(),
		NewAnimationSystem(),
		s.trans,
		NewClockSystem(),
	)
}

func (s *scene) tick(dt float64) {
	s.sched.Update(s.w, dt)
}

func (s *scene) playerState(t *testing.T) (*component.Player, *component.Transform, *component.Animation) {
	t.Helper()
	p, ok := ecs.Get(s.w, s.player, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("player component missing")
	}
	tr, ok := ecs.Get(s.w, s.player, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("transform missing")
	}
	a, ok := ecs.Get(s.w, s.player, component.AnimationComponent.Kind())
	if !ok {
		t.Fatalf("animation missing")
	}
	return p, tr, a
}

func (s *scene) runtime(t *testing.T) *component.TransitionRuntime {
	t.Helper()
	_, rt, ok := ecs.First(s.w, component.TransitionRuntimeComponent.Kind())
	if !ok {
		t.Fatalf("transition runtime missing")
	}
	return rt
}

func (s *scene) levelState(t *testing.T) *component.LevelState {
	t.Helper()
	_, ls, ok := ecs.First(s.w, component.LevelStateComponent.Kind())
	if !ok {
		t.Fatalf("level state missing")
	}
	return ls
}
