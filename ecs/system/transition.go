package system

import (
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

// TransitionSystem runs the portal state machine. While idle it tests the
// player against the left portal, then the right one; the first overlap hides
// the player and arms a wall-clock deadline. Once the deadline passes a new
// level is drawn at random (with replacement) and the player reappears next
// to the portal opposite the one entered.
type TransitionSystem struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func NewTransitionSystem(r *rand.Rand) *TransitionSystem {
	return &TransitionSystem{Now: time.Now, Rand: r}
}

func (ts *TransitionSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	_, rt, ok := ecs.First(w, component.TransitionRuntimeComponent.Kind())
	if !ok {
		return
	}

	if rt.Active {
		if !ts.now().Before(rt.Until) {
			ts.finish(w, rt)
		}
		return
	}

	playerEnt, player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	playerBox, ok := playerAABB(w, playerEnt, player)
	if !ok {
		return
	}
	bounds, ok := levelBounds(w)
	if !ok {
		return
	}

	portals := portalsBySide(w)
	for _, side := range []component.PortalSide{component.PortalLeft, component.PortalRight} {
		portal, ok := portals[side]
		if !ok {
			continue
		}
		if !Overlaps(playerBox, PortalAABB(portal, bounds)) {
			continue
		}
		ts.begin(w, rt, player, side)
		return
	}
}

func (ts *TransitionSystem) begin(w *ecs.World, rt *component.TransitionRuntime, player *component.Player, side component.PortalSide) {
	if rt.Active {
		return
	}
	rt.Active = true
	rt.Until = ts.now().Add(rt.Delay)
	rt.LastSide = side
	player.Visible = false
	w.Events().Push(ecs.Event{Kind: ecs.EventPortalEntered, Data: side})
}

func (ts *TransitionSystem) finish(w *ecs.World, rt *component.TransitionRuntime) {
	change := ecs.LevelChange{Side: rt.LastSide}
	if _, level, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		change.From = level.Index
		level.Index = ts.pick(level.Count)
		change.To = level.Index
	}

	if e, player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		ts.respawn(w, e, player, rt.LastSide)
	}

	rt.Active = false
	rt.Until = time.Time{}
	w.Events().Push(ecs.Event{Kind: ecs.EventLevelChanged, Data: change})
}

// respawn places the player just inside the portal opposite to entered.
func (ts *TransitionSystem) respawn(w *ecs.World, e ecs.Entity, player *component.Player, entered component.PortalSide) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		bounds, _ := levelBounds(w)
		portals := portalsBySide(w)
		if exit, ok := portals[entered.Opposite()]; ok {
			box := PortalAABB(exit, bounds)
			if entered == component.PortalLeft {
				t.Position.X = box.L - player.Width - player.RespawnGap
			} else {
				t.Position.X = box.R + player.RespawnGap
			}
		}
		t.Position.Y = bounds.FloorY - player.Height
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Current = component.AnimIdle
		anim.Reset()
	}
	player.Visible = true
}

func (ts *TransitionSystem) now() time.Time {
	if ts.Now == nil {
		return time.Now()
	}
	return ts.Now()
}

func (ts *TransitionSystem) pick(n int) int {
	if n <= 1 {
		return 0
	}
	if ts.Rand == nil {
		return rand.IntN(n)
	}
	return ts.Rand.IntN(n)
}

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R &&
		a.R > b.L &&
		a.B < b.T &&
		a.T > b.B
}

// box builds a screen-space rectangle. cp.BB's B is the smaller y, which is
// the top edge on screen.
func box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// PortalAABB returns the trigger rectangle of a portal standing on the floor.
func PortalAABB(p *component.Portal, bounds component.LevelBounds) cp.BB {
	x := p.InsetX
	if p.Side == component.PortalRight {
		x = bounds.Width - p.InsetX - p.Width
	}
	return box(x, bounds.FloorY-p.Height, p.Width, p.Height)
}

func playerAABB(w *ecs.World, e ecs.Entity, player *component.Player) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || player.Width <= 0 || player.Height <= 0 {
		return cp.BB{}, false
	}
	return box(t.Position.X, t.Position.Y, player.Width, player.Height), true
}

func portalsBySide(w *ecs.World) map[component.PortalSide]*component.Portal {
	out := make(map[component.PortalSide]*component.Portal, 2)
	ecs.ForEach(w, component.PortalComponent.Kind(), func(_ ecs.Entity, p *component.Portal) {
		if _, dup := out[p.Side]; !dup {
			out[p.Side] = p
		}
	})
	return out
}

func transitionActive(w *ecs.World) bool {
	_, rt, ok := ecs.First(w, component.TransitionRuntimeComponent.Kind())
	return ok && rt.Active
}

func levelBounds(w *ecs.World) (component.LevelBounds, bool) {
	_, b, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	return *b, true
}
