package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
)

var (
	debugPortalColor = color.RGBA{R: 0, G: 255, B: 0, A: 200}
	debugPlayerColor = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	debugHitColor    = color.RGBA{R: 255, G: 0, B: 0, A: 48}
)

// drawDebug outlines the trigger boxes and prints the world state.
func drawDebug(w *ecs.World, screen *ebiten.Image, bounds component.LevelBounds, levelID string) {
	for _, p := range portalsBySide(w) {
		strokeBox(screen, PortalAABB(p, bounds), debugPortalColor)
	}

	status := "idle"
	if _, rt, ok := ecs.First(w, component.TransitionRuntimeComponent.Kind()); ok && rt.Active {
		status = "transition (" + string(rt.LastSide) + ")"
	}

	x, frame, anim := 0.0, 0, ""
	if e, player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if pb, ok := playerAABB(w, e, player); ok {
			x = pb.L
			strokeBox(screen, pb, debugPlayerColor)
			for _, p := range portalsBySide(w) {
				if Overlaps(pb, PortalAABB(p, bounds)) {
					vector.FillRect(screen, float32(pb.L), float32(pb.B), float32(pb.R-pb.L), float32(pb.T-pb.B), debugHitColor, false)
				}
			}
		}
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			anim, frame = a.Current, a.Frame
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f\nlevel: %s\nx: %.1f  anim: %s[%d]\nstate: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), levelID, x, anim, frame, status))
}

func strokeBox(screen *ebiten.Image, b cp.BB, clr color.Color) {
	vector.StrokeRect(screen, float32(b.L), float32(b.B), float32(b.R-b.L), float32(b.T-b.B), 1.0, clr, false)
}
