package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
	"github.com/milk9111/levelq/ecs/render"
	"github.com/milk9111/levelq/levels"
)

const ellipseSegments = 48

// RenderSystem paints the whole frame from world state: background, portals,
// then the player.
type RenderSystem struct {
	Levels      *levels.Manifest
	Backgrounds *render.ImageRegistry
	Animations  *render.AnimationLibrary
	Debug       bool

	whiteSubImage *ebiten.Image
}

func NewRenderSystem(manifest *levels.Manifest, backgrounds *render.ImageRegistry, animations *render.AnimationLibrary) *RenderSystem {
	return &RenderSystem{
		Levels:      manifest,
		Backgrounds: backgrounds,
		Animations:  animations,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Clear()

	bounds, ok := levelBounds(w)
	if !ok {
		return
	}
	r.drawBackground(w, screen, bounds)
	r.drawPortals(w, screen, bounds)
	r.drawPlayer(w, screen, bounds)

	if r.Debug {
		drawDebug(w, screen, bounds, r.currentLevelID(w))
	}
}

func (r *RenderSystem) currentLevelID(w *ecs.World) string {
	_, state, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return ""
	}
	lvl, ok := r.Levels.At(state.Index)
	if !ok {
		return ""
	}
	return lvl.ID
}

func (r *RenderSystem) drawBackground(w *ecs.World, screen *ebiten.Image, bounds component.LevelBounds) {
	img := r.Backgrounds.Get(r.currentLevelID(w))
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bounds.Width/float64(iw), bounds.Height/float64(ih))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawPortals(w *ecs.World, screen *ebiten.Image, bounds component.LevelBounds) {
	elapsed := 0.0
	if _, clock, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		elapsed = clock.Elapsed
	}
	portals := portalsBySide(w)
	for _, side := range []component.PortalSide{component.PortalLeft, component.PortalRight} {
		p, ok := portals[side]
		if !ok {
			continue
		}
		for _, el := range PortalEllipses(PortalAABB(p, bounds), p, elapsed) {
			r.drawEllipse(screen, el, p.Color)
		}
	}
}

func (r *RenderSystem) drawPlayer(w *ecs.World, screen *ebiten.Image, bounds component.LevelBounds) {
	e, player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok || !player.Visible {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	img := r.Animations.Frame(anim.Current, anim.Frame)
	if img == nil {
		return
	}

	place := PlacePlayer(t, player, sprite, anim, img.Bounds().Dx(), img.Bounds().Dy(), bounds.FloorY)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sprite.Scale, sprite.Scale)
	if place.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(place.W, 0)
	}
	op.GeoM.Translate(place.X, place.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawEllipse(screen *ebiten.Image, el Ellipse, clr color.Color) {
	if el.RX <= 0 || el.RY <= 0 {
		return
	}
	if r.whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		r.whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(el.CX + el.RX*math.Cos(theta))
		y := float32(el.CY + el.RY*math.Sin(theta))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	var vs []ebiten.Vertex
	var is []uint16
	if el.StrokeWidth > 0 {
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:    float32(el.StrokeWidth),
			LineJoin: vector.LineJoinRound,
		})
	} else {
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}

	cr, cg, cb, ca := vertexColor(clr, el.Alpha)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	screen.DrawTriangles(vs, is, r.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// vertexColor is c as straight-alpha vertex components with its own alpha
// scaled by alpha. A nil color is white.
func vertexColor(c color.Color, alpha float64) (r, g, b, a float32) {
	if c == nil {
		return 1, 1, 1, float32(alpha)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff * float32(alpha)
}

// Ellipse is one layer of a portal. A zero StrokeWidth means filled.
type Ellipse struct {
	CX, CY      float64
	RX, RY      float64
	Alpha       float64
	StrokeWidth float64
}

// PortalPulse is the breathing scale factor at time t seconds.
func PortalPulse(p component.Pulse, t float64) float64 {
	return p.Base + p.Amount*math.Sin(t*p.Speed)
}

// PortalEllipses returns the glow layers of a portal, back to front: two
// translucent pulsing fills and a steady outline.
func PortalEllipses(bb cp.BB, p *component.Portal, t float64) []Ellipse {
	cx := (bb.L + bb.R) / 2
	cy := (bb.B + bb.T) / 2
	rx := (bb.R - bb.L) * 0.9
	ry := (bb.T - bb.B) * 0.55
	pulse := PortalPulse(p.Pulse, t)

	return []Ellipse{
		{CX: cx, CY: cy, RX: rx * 1.3 * pulse, RY: ry * 1.3 * pulse, Alpha: 0.35},
		{CX: cx, CY: cy, RX: rx * 1.1 * pulse, RY: ry * 1.1 * pulse, Alpha: 0.6},
		{CX: cx, CY: cy, RX: rx, RY: ry, Alpha: 1, StrokeWidth: p.OutlineWidth},
	}
}

// SpritePlacement is where a sprite lands on screen, already scaled.
type SpritePlacement struct {
	X, Y  float64
	W, H  float64
	FlipX bool
}

// WalkBob is the vertical offset synced to the walk cycle. It is zero unless
// walking.
func WalkBob(anim *component.Animation, s *component.Sprite) float64 {
	if anim == nil || s == nil || anim.Current != component.AnimWalk || s.WalkBob <= 0 {
		return 0
	}
	def, ok := anim.Defs[component.AnimWalk]
	if !ok || def.FrameCount <= 0 {
		return 0
	}
	phase := float64(anim.Frame) / float64(def.FrameCount) * 2 * math.Pi
	return math.Sin(phase) * s.WalkBob
}

// PlacePlayer anchors the scaled frame's bottom edge to the floor and rounds
// to whole pixels.
func PlacePlayer(t *component.Transform, p *component.Player, s *component.Sprite, anim *component.Animation, frameW, frameH int, floorY float64) SpritePlacement {
	drawW := float64(frameW) * s.Scale
	drawH := float64(frameH) * s.Scale
	return SpritePlacement{
		X:     roundHalfUp(t.Position.X),
		Y:     roundHalfUp(floorY - drawH - s.FeetFudge + WalkBob(anim, s)),
		W:     drawW,
		H:     drawH,
		FlipX: p.Facing < 0,
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
