package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/levelq/common"
	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
	"github.com/milk9111/levelq/ecs/entity"
	"github.com/milk9111/levelq/ecs/render"
	"github.com/milk9111/levelq/ecs/system"
	"github.com/milk9111/levelq/levels"
	"github.com/milk9111/levelq/prefabs"
	"golang.org/x/image/font/basicfont"
)

const loadErrorMessage = "Asset loading error. Check console."

type bootState int

const (
	bootLoading bootState = iota
	bootReady
	bootFailed
)

type Options struct {
	Debug     bool
	LevelID   string
	AssetsDir string
	Seed      uint64
	Watch     bool
}

type Game struct {
	opts   Options
	state  bootState
	loaded chan loadResult
	cancel context.CancelFunc

	world     *ecs.World
	player    ecs.Entity
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	manifest  *levels.Manifest
	maxStep   float64

	watcher *prefabs.Watcher
	face    text.Face

	paused  bool
	pauseUI *ebitenui.UI
	quit    bool
}

func NewGame(opts Options) *Game {
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		opts:    opts,
		state:   bootLoading,
		loaded:  make(chan loadResult, 1),
		cancel:  cancel,
		face:    text.NewGoXFace(basicfont.Face7x13),
		maxStep: common.MaxStep,
	}
	g.pauseUI = NewPauseUI(g)

	go func() {
		res, err := loadResources(ctx, opts.AssetsDir)
		g.loaded <- loadResult{res: res, err: err}
	}()

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	switch g.state {
	case bootLoading:
		select {
		case r := <-g.loaded:
			if r.err != nil {
				log.Printf("game: %v", r.err)
				g.state = bootFailed
				return nil
			}
			if err := g.setup(r.res); err != nil {
				log.Printf("game: %v", err)
				g.state = bootFailed
				return nil
			}
			g.state = bootReady
		default:
		}
		return nil
	case bootFailed:
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.reloadPrefabs()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world, g.step())
	g.logEvents()
	return nil
}

// setup builds the world from loaded resources. It runs on the game
// goroutine because it uploads images to the GPU.
func (g *Game) setup(res *resources) error {
	w := ecs.NewWorld()
	bounds := component.LevelBounds{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
		FloorY: res.world.FloorY,
	}
	rng := newRNG(g.opts.Seed)

	if _, err := entity.NewLevel(w, entity.LevelConfig{
		Bounds:          bounds,
		LevelCount:      res.manifest.Len(),
		StartIndex:      startIndex(res.manifest, g.opts.LevelID, rng),
		TransitionDelay: res.world.TransitionDelay(),
	}); err != nil {
		return err
	}
	if _, err := entity.NewPortals(w, res.portal); err != nil {
		return err
	}
	player, err := entity.NewPlayer(w, res.player, bounds)
	if err != nil {
		return err
	}

	backgrounds, animations := render.FromBundle(res.bundle)
	g.renderer = system.NewRenderSystem(res.manifest, backgrounds, animations)
	g.renderer.Debug = g.opts.Debug

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewAnimationSystem(),
		system.NewTransitionSystem(rng),
		system.NewClockSystem(),
	)

	g.world = w
	g.player = player
	g.manifest = res.manifest
	g.maxStep = res.world.MaxStep

	if _, state, ok := ecs.First(w, component.LevelStateComponent.Kind()); ok {
		log.Printf("game: starting in %s (%d backgrounds)", g.levelID(state.Index), backgrounds.Len())
	}
	return nil
}

// step is the simulated time for one tick, capped so a stalled frame cannot
// launch the player across the screen.
func (g *Game) step() float64 {
	return math.Min(1/float64(ebiten.TPS()), g.maxStep)
}

func (g *Game) logEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch ev.Kind {
		case ecs.EventPortalEntered:
			log.Printf("game: entered %v portal", ev.Data)
		case ecs.EventLevelChanged:
			if c, ok := ev.Data.(ecs.LevelChange); ok {
				log.Printf("game: %s -> %s via %s portal", g.levelID(c.From), g.levelID(c.To), c.Side)
			}
		}
	}
}

func (g *Game) levelID(i int) string {
	if lvl, ok := g.manifest.At(i); ok {
		return lvl.ID
	}
	return fmt.Sprintf("#%d", i)
}

// reloadPrefabs applies yaml edits picked up by the watcher. A spec that
// fails to load is logged and the current tuning is kept.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}

	for _, name := range g.watcher.Drain() {
		switch name {
		case "player.yaml":
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			if err := entity.ApplyPlayerSpec(g.world, g.player, spec, g.renderer.Animations.FrameCounts()); err != nil {
				log.Printf("prefabs: apply %s: %v", name, err)
				continue
			}
		case "portal.yaml":
			spec, err := prefabs.LoadPortalSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			entity.ApplyPortalSpec(g.world, spec)
		case "world.yaml":
			spec, err := prefabs.LoadWorldSpec()
			if err != nil {
				log.Printf("prefabs: reload %s: %v", name, err)
				continue
			}
			g.applyWorldSpec(spec)
		default:
			continue
		}
		if mod, ok := prefabs.ModTime(name); ok {
			log.Printf("prefabs: reloaded %s (modified %s)", name, mod.Format("15:04:05"))
		} else {
			log.Printf("prefabs: reloaded %s", name)
		}
	}
}

func (g *Game) applyWorldSpec(spec *prefabs.WorldSpec) {
	g.maxStep = spec.MaxStep
	if _, b, ok := ecs.First(g.world, component.LevelBoundsComponent.Kind()); ok {
		b.FloorY = spec.FloorY
	}
	if _, rt, ok := ecs.First(g.world, component.TransitionRuntimeComponent.Kind()); ok {
		rt.Delay = spec.TransitionDelay()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case bootLoading:
		screen.Clear()
		return
	case bootFailed:
		screen.Clear()
		g.drawMessage(screen, loadErrorMessage, 20, 30)
		return
	}

	g.renderer.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// drawMessage draws s with its baseline at y.
func (g *Game) drawMessage(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-g.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
