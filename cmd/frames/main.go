package main

import (
	"context"
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/levelq/assets"
)

const screenSize = 512

// previewGame loops one frame sequence at a fixed rate.
type previewGame struct {
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
	scale       float64
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	fw := float64(g.frames[0].Bounds().Dx()) * g.scale
	fh := float64(g.frames[0].Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((screenSize-fw)/2, (screenSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.frames[g.current], op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func ticksPerFrame(fps float64) int {
	if fps <= 0 {
		return 1
	}
	ticks := int(float64(ebiten.DefaultTPS) / fps)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func main() {
	folder := flag.String("folder", "sprites/hero_walk_12f", "frame folder holding frame_01.png, frame_02.png, ...")
	count := flag.Int("count", 6, "number of frames in the folder")
	fps := flag.Float64("fps", 12, "playback rate")
	scale := flag.Float64("scale", 2.5, "draw scale")
	dir := flag.String("assets", "", "read frames from this directory instead of the embedded assets")
	flag.Parse()

	fsys := assets.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	imgs, err := assets.LoadFrameSequence(context.Background(), fsys, *folder, *count)
	if err != nil {
		log.Fatal(err)
	}
	frames := make([]*ebiten.Image, 0, len(imgs))
	for _, img := range imgs {
		frames = append(frames, ebiten.NewImageFromImage(img))
	}

	g := &previewGame{frames: frames, ticksPerFrm: ticksPerFrame(*fps), scale: *scale}
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("frames: " + *folder)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
