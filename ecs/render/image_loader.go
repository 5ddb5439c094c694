package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/levelq/assets"
)

// FromBundle uploads decoded images to the GPU. It must run on the game
// goroutine after the bundle has fully loaded.
func FromBundle(b *assets.Bundle) (*ImageRegistry, *AnimationLibrary) {
	reg := NewImageRegistry()
	lib := NewAnimationLibrary()
	if b == nil {
		return reg, lib
	}
	for id, img := range b.Backgrounds {
		reg.Register(id, ebiten.NewImageFromImage(img))
	}
	for name, frames := range b.Frames {
		imgs := make([]*ebiten.Image, 0, len(frames))
		for _, f := range frames {
			imgs = append(imgs, ebiten.NewImageFromImage(f))
		}
		lib.Register(name, imgs)
	}
	return reg, lib
}
