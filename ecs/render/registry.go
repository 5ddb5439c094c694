package render

import "github.com/hajimehoshi/ebiten/v2"

// ImageRegistry stores GPU images by key. Backgrounds are keyed by level id.
type ImageRegistry struct {
	images map[string]*ebiten.Image
}

func NewImageRegistry() *ImageRegistry {
	return &ImageRegistry{images: make(map[string]*ebiten.Image)}
}

// Register stores an image by key.
func (r *ImageRegistry) Register(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	r.images[key] = img
}

// Get returns a registered image by key, or nil.
func (r *ImageRegistry) Get(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

func (r *ImageRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.images)
}
