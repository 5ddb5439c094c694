package render

import "github.com/hajimehoshi/ebiten/v2"

// AnimationLibrary stores frame sequences by animation name.
type AnimationLibrary struct {
	clips map[string][]*ebiten.Image
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{clips: make(map[string][]*ebiten.Image)}
}

// Register adds a frame sequence to the library.
func (l *AnimationLibrary) Register(name string, frames []*ebiten.Image) {
	if l == nil || name == "" || len(frames) == 0 {
		return
	}
	l.clips[name] = frames
}

// Frames returns the sequence for name.
func (l *AnimationLibrary) Frames(name string) []*ebiten.Image {
	if l == nil || name == "" {
		return nil
	}
	return l.clips[name]
}

// Frame returns one frame, or nil when the index is out of range.
func (l *AnimationLibrary) Frame(name string, i int) *ebiten.Image {
	frames := l.Frames(name)
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

// FrameCounts reports how many frames each registered animation holds.
func (l *AnimationLibrary) FrameCounts() map[string]int {
	if l == nil {
		return nil
	}
	out := make(map[string]int, len(l.clips))
	for name, frames := range l.clips {
		out[name] = len(frames)
	}
	return out
}
