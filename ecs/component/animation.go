package component

const (
	AnimIdle = "idle"
	AnimWalk = "walk"
)

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
}

var AnimationComponent = NewComponent[Animation]()

// Play switches to the named animation. Switching restarts at frame 0 so the
// index is always valid for the new sequence; playing the current animation
// is a no-op.
func (a *Animation) Play(name string) {
	if a == nil || a.Current == name {
		return
	}
	a.Current = name
	a.Reset()
}

// Reset rewinds the current animation.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.Frame = 0
	a.FrameTimer = 0
}

// Def returns the definition of the current animation.
func (a *Animation) Def() (AnimationDef, bool) {
	if a == nil {
		return AnimationDef{}, false
	}
	def, ok := a.Defs[a.Current]
	return def, ok
}
