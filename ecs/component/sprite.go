package component

// Sprite holds how an animated entity is placed on screen. Frames are looked
// up by animation name at draw time.
type Sprite struct {
	Scale float64
	// FeetFudge lifts the sprite (positive) or sinks it (negative) to hide
	// transparent padding under the feet.
	FeetFudge float64
	// WalkBob is the amplitude in pixels of the vertical bob while walking.
	WalkBob float64
}

var SpriteComponent = NewComponent[Sprite]()
