package component

// LevelBounds stores the screen-space size of the play field and the
// invisible floor line everything stands on.
type LevelBounds struct {
	Width  float64
	Height float64
	FloorY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
