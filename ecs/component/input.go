package component

// Input stores per-frame input state for an entity.
type Input struct {
	// MoveX is -1, 0 or 1 for keys, or the stick value for a gamepad.
	MoveX float64
}

var InputComponent = NewComponent[Input]()
