package component

// LevelState tracks which background level is showing.
type LevelState struct {
	Index int
	Count int
}

var LevelStateComponent = NewComponent[LevelState]()
