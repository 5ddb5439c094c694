package component

import "time"

// TransitionRuntime holds the state of the portal transition. At most one
// exists per world; Active is false when idle.
type TransitionRuntime struct {
	Active   bool
	Until    time.Time
	LastSide PortalSide
	Delay    time.Duration
}

var TransitionRuntimeComponent = NewComponent[TransitionRuntime]()
