package component

// Clock accumulates simulated seconds since the world started.
type Clock struct {
	Elapsed float64
}

var ClockComponent = NewComponent[Clock]()
