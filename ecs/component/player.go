package component

type Player struct {
	Width  float64
	Height float64
	Speed  float64
	// Facing is +1 when facing right and -1 when facing left.
	Facing  float64
	Visible bool
	// RespawnGap is the distance kept from a portal when the player is
	// placed next to it after a transition.
	RespawnGap float64
}

var PlayerComponent = NewComponent[Player]()
