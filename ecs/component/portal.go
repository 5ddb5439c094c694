package component

import "image/color"

// PortalSide names the screen edge a portal sits on.
type PortalSide string

const (
	PortalLeft  PortalSide = "left"
	PortalRight PortalSide = "right"
)

// Opposite returns the other side.
func (s PortalSide) Opposite() PortalSide {
	if s == PortalLeft {
		return PortalRight
	}
	return PortalLeft
}

// Pulse drives the breathing scale of a portal's glow:
// Base + Amount*sin(t*Speed).
type Pulse struct {
	Speed  float64
	Amount float64
	Base   float64
}

// Portal is a static trigger zone standing on the floor at one screen edge.
// Its rectangle is derived from the layout and the level bounds every frame.
type Portal struct {
	Side         PortalSide
	Width        float64
	Height       float64
	InsetX       float64
	Color        color.Color
	OutlineWidth float64
	Pulse        Pulse
}

var PortalComponent = NewComponent[Portal]()
