package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// FloorY is the logical floor line. It is never drawn.
	FloorY = 600.0

	// MaxStep caps the simulated time of a single tick in seconds.
	MaxStep = 0.033
)
