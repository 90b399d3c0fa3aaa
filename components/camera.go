package components

import (
	"github.com/yohamta/donburi"
)

// CameraData is the horizontal view center. The view never scrolls
// vertically; Offset carries the current shake.
type CameraData struct {
	X      float64
	Offset float64
	Placed bool // First follow snaps instead of easing in
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is a decaying horizontal shake, present on the camera
// entity only while it runs.
type ScreenShakeData struct {
	Intensity float64 // Peak offset in pixels
	Duration  int     // Frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
