package config

import "image/color"

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Street       = color.RGBA{R: 52, G: 48, B: 58, A: 255}
	Sky          = color.RGBA{R: 24, G: 22, B: 40, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// PlayerColors tints each player slot.
var PlayerColors = [2]color.RGBA{LightBlue, LightGreen}
