package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Colors used when drawing entities and the HUD.
const (
	ColorShip       = ColorBrightCyan
	ColorShipHit    = ColorCyan
	ColorEnemy      = ColorBrightRed
	ColorAsteroid   = ColorGray
	ColorProjectile = ColorBrightYellow
	ColorHUD        = ColorWhite
	ColorAlert      = ColorOrange
)
