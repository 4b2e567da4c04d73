package core

// Color represents a foreground color for a screen cell. Values are
// abstract; the terminal layer maps them to ANSI 256-color codes.
type Color uint8

// The palette: one color per board marking, plus the accents the HUD,
// bonuses and cursor draw with.
const (
	ColorDefault Color = iota

	// Marking colors.
	ColorBrightGreen  // full left-to-right connection
	ColorOrange       // reached from the left pins only
	ColorMagenta      // reached from the right pins only
	ColorBrightYellow // mid-rotation tile, landed bonus, armed power

	// Accents.
	ColorYellow     // falling bonus
	ColorCyan       // row multipliers
	ColorBrightCyan // cursor highlight
	ColorWhite      // held power
	ColorGray       // empty power slot
)
