package core

// Color is a palette entry for a screen cell. Each entry carries the
// runner's hex colour and the closest xterm-256 index for terminals
// without truecolor.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
	ColorDarkPurple
	ColorGold

	colorCount
)

type paletteEntry struct {
	hex     string
	ansi256 string
}

// Road greys, neon lane markers and the coin golds of the runner look.
var palette = [colorCount]paletteEntry{
	ColorRed:           {"#C0392B", "124"},
	ColorGreen:         {"#27AE60", "35"},
	ColorYellow:        {"#F1C40F", "220"},
	ColorBlue:          {"#2E86DE", "32"},
	ColorMagenta:       {"#C2185B", "161"},
	ColorCyan:          {"#00A8A8", "37"},
	ColorWhite:         {"#D0D3D4", "252"},
	ColorBrightRed:     {"#FF4D4D", "203"},
	ColorBrightGreen:   {"#2ECC71", "41"},
	ColorBrightYellow:  {"#FFE66D", "227"},
	ColorBrightBlue:    {"#5DADE2", "75"},
	ColorBrightMagenta: {"#FF6EC7", "206"},
	ColorBrightCyan:    {"#00F5FF", "51"},
	ColorBrightWhite:   {"#FFFFFF", "231"},
	ColorOrange:        {"#FF9933", "208"},
	ColorGray:          {"#7F8C8D", "245"},
	ColorPurple:        {"#9B59B6", "135"},
	ColorDarkPurple:    {"#2C1A4D", "54"},
	ColorGold:          {"#FFD700", "220"},
}

// Hex returns the truecolor value, or "" for the terminal default.
func (c Color) Hex() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].hex
}

// ANSI256 returns the xterm-256 fallback, or "" for the terminal default.
func (c Color) ANSI256() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].ansi256
}

// Colors lists every palette entry except the default.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
