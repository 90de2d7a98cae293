package core

// Color is the foreground colour of a screen cell. The platform maps each
// value to an ANSI 256-colour code.
type Color uint8

// Palette. The piece colours follow the classic guideline hues as closely
// as a terminal palette allows.
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorGray
	ColorDim
)

// ANSI returns the 256-colour palette index for c. ColorDefault returns an
// empty string, meaning the terminal's own foreground.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorPurple:
		return "129"
	case ColorGray:
		return "245"
	case ColorDim:
		return "238"
	default:
		return ""
	}
}
