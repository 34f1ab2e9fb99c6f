package clarion

// Channel layout of the packed color integer. Clarion keeps blue in the
// high byte and red in the low byte.
const (
	redShift   = 0
	greenShift = 8
	blueShift  = 16

	channelMask = 0xFF
)

// Bounds of the packed color range.
const (
	// ColorMin is the smallest valid ClarionColor value, black.
	ColorMin int32 = 0

	// ColorMax is the largest valid ClarionColor value, white.
	ColorMax int32 = 1<<24 - 1
)

// ClarionColor is a color in the Clarion color format, a 24-bit
// blue-green-red value packed into a signed 32-bit integer.
type ClarionColor struct {
	color int32
}

// NewColor returns the ClarionColor for a packed color integer. Returns
// ErrOutOfRange when the value is not within ColorMin..ColorMax.
func NewColor(color int32) (ClarionColor, error) {
	if color < ColorMin || color > ColorMax {
		return ClarionColor{}, ErrOutOfRange
	}
	return ClarionColor{color: color}, nil
}

// Color returns the integral representation of this color, between
// ColorMin (black) and ColorMax (white).
func (c ClarionColor) Color() int32 {
	return c.color
}

// RGB unpacks the color into its red, green and blue channels.
func (c ClarionColor) RGB() RGBColor {
	return RGBColor{
		Red:   uint8(c.color >> redShift & channelMask),
		Green: uint8(c.color >> greenShift & channelMask),
		Blue:  uint8(c.color >> blueShift & channelMask),
	}
}

// RGBColor is a 24-bit color in the RGB color space, one 8-bit integer
// per channel.
type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ColorOf packs the three channels into a ClarionColor. Packed channels
// cannot leave the valid range, so unlike NewColor this does not fail.
func ColorOf(rgb RGBColor) ClarionColor {
	return ClarionColor{
		color: int32(rgb.Blue)<<blueShift |
			int32(rgb.Green)<<greenShift |
			int32(rgb.Red)<<redShift,
	}
}
