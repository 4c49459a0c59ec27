package straddle

// LineType specifies which decoration a LineGenerator produces.
type LineType int

const (
	// Overline is a line drawn over the text.
	Overline LineType = iota
	// StrikeThrough is a line drawn through the middle of the text.
	StrikeThrough
	// Underline is a line drawn under the text.
	Underline
)

// String returns the string representation of the line type.
func (t LineType) String() string {
	switch t {
	case Overline:
		return "Overline"
	case StrikeThrough:
		return "StrikeThrough"
	case Underline:
		return "Underline"
	default:
		return "Unknown"
	}
}

// offset returns the vertical distance from a text line's reference y to
// the decoration, for the given font size in pixels.
func (t LineType) offset(fontSize float32) float32 {
	switch t {
	case StrikeThrough:
		return fontSize / 2
	case Underline:
		return fontSize
	default:
		return 0
	}
}

// Line is one horizontal decoration segment to be rendered.
// It spans [StartX, EndX] at height Y, with EndX >= StartX.
type Line struct {
	// Y is the y coordinate of the line.
	Y float32

	// StartX is the x coordinate of the line's start.
	StartX float32

	// EndX is the x coordinate of the line's end.
	EndX float32

	// Style is the style shared by every glyph that contributed to the
	// line.
	Style GlyphStyle
}
