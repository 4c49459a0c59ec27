package straddle

// epsilon is the absolute tolerance under which two coordinates compare
// equal, absorbing rounding noise from upstream layout.
const epsilon = 0.001

// approxEq reports whether two floats are approximately equal.
func approxEq(a, b float32) bool {
	return abs(a-b) < epsilon
}

// LineGenerator merges a stream of glyphs into decoration line segments.
//
// Feed glyphs one at a time with AddGlyph, in visual emission order, and
// call PopLine once at end of stream to flush the final segment. At most
// one segment is open at any time; a glyph either extends it or closes
// it and starts the next one.
//
// LineGenerator is NOT safe for concurrent use. Each decoration pass
// should have its own generator.
type LineGenerator struct {
	// ongoing is the line currently being accumulated, or nil when the
	// generator is idle. Owned exclusively by the generator.
	ongoing *ongoingLine

	// lineType selects the decoration being produced.
	lineType LineType
}

// ongoingLine accumulates the run currently being extended.
type ongoingLine struct {
	y      float32
	startX float32
	endX   float32
	style  GlyphStyle

	// lastLineY and fontSize track the most recently absorbed glyph, for
	// deciding whether the next glyph continues the run.
	lastLineY float32
	fontSize  float32
}

// line converts the accumulator into its output form.
func (o *ongoingLine) line() Line {
	return Line{Y: o.y, StartX: o.startX, EndX: o.endX, Style: o.style}
}

// NewLineGenerator creates a new, idle generator producing the given
// line type.
func NewLineGenerator(ty LineType) *LineGenerator {
	return &LineGenerator{lineType: ty}
}

// AddGlyph adds one glyph to the generator.
//
// If the glyph continues the open run, the run is extended and ok is
// false. Otherwise the open run (if any) is closed and returned, and a
// new run is started from the glyph. The run a glyph joins is never the
// one returned.
func (g *LineGenerator) AddGlyph(glyph Glyph) (line Line, ok bool) {
	// A glyph extends the open run only when it stays on the same text
	// line, does not reach back past the run's current end, and matches
	// its size and style.
	if cur := g.ongoing; cur != nil &&
		approxEq(cur.lastLineY, glyph.LineY) &&
		cur.endX <= glyph.X &&
		approxEq(cur.fontSize, glyph.FontSize) &&
		cur.style == glyph.Style {
		cur.endX = glyph.X + glyph.Width
		cur.lastLineY = glyph.LineY
		cur.fontSize = glyph.FontSize
		return Line{}, false
	}

	old := g.ongoing
	g.ongoing = &ongoingLine{
		y:         glyph.LineY + g.lineType.offset(glyph.FontSize),
		startX:    glyph.X,
		endX:      glyph.X + glyph.Width,
		style:     glyph.Style,
		lastLineY: glyph.LineY,
		fontSize:  glyph.FontSize,
	}

	if old == nil {
		return Line{}, false
	}

	// If the break happened mid-line (style or size change rather than a
	// move to another text line), snap the closed run to end exactly
	// where the new one begins: no gap, no overlap. The comparison uses
	// the last observed glyph's line position, not the run's own y,
	// which already carries the decoration offset.
	if approxEq(old.lastLineY, glyph.LineY) {
		old.endX = glyph.X
	}

	return old.line(), true
}

// PopLine closes and returns the open run, leaving the generator idle.
// ok is false if no run was open. Call once at end of stream; the final
// run is never emitted by AddGlyph alone.
func (g *LineGenerator) PopLine() (line Line, ok bool) {
	if g.ongoing == nil {
		return Line{}, false
	}
	line = g.ongoing.line()
	g.ongoing = nil
	return line, true
}
