package straddle

// GlyphStyle is the styling information relevant to decoration merging.
// Two adjacent glyphs join the same decoration segment only if their
// styles compare equal.
type GlyphStyle struct {
	// Bold reports whether the glyph is bold.
	Bold bool

	// Color is the color of the glyph.
	Color Color
}

// Glyph is a single laid-out glyph's placement box and style.
//
// This corresponds to the positioned glyph types produced by text layout
// engines (go-text/typesetting's shaping.Glyph and similar). Convert
// layout output to this type before feeding the line generator; the
// gotext subpackage does this for typesetting.
type Glyph struct {
	// LineY is the reference y coordinate of the line of text the glyph
	// belongs to, not the decoration's own y.
	LineY float32

	// FontSize is the font size of the glyph in pixels.
	FontSize float32

	// Width is the width of the glyph's bounding box.
	Width float32

	// X is the left edge of the glyph's bounding box.
	X float32

	// Style is the style of the glyph.
	Style GlyphStyle
}
