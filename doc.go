// Package straddle figures out where horizontal lines go when
// underlining, overlining, or striking through laid-out text.
//
// # Overview
//
// Text shapers position glyphs one at a time, but decorations are drawn
// as continuous segments: one underline per run of same-style glyphs,
// not one per glyph. LineGenerator bridges that gap. It consumes a
// stream of [Glyph] records from any layout engine and merges runs of
// visually contiguous, same-style glyphs into minimal [Line] segments
// for a renderer to paint.
//
// The package is renderer-agnostic: it computes geometry only and never
// touches a surface. Use the gotext subpackage to feed it output from
// go-text/typesetting shaping.
//
// # Quick Start
//
//	style := straddle.GlyphStyle{Color: straddle.RGBA(0, 0, 0, 255)}
//
//	gen := straddle.NewLineGenerator(straddle.Underline)
//
//	var lines []straddle.Line
//	for _, g := range glyphs {
//		if line, ok := gen.AddGlyph(g); ok {
//			lines = append(lines, line)
//		}
//	}
//	if line, ok := gen.PopLine(); ok {
//		lines = append(lines, line)
//	}
//
//	for _, line := range lines {
//		drawLine(line.StartX, line.Y, line.EndX, line.Y, line.Style)
//	}
//
// # Input Contract
//
// Glyphs must arrive in visual emission order: within one text line,
// left to right with non-decreasing x. The generator does not validate
// this; out-of-order input degrades segment boundaries silently rather
// than failing. Every operation is total.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A glyph's LineY is the reference y of its line of text; the decoration
// offset derived from the [LineType] and font size is added to it.
package straddle
