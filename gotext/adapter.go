// Package gotext feeds go-text/typesetting shaping output to straddle.
//
// The shaper produces fixed-point glyph advances relative to a pen
// position; the line generator wants absolute float placement boxes.
// This package converts between the two:
//
//	var shaper gotext.Shaper
//	out := shaper.ShapeString(face, "Hello, world", 24)
//
//	glyphs := gotext.AppendGlyphs(nil, gotext.Run{
//	    Output: out,
//	    LineY:  baseline,
//	    Size:   24,
//	    Style:  style,
//	})
package gotext

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/straddle"
)

// Run describes one shaped run of text to convert: the shaper output
// plus where the run sits and how it is styled. Every glyph in a run
// shares one style and font size; split multi-style text into runs
// before shaping, as typesetting itself requires.
type Run struct {
	// Output is the shaper output for the run.
	Output shaping.Output

	// OriginX is the pen x position at the start of the run.
	OriginX float32

	// LineY is the reference y of the line of text the run belongs to.
	LineY float32

	// Size is the font size in pixels.
	Size float32

	// Style is the style shared by the run's glyphs.
	Style straddle.GlyphStyle
}

// AppendGlyphs converts the run's glyphs to straddle glyph records,
// appends them to dst in emission order, and returns the extended slice.
// Feed the result to a LineGenerator in the same order.
func AppendGlyphs(dst []straddle.Glyph, run Run) []straddle.Glyph {
	x := run.OriginX
	for _, g := range run.Output.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		dst = append(dst, straddle.Glyph{
			LineY:    run.LineY,
			FontSize: run.Size,
			Width:    adv,
			X:        x + fixedToFloat(g.XOffset),
			Style:    run.Style,
		})
		x += adv
	}

	straddle.Logger().Debug("converted shaped run",
		"glyphs", len(run.Output.Glyphs),
		"line_y", run.LineY,
		"advance", x-run.OriginX)

	return dst
}

// ParseFont parses TTF/OTF font data into a typesetting face.
// font.Face is not safe for concurrent use; parse once per goroutine or
// guard access externally.
func ParseFont(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: parse font: %w", err)
	}
	return face, nil
}

// Shaper shapes text into glyph runs using typesetting's HarfBuzz
// implementation. The zero value is ready to use.
//
// Shaper is NOT safe for concurrent use: HarfbuzzShaper keeps an
// internal buffer that is reused across calls. Each goroutine should
// have its own Shaper.
type Shaper struct {
	hb shaping.HarfbuzzShaper
}

// ShapeString shapes left-to-right text at the given pixel size and
// returns the shaper output. The script is detected from the first
// non-space rune; for mixed-script text, split runs by script before
// shaping.
func (s *Shaper) ShapeString(face *font.Face, text string, size float32) shaping.Output {
	runes := []rune(text)
	return s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
}

// detectScript inspects the runes and returns the script of the first
// non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a pixel size to fixed-point with 6 fractional
// bits.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
