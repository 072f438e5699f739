package pathkit

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SegmentOp identifies the kind of a foreign outline segment.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new sub-path at Args[0].
	SegmentOpMoveTo SegmentOp = iota
	// SegmentOpLineTo draws a line to Args[0].
	SegmentOpLineTo
	// SegmentOpQuadTo draws a quadratic curve with control Args[0] to
	// Args[1].
	SegmentOpQuadTo
	// SegmentOpCubicTo draws a cubic curve with controls Args[0] and
	// Args[1] to Args[2].
	SegmentOpCubicTo
	// SegmentOpClose closes the current sub-path. It has no arguments.
	SegmentOpClose
)

// Segment is one element of a foreign outline stream: a typed drawing
// operation with up to three points. Any producer of such a stream can
// feed a Builder through [Builder.AddSegments] without the builder
// knowing its origin.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// AddSegments imports a foreign path representation by translating
// each segment into the corresponding builder call.
func (b *Builder) AddSegments(segs []Segment) *Builder {
	for _, s := range segs {
		switch s.Op {
		case SegmentOpMoveTo:
			b.MoveTo(s.Args[0].X, s.Args[0].Y)
		case SegmentOpLineTo:
			b.LineTo(s.Args[0].X, s.Args[0].Y)
		case SegmentOpQuadTo:
			b.QuadTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case SegmentOpCubicTo:
			b.CubicTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y, s.Args[2].X, s.Args[2].Y)
		case SegmentOpClose:
			b.Close()
		}
	}
	return b
}

// AddGlyph adds the outline of one glyph from a go-text/typesetting
// face, placed with its baseline origin at origin and scaled to the
// given point size. Glyphs without an outline (bitmap or SVG glyphs,
// or whitespace) add nothing.
//
// Font coordinates have y growing upward; they are flipped into the
// path's y-down space. Every sub-path of the outline is closed, as
// glyph contours are closed by convention.
func (b *Builder) AddGlyph(face *font.Face, gid font.GID, origin Point, size float64) *Builder {
	if face == nil {
		panic("pathkit: AddGlyph requires a non-nil face")
	}
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return b
	}
	scale := size / float64(face.Upem())
	at := func(p opentype.SegmentPoint) Point {
		return Point{
			X: origin.X + float64(p.X)*scale,
			Y: origin.Y - float64(p.Y)*scale,
		}
	}

	open := false
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			p := at(s.Args[0])
			b.MoveTo(p.X, p.Y)
			open = true
		case opentype.SegmentOpLineTo:
			p := at(s.Args[0])
			b.LineTo(p.X, p.Y)
		case opentype.SegmentOpQuadTo:
			c := at(s.Args[0])
			p := at(s.Args[1])
			b.QuadTo(c.X, c.Y, p.X, p.Y)
		case opentype.SegmentOpCubeTo:
			c1 := at(s.Args[0])
			c2 := at(s.Args[1])
			p := at(s.Args[2])
			b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		b.Close()
	}
	return b
}

// AddFontSegments adds glyph outline segments produced by
// golang.org/x/image/font/sfnt, offset by origin. The segments are in
// 26.6 fixed point, already y-down, so only the scale conversion
// applies. Sub-paths are closed like in AddGlyph.
func (b *Builder) AddFontSegments(segs []sfnt.Segment, origin Point) *Builder {
	at := func(p fixed.Point26_6) Point {
		return Point{
			X: origin.X + float64(p.X)/64,
			Y: origin.Y + float64(p.Y)/64,
		}
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			p := at(s.Args[0])
			b.MoveTo(p.X, p.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			p := at(s.Args[0])
			b.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			c := at(s.Args[0])
			p := at(s.Args[1])
			b.QuadTo(c.X, c.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1 := at(s.Args[0])
			c2 := at(s.Args[1])
			p := at(s.Args[2])
			b.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		b.Close()
	}
	return b
}
