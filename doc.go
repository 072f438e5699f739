// Package pathkit builds and represents 2D vector paths.
//
// # Overview
//
// pathkit provides an append-only [Builder] that accumulates drawing
// commands (moves, lines, quadratic and cubic Bézier curves, SVG-style
// elliptical arcs) and produces an immutable [Path]: an ordered sequence
// of [Contour] values, each a typed run of operations with its control
// points. A finished Path is never mutated and is safe to share between
// goroutines; the Builder is a single-owner accumulator and is not.
//
// # Quick Start
//
//	p := pathkit.NewBuilder().
//		MoveTo(0, 0).
//		LineTo(100, 0).
//		LineTo(100, 100).
//		Close().
//		Path()
//
//	bounds, _ := p.Bounds()
//
// Paths can also be parsed from the SVG path-data mini-language:
//
//	p, err := pathkit.ParsePath("M 10,10 A 20 20 0 0 1 50,10 Z")
//
// # Importing foreign outlines
//
// The builder ingests any linear segment stream via [Builder.AddSegments],
// glyph outlines from go-text/typesetting faces via [Builder.AddGlyph],
// and golang.org/x/image/font/sfnt segments via [Builder.AddFontSegments].
//
// # Rendering
//
// [Render] fills a Path into an image.RGBA using a winding or even-odd
// fill rule; cmd/pathrender wraps it into a small PNG-writing tool.
// Stroking, dashing and hit-testing are out of scope.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pathkit
