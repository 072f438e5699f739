package pathkit

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/quicoa/pathkit/internal/raster"
)

// Render fills the path into a newly allocated image. The image covers
// bounds (its size is the rounded-up extent of the canonical bounds),
// the path is drawn in fg over a bg background, and rule decides which
// regions count as inside. Curves are flattened with the default
// [Tolerance].
func Render(p *Path, rule FillRule, fg, bg RGBA, bounds Rect) *image.RGBA {
	if p == nil {
		panic("pathkit: Render requires a non-nil path")
	}
	bounds = bounds.Canon()
	width := int(math.Ceil(bounds.W))
	height := int(math.Ceil(bounds.H))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	Logger().Debug("pathkit: rendering path",
		"contours", p.NumContours(), "width", width, "height", height,
		"rule", rule.String())

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.Color()), image.Point{}, draw.Src)

	r := raster.NewRasterizer(width, height)
	for _, c := range p.contours {
		r.AddPolygon(flattenContour(c, -bounds.X, -bounds.Y, Tolerance))
	}

	rr := raster.FillRuleNonZero
	if rule == FillRuleEvenOdd {
		rr = raster.FillRuleEvenOdd
	}
	r.Fill(rr, func(y int, coverage []float32) {
		for x, cov := range coverage {
			if cov <= 0 {
				continue
			}
			blendPixel(img, x, y, fg, float64(cov))
		}
	})
	return img
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// flattenContour converts a contour into a polygon ring in device
// space, offset by (dx, dy). Curves are subdivided until they are
// within tol of the polyline.
func flattenContour(c *Contour, dx, dy, tol float64) []raster.Point {
	var pts []Point
	var current Point
	for _, e := range c.Elements() {
		switch e := e.(type) {
		case MoveTo:
			current = e.Point
			pts = append(pts, current)
		case LineTo:
			current = e.Point
			pts = append(pts, current)
		case QuadTo:
			pts = flattenQuad(pts, current, e.Control, e.Point, tol)
			current = e.Point
		case CubicTo:
			pts = flattenCubic(pts, current, e.Control1, e.Control2, e.Point, tol)
			current = e.Point
		case Close:
			current = e.Point
			pts = append(pts, current)
		}
	}
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// blendPixel source-over composites fg with the given coverage onto
// one pixel.
func blendPixel(img *image.RGBA, x, y int, fg RGBA, cov float64) {
	alpha := clamp(fg.A*cov, 0, 1)
	if alpha == 0 {
		return
	}
	i := img.PixOffset(x, y)
	pix := img.Pix[i : i+4 : i+4]

	inv := 1 - alpha
	pix[0] = uint8(clamp(fg.R, 0, 1)*alpha*255 + float64(pix[0])*inv + 0.5)
	pix[1] = uint8(clamp(fg.G, 0, 1)*alpha*255 + float64(pix[1])*inv + 0.5)
	pix[2] = uint8(clamp(fg.B, 0, 1)*alpha*255 + float64(pix[2])*inv + 0.5)
	pix[3] = uint8(alpha*255 + float64(pix[3])*inv + 0.5)
}
