package triwarp

import (
	"image"
	"math"
)

// DegenerateEpsilon is the smallest triangle area, in square pixels, that
// the warp accepts. Anything smaller is treated as collinear or coincident.
const DegenerateEpsilon = 1e-6

// Triangle is an ordered triple of vertices.
// Orientation is free: clockwise and counter-clockwise triangles both work,
// and a correspondence between opposite orientations mirrors the image.
type Triangle [3]Point

// Tri is a convenience function to create a Triangle.
func Tri(a, b, c Point) Triangle {
	return Triangle{a, b, c}
}

// SignedArea returns the shoelace area of the triangle: positive when the
// vertices run counter-clockwise in a y-up frame, negative otherwise.
func (t Triangle) SignedArea() float64 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0])) * 0.5
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// IsDegenerate reports whether the area is below DegenerateEpsilon.
func (t Triangle) IsDegenerate() bool {
	return !(t.Area() >= DegenerateEpsilon)
}

// Validate returns a *DegenerateTriangleError for a degenerate triangle.
func (t Triangle) Validate() error {
	if t.IsDegenerate() {
		return &DegenerateTriangleError{Area: t.Area()}
	}
	return nil
}

// Map returns the point with barycentric weights (l1, l2, l3) relative to t:
// l1*t[0] + l2*t[1] + l3*t[2].
func (t Triangle) Map(l1, l2, l3 float64) Point {
	return Point{
		X: l1*t[0].X + l2*t[1].X + l3*t[2].X,
		Y: l1*t[0].Y + l2*t[1].Y + l3*t[2].Y,
	}
}

// Bounds returns the smallest pixel rectangle containing every integer
// pixel coordinate the triangle can cover.
func (t Triangle) Bounds() image.Rectangle {
	minX := math.Min(t[0].X, math.Min(t[1].X, t[2].X))
	minY := math.Min(t[0].Y, math.Min(t[1].Y, t[2].Y))
	maxX := math.Max(t[0].X, math.Max(t[1].X, t[2].X))
	maxY := math.Max(t[0].Y, math.Max(t[1].Y, t[2].Y))
	return image.Rect(
		int(math.Ceil(minX)), int(math.Ceil(minY)),
		int(math.Floor(maxX))+1, int(math.Floor(maxY))+1,
	)
}

// Barycentric returns the weights of p relative to t, solved with Cramer's
// rule. l3 is derived as 1 - l1 - l2, so the weights always sum to one.
//
// Returns a *DegenerateTriangleError if t is degenerate.
func Barycentric(p Point, t Triangle) (l1, l2, l3 float64, err error) {
	f, err := newBaryFrame(t)
	if err != nil {
		return 0, 0, 0, err
	}
	l1, l2, l3 = f.weights(p.X, p.Y)
	return l1, l2, l3, nil
}

// Inside reports whether barycentric weights describe a point inside the
// triangle. Points on an edge or a vertex are inside.
func Inside(l1, l2, l3 float64) bool {
	return l1 >= 0 && l2 >= 0 && l3 >= 0
}

// baryFrame holds the per-triangle terms of the barycentric solve so the
// raster loop does not recompute or recheck the determinant per pixel.
type baryFrame struct {
	cx, cy   float64 // vertex C
	byc, cxb float64 // B.y-C.y, C.x-B.x
	cya, axc float64 // C.y-A.y, A.x-C.x
	det      float64
}

func newBaryFrame(t Triangle) (baryFrame, error) {
	a, b, c := t[0], t[1], t[2]
	f := baryFrame{
		cx:  c.X,
		cy:  c.Y,
		byc: b.Y - c.Y,
		cxb: c.X - b.X,
		cya: c.Y - a.Y,
		axc: a.X - c.X,
	}
	f.det = f.byc*f.axc + f.cxb*(a.Y-c.Y)

	if area := math.Abs(f.det) * 0.5; !(area >= DegenerateEpsilon) {
		return baryFrame{}, &DegenerateTriangleError{Area: area}
	}
	return f, nil
}

func (f *baryFrame) weights(x, y float64) (l1, l2, l3 float64) {
	dx := x - f.cx
	dy := y - f.cy
	l1 = (f.byc*dx + f.cxb*dy) / f.det
	l2 = (f.cya*dx + f.axc*dy) / f.det
	return l1, l2, 1 - l1 - l2
}
