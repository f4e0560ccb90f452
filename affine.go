package triwarp

import (
	"log/slog"
	"math"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// A triangle warp is exactly one such transform: the barycentric mapping
// between two triangles is affine.
type Affine struct {
	A, B, C float64 // x' = A*x + B*y + C
	D, E, F float64 // y' = D*x + E*y + F
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// TriangleAffine returns the transform that maps each vertex of from onto
// the corresponding vertex of to.
//
// Returns a *DegenerateTriangleError if from is degenerate. A degenerate to
// is allowed and yields a singular transform.
func TriangleAffine(from, to Triangle) (Affine, error) {
	f, err := newBaryFrame(from)
	if err != nil {
		return Affine{}, err
	}

	// l1 = p1x*x + p1y*y + p1c, l2 = p2x*x + p2y*y + p2c.
	p1x, p1y := f.byc/f.det, f.cxb/f.det
	p2x, p2y := f.cya/f.det, f.axc/f.det
	p1c := -(p1x*f.cx + p1y*f.cy)
	p2c := -(p2x*f.cx + p2y*f.cy)

	// to = T2 + l1*(T0-T2) + l2*(T1-T2)
	u0, u1 := to[0].X-to[2].X, to[1].X-to[2].X
	v0, v1 := to[0].Y-to[2].Y, to[1].Y-to[2].Y

	return Affine{
		A: u0*p1x + u1*p2x,
		B: u0*p1y + u1*p2y,
		C: to[2].X + u0*p1c + u1*p2c,
		D: v0*p1x + v1*p2x,
		E: v0*p1y + v1*p2y,
		F: to[2].Y + v0*p1c + v1*p2c,
	}, nil
}

// Multiply returns m * other: the result applies other first, then m.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Determinant returns the determinant of the linear part. Its magnitude is
// the factor by which the transform scales areas.
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular (non-invertible).
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	inv := 1.0 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// Apply transforms p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// LogValue implements slog.LogValuer.
func (m Affine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("a", m.A), slog.Float64("b", m.B), slog.Float64("c", m.C),
		slog.Float64("d", m.D), slog.Float64("e", m.E), slog.Float64("f", m.F),
	)
}
