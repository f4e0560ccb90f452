package triwarp

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func TestTriangle_Area(t *testing.T) {
	tests := []struct {
		name       string
		tri        Triangle
		wantSigned float64
	}{
		{name: "right triangle ccw", tri: Tri(Pt(0, 0), Pt(10, 0), Pt(0, 10)), wantSigned: 50},
		{name: "right triangle cw", tri: Tri(Pt(0, 0), Pt(0, 10), Pt(10, 0)), wantSigned: -50},
		{name: "scalene", tri: Tri(Pt(1, 2), Pt(7, 3), Pt(4, 9)), wantSigned: 19.5},
		{name: "collinear", tri: Tri(Pt(0, 0), Pt(1, 1), Pt(2, 2)), wantSigned: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tri.SignedArea(); math.Abs(got-tt.wantSigned) > eps {
				t.Errorf("SignedArea() = %v, want %v", got, tt.wantSigned)
			}
			if got := tt.tri.Area(); math.Abs(got-math.Abs(tt.wantSigned)) > eps {
				t.Errorf("Area() = %v, want %v", got, math.Abs(tt.wantSigned))
			}
		})
	}
}

func TestTriangle_AreaInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := range 200 {
		tri := Tri(
			Pt(rng.Float64()*100, rng.Float64()*100),
			Pt(rng.Float64()*100, rng.Float64()*100),
			Pt(rng.Float64()*100, rng.Float64()*100),
		)
		area := tri.Area()
		tol := 1e-9 * math.Max(1, area)

		offset := Pt(rng.Float64()*500-250, rng.Float64()*500-250)
		var moved Triangle
		for j, p := range tri {
			moved[j] = p.Add(offset)
		}
		if got := moved.Area(); math.Abs(got-area) > tol {
			t.Fatalf("case %d: translated Area() = %v, want %v", i, got, area)
		}

		angle := rng.Float64() * 2 * math.Pi
		var turned Triangle
		for j, p := range tri {
			turned[j] = rotate(p, angle)
		}
		if got := turned.Area(); math.Abs(got-area) > 1e-7*math.Max(1, area) {
			t.Fatalf("case %d: rotated Area() = %v, want %v", i, got, area)
		}

		k := 0.1 + rng.Float64()*5
		var scaled Triangle
		for j, p := range tri {
			scaled[j] = p.Mul(k)
		}
		if got, want := scaled.Area(), area*k*k; math.Abs(got-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("case %d: scaled by %v Area() = %v, want %v", i, k, got, want)
		}
	}
}

func TestTriangle_Validate(t *testing.T) {
	if err := Tri(Pt(0, 0), Pt(10, 0), Pt(0, 10)).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	for _, tri := range []Triangle{
		Tri(Pt(0, 0), Pt(0, 0), Pt(0, 0)),
		Tri(Pt(0, 0), Pt(5, 5), Pt(10, 10)),
		Tri(Pt(0, 0), Pt(1e-4, 0), Pt(0, 1e-4)),
		Tri(Pt(math.NaN(), 0), Pt(1, 0), Pt(0, 1)),
	} {
		err := tri.Validate()
		var dte *DegenerateTriangleError
		if !errors.As(err, &dte) {
			t.Errorf("Validate(%v) = %v, want *DegenerateTriangleError", tri, err)
		}
		if !errors.Is(err, ErrDegenerateTriangle) {
			t.Errorf("Validate(%v) does not match ErrDegenerateTriangle", tri)
		}
	}
}

func TestBarycentric_Vertices(t *testing.T) {
	tri := Tri(Pt(2, 1), Pt(9, 3), Pt(4, 8))
	want := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for i, v := range tri {
		l1, l2, l3, err := Barycentric(v, tri)
		if err != nil {
			t.Fatalf("Barycentric() error = %v", err)
		}
		got := [3]float64{l1, l2, l3}
		for j := range got {
			if math.Abs(got[j]-want[i][j]) > eps {
				t.Errorf("Barycentric(vertex %d) = %v, want %v", i, got, want[i])
				break
			}
		}
	}
}

func TestBarycentric_SumAndRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		tri := Tri(
			Pt(rng.Float64()*200, rng.Float64()*200),
			Pt(rng.Float64()*200, rng.Float64()*200),
			Pt(rng.Float64()*200, rng.Float64()*200),
		)
		if tri.IsDegenerate() {
			continue
		}
		p := Pt(rng.Float64()*300-50, rng.Float64()*300-50)

		l1, l2, l3, err := Barycentric(p, tri)
		if err != nil {
			t.Fatalf("Barycentric() error = %v", err)
		}
		if sum := l1 + l2 + l3; math.Abs(sum-1) > eps {
			t.Fatalf("weights sum to %v, want 1", sum)
		}

		// Affine round trip is only well conditioned for reasonable triangles.
		if tri.Area() > 100 {
			q := tri.Map(l1, l2, l3)
			if math.Abs(q.X-p.X) > 1e-6 || math.Abs(q.Y-p.Y) > 1e-6 {
				t.Fatalf("Map(Barycentric(%v)) = %v", p, q)
			}
		}
	}
}

func TestBarycentric_Degenerate(t *testing.T) {
	_, _, _, err := Barycentric(Pt(1, 1), Tri(Pt(0, 0), Pt(1, 1), Pt(2, 2)))
	var dte *DegenerateTriangleError
	if !errors.As(err, &dte) {
		t.Fatalf("Barycentric(collinear) error = %v, want *DegenerateTriangleError", err)
	}
	if dte.Area != 0 {
		t.Errorf("DegenerateTriangleError.Area = %v, want 0", dte.Area)
	}
}

func TestInside_EdgeInclusive(t *testing.T) {
	tri := Tri(Pt(0, 0), Pt(10, 0), Pt(0, 10))

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior", p: Pt(2, 3), want: true},
		{name: "vertex", p: Pt(10, 0), want: true},
		{name: "bottom edge", p: Pt(5, 0), want: true},
		{name: "left edge", p: Pt(0, 7), want: true},
		{name: "hypotenuse", p: Pt(5, 5), want: true},
		{name: "just outside hypotenuse", p: Pt(5, 5.001), want: false},
		{name: "negative x", p: Pt(-0.001, 1), want: false},
		{name: "far away", p: Pt(100, 100), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l1, l2, l3, err := Barycentric(tt.p, tri)
			if err != nil {
				t.Fatalf("Barycentric() error = %v", err)
			}
			if got := Inside(l1, l2, l3); got != tt.want {
				t.Errorf("Inside(%v, %v, %v) = %v, want %v", l1, l2, l3, got, tt.want)
			}
		})
	}

	if !Inside(0, 0, 1) || !Inside(0, 0.5, 0.5) {
		t.Error("Inside() must accept zero weights")
	}
	if Inside(-1e-12, 0.5, 0.5+1e-12) {
		t.Error("Inside() must reject any negative weight")
	}
}

func TestTriangle_Bounds(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want image.Rectangle
	}{
		{name: "integer vertices", tri: Tri(Pt(0, 0), Pt(5, 0), Pt(0, 5)), want: image.Rect(0, 0, 6, 6)},
		{name: "fractional vertices", tri: Tri(Pt(1.5, 2.2), Pt(7.9, 3), Pt(4, 9.5)), want: image.Rect(2, 3, 8, 10)},
		{name: "negative coordinates", tri: Tri(Pt(-3, -2), Pt(4, -2), Pt(0, 3)), want: image.Rect(-3, -2, 5, 4)},
	}

	for _, tt := range tests {
		if got := tt.tri.Bounds(); got != tt.want {
			t.Errorf("%s: Bounds() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
