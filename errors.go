package triwarp

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	// ErrInvalidPointCount is matched by *InvalidPointCountError.
	ErrInvalidPointCount = errors.New("triwarp: invalid point count")

	// ErrDegenerateTriangle is matched by *DegenerateTriangleError.
	ErrDegenerateTriangle = errors.New("triwarp: degenerate triangle")

	// ErrInvalidFilterMode is returned for a FilterMode outside the defined set.
	ErrInvalidFilterMode = errors.New("triwarp: invalid filter mode")

	// ErrCollectorFull is returned by PointCollector.AddPoint once three
	// points have been collected.
	ErrCollectorFull = errors.New("triwarp: point collector is full")

	// ErrNoSource is returned by Warper.Warp before the first Load.
	ErrNoSource = errors.New("triwarp: no source image loaded")

	// ErrIncomplete is returned when a triangle is requested from a
	// collector holding fewer than three points.
	ErrIncomplete = errors.New("triwarp: fewer than 3 points collected")
)

// Side names used in error values.
const (
	SideSource      = "source"
	SideDestination = "destination"
)

// InvalidPointCountError reports a point set that does not hold exactly
// three points.
type InvalidPointCountError struct {
	Side string // SideSource or SideDestination
	Got  int
}

func (e *InvalidPointCountError) Error() string {
	return fmt.Sprintf("triwarp: %s triangle needs 3 points, got %d", e.Side, e.Got)
}

// Is reports whether target is ErrInvalidPointCount.
func (e *InvalidPointCountError) Is(target error) bool {
	return target == ErrInvalidPointCount
}

// DegenerateTriangleError reports a triangle whose area is below
// DegenerateEpsilon: its vertices are coincident or collinear.
type DegenerateTriangleError struct {
	Side string // SideSource, SideDestination, or empty outside a warp
	Area float64
}

func (e *DegenerateTriangleError) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("triwarp: degenerate triangle (area %g)", e.Area)
	}
	return fmt.Sprintf("triwarp: degenerate %s triangle (area %g)", e.Side, e.Area)
}

// Is reports whether target is ErrDegenerateTriangle.
func (e *DegenerateTriangleError) Is(target error) bool {
	return target == ErrDegenerateTriangle
}
