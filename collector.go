package triwarp

// CollectorState is the fill level of a PointCollector.
type CollectorState uint8

const (
	// CollectorEmpty holds no points.
	CollectorEmpty CollectorState = iota

	// CollectorPartial holds one or two points.
	CollectorPartial

	// CollectorComplete holds three points and accepts no more.
	CollectorComplete
)

// String returns the name of the state.
func (s CollectorState) String() string {
	switch s {
	case CollectorEmpty:
		return "Empty"
	case CollectorPartial:
		return "Partial"
	case CollectorComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// PointCollector gathers the three vertices of one triangle, one pick at a
// time. It moves Empty -> Partial(1) -> Partial(2) -> Complete and back to
// Empty on Reset.
//
// The zero value is an empty collector. A PointCollector is not safe for
// concurrent use.
type PointCollector struct {
	pts [3]Point
	n   int
}

// AddPoint appends p. Once the collector is complete further points are
// rejected with ErrCollectorFull and the collected triangle is unchanged.
func (c *PointCollector) AddPoint(p Point) error {
	if c.n == len(c.pts) {
		return ErrCollectorFull
	}
	c.pts[c.n] = p
	c.n++
	return nil
}

// Reset discards all collected points.
func (c *PointCollector) Reset() {
	*c = PointCollector{}
}

// Len returns the number of collected points.
func (c *PointCollector) Len() int {
	return c.n
}

// State returns the current fill level.
func (c *PointCollector) State() CollectorState {
	switch c.n {
	case 0:
		return CollectorEmpty
	case len(c.pts):
		return CollectorComplete
	default:
		return CollectorPartial
	}
}

// Points returns a copy of the collected points in pick order.
func (c *PointCollector) Points() []Point {
	out := make([]Point, c.n)
	copy(out, c.pts[:c.n])
	return out
}

// Triangle returns the collected triangle, or ErrIncomplete before the
// third point has been added.
func (c *PointCollector) Triangle() (Triangle, error) {
	if c.n != len(c.pts) {
		return Triangle{}, ErrIncomplete
	}
	return Triangle(c.pts), nil
}
