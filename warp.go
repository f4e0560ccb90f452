package triwarp

import (
	"fmt"
	"image"
	"math"

	intImage "github.com/gogpu/triwarp/internal/image"
	"github.com/gogpu/triwarp/internal/parallel"
)

// Correspondence pairs the source triangle with the destination triangle.
// Src[i] is mapped onto Dst[i]. Both sets must hold exactly three points;
// the warp validates this before doing any work.
type Correspondence struct {
	Src []Point
	Dst []Point
}

// NewCorrespondence builds a correspondence from two collectors.
// Either collector may be incomplete; the warp reports the point count.
func NewCorrespondence(src, dst *PointCollector) Correspondence {
	return Correspondence{Src: src.Points(), Dst: dst.Points()}
}

// Triangles validates the point counts and returns both triangles.
func (c Correspondence) Triangles() (src, dst Triangle, err error) {
	if len(c.Src) != 3 {
		return src, dst, &InvalidPointCountError{Side: SideSource, Got: len(c.Src)}
	}
	if len(c.Dst) != 3 {
		return src, dst, &InvalidPointCountError{Side: SideDestination, Got: len(c.Dst)}
	}
	return Triangle(c.Src), Triangle(c.Dst), nil
}

// ScaleFactor returns sqrt(dstArea / srcArea), the linear size of the
// destination triangle relative to the source triangle.
// The result is only meaningful for a non-degenerate src.
func ScaleFactor(src, dst Triangle) float64 {
	return math.Sqrt(dst.Area() / src.Area())
}

// BlendWeight returns the share of the reduced-level sample in a trilinear
// warp at the given scale: clamp(2*(1-scale), 0, 1). It is 0 at scale 1 and
// above, and reaches 1 once the destination is half the source size.
func BlendWeight(scale float64) float64 {
	return math.Max(0, math.Min(1, 2*(1-scale)))
}

// Warp maps the source triangle of c onto its destination triangle and
// returns a new buffer; source is not modified. Pixels outside the
// destination triangle are transparent black.
//
// Warp builds the half-resolution level only when mode is Trilinear and the
// destination is smaller than the source. To warp the same image
// repeatedly, use a Warper, which caches that level.
//
// Errors are reported before any pixel is produced: *InvalidPointCountError,
// *DegenerateTriangleError, ErrInvalidFilterMode, or ErrInvalidDimensions
// for a nil or empty source.
func Warp(source *PixelBuffer, c Correspondence, mode FilterMode, opts ...Option) (*PixelBuffer, error) {
	o := buildOptions(opts)

	p, err := newPlan(source, c, mode, o.bounds)
	if err != nil {
		return nil, err
	}

	var reduced *PixelBuffer
	if p.trilinear {
		reduced, err = intImage.BuildReducedLevel(source, o.kernel)
		if err != nil {
			return nil, fmt.Errorf("triwarp: build reduced level: %w", err)
		}
	}

	var pool *parallel.WorkerPool
	if o.workers != 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	return p.render(source, reduced, pool)
}

// plan holds everything the raster loop needs, computed and validated once
// per warp.
type plan struct {
	src, dst  Triangle
	frame     baryFrame // barycentric solve against dst
	scale     float64
	blend     float64
	trilinear bool            // blend with the reduced level
	out       image.Rectangle // output extent in canvas coordinates
}

func newPlan(source *PixelBuffer, c Correspondence, mode FilterMode, bounds Bounds) (plan, error) {
	src, dst, err := c.Triangles()
	if err != nil {
		return plan{}, err
	}
	if source.IsEmpty() {
		return plan{}, ErrInvalidDimensions
	}
	if !mode.IsValid() {
		return plan{}, fmt.Errorf("%w: %d", ErrInvalidFilterMode, uint8(mode))
	}

	if src.IsDegenerate() {
		return plan{}, &DegenerateTriangleError{Side: SideSource, Area: src.Area()}
	}
	frame, err := newBaryFrame(dst)
	if err != nil {
		return plan{}, &DegenerateTriangleError{Side: SideDestination, Area: dst.Area()}
	}

	p := plan{
		src:   src,
		dst:   dst,
		frame: frame,
		scale: ScaleFactor(src, dst),
	}
	p.blend = BlendWeight(p.scale)
	p.trilinear = mode == Trilinear && p.scale < 1

	switch bounds {
	case BoundsTight:
		p.out = dst.Bounds()
		if p.out.Empty() {
			// No integer pixel falls inside; keep a single transparent pixel.
			p.out.Max = p.out.Min.Add(image.Pt(1, 1))
		}
	default:
		p.out = image.Rect(0, 0, source.Width(), source.Height())
	}

	Logger().Debug("triwarp: warp planned",
		"mode", mode,
		"srcArea", src.Area(),
		"dstArea", dst.Area(),
		"scale", p.scale,
		"blend", p.blend,
		"trilinear", p.trilinear,
		"bounds", bounds,
		"out", p.out)

	return p, nil
}

// render runs the raster loop. reduced may be nil unless p.trilinear.
func (p *plan) render(source, reduced *PixelBuffer, pool *parallel.WorkerPool) (*PixelBuffer, error) {
	out, err := intImage.NewBuffer(p.out.Dx(), p.out.Dy())
	if err != nil {
		return nil, err
	}

	// Only rows and columns that can hold a covered pixel are visited.
	visible := p.dst.Bounds().Intersect(p.out)
	if visible.Empty() {
		return out, nil
	}

	parallel.ForEachBand(pool, visible.Dy(), func(b parallel.Band) {
		for y := visible.Min.Y + b.Y0; y < visible.Min.Y+b.Y1; y++ {
			for x := visible.Min.X; x < visible.Max.X; x++ {
				l1, l2, l3 := p.frame.weights(float64(x), float64(y))
				if !Inside(l1, l2, l3) {
					continue
				}
				s := p.src.Map(l1, l2, l3)
				c := p.sample(source, reduced, s)
				_ = out.Set(x-p.out.Min.X, y-p.out.Min.Y, c.Quantize())
			}
		}
	})

	return out, nil
}

// sample reconstructs the color at source point s.
func (p *plan) sample(source, reduced *PixelBuffer, s Point) Color {
	c1 := intImage.SampleBilinear(source, s.X, s.Y)
	if !p.trilinear {
		return c1
	}
	c2 := intImage.SampleBilinear(reduced, s.X*0.5, s.Y*0.5)
	return intImage.Lerp(c1, c2, p.blend)
}
