// Command triwarp warps the triangle of an image onto another triangle.
//
// Usage:
//
//	triwarp -in photo.png -out warped.png \
//	    -src "0,0 200,0 0,200" -dst "40,30 120,50 20,140" -mode trilinear
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/triwarp"
)

func main() {
	var (
		input   = flag.String("in", "", "source image (png, jpeg, gif, bmp, tiff, webp)")
		output  = flag.String("out", "warped.png", "output file (png, jpeg, bmp, tiff)")
		srcPts  = flag.String("src", "", `source triangle, "x,y x,y x,y"`)
		dstPts  = flag.String("dst", "", `destination triangle, "x,y x,y x,y"`)
		mode    = flag.String("mode", "trilinear", "filter mode: bilinear or trilinear")
		kernel  = flag.String("kernel", "bilinear", "reduced level filter: bilinear, box or catmullrom")
		bounds  = flag.String("bounds", "canvas", "output extent: canvas or tight")
		workers = flag.Int("workers", 0, "raster goroutines (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "log warp parameters")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -in")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	triwarp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var src, dst triwarp.PointCollector
	if err := collectPoints(&src, *srcPts); err != nil {
		log.Fatalf("Invalid -src: %v", err)
	}
	if err := collectPoints(&dst, *dstPts); err != nil {
		log.Fatalf("Invalid -dst: %v", err)
	}

	m, err := triwarp.ParseFilterMode(*mode)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}
	k, err := triwarp.ParseKernel(*kernel)
	if err != nil {
		log.Fatalf("Invalid -kernel: %v", err)
	}
	b, err := triwarp.ParseBounds(*bounds)
	if err != nil {
		log.Fatalf("Invalid -bounds: %v", err)
	}

	img, err := triwarp.LoadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	w := triwarp.NewWarper(
		triwarp.WithWorkers(*workers),
		triwarp.WithKernel(k),
		triwarp.WithBounds(b),
	)
	defer w.Close()

	if err := w.Load(img); err != nil {
		log.Fatalf("Failed to load source: %v", err)
	}

	c := triwarp.NewCorrespondence(&src, &dst)
	logTransform(c)

	out, err := w.Warp(c, m)
	if err != nil {
		log.Fatalf("Failed to warp: %v", err)
	}

	if err := triwarp.SaveImage(out, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stdout, "Warped %s to %s (%dx%d, %d covered pixels, %s)\n",
		*input, *output, out.Width(), out.Height(), coveredPixels(out), m)
}

// parsePoints parses whitespace-separated "x,y" pairs.
func parsePoints(s string) ([]triwarp.Point, error) {
	fields := strings.Fields(s)
	pts := make([]triwarp.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		pts = append(pts, triwarp.Pt(x, y))
	}
	return pts, nil
}

// collectPoints feeds the points of s into c. Point count problems are left
// to the warp, which names the offending side.
func collectPoints(c *triwarp.PointCollector, s string) error {
	pts, err := parsePoints(s)
	if err != nil {
		return err
	}
	for _, p := range pts {
		if err := c.AddPoint(p); err != nil {
			return fmt.Errorf("%d points given: %w", len(pts), err)
		}
	}
	return nil
}

func logTransform(c triwarp.Correspondence) {
	src, dst, err := c.Triangles()
	if err != nil {
		return
	}
	if m, err := triwarp.TriangleAffine(src, dst); err == nil {
		triwarp.Logger().Debug("triwarp: source to destination", "affine", m)
	}
}

// coveredPixels counts pixels with non-zero alpha.
func coveredPixels(b *triwarp.PixelBuffer) int {
	n := 0
	for y := range b.Height() {
		for x := range b.Width() {
			if b.At(x, y)[3] > 0 {
				n++
			}
		}
	}
	return n
}
