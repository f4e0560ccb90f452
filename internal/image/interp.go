package image

import "math"

// Color is an RGBA sample with real-valued channels in the 0-255 range.
type Color [Channels]float64

// Quantize rounds each channel to the nearest integer and clamps it to
// [0, 255], the storage range of an 8-bit image.
func (c Color) Quantize() Color {
	return Color{
		float64(quantize(c[0])),
		float64(quantize(c[1])),
		float64(quantize(c[2])),
		float64(quantize(c[3])),
	}
}

// quantize rounds v half away from zero and clamps it to a byte.
// NaN maps to 0.
func quantize(v float64) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(math.Round(v))
}

// Lerp blends a and b per channel: a*(1-t) + b*t.
func Lerp(a, b Color, t float64) Color {
	return Color{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
		lerp(a[3], b[3], t),
	}
}

// SampleBilinear reconstructs the color at pixel coordinates (x, y).
//
// The four neighbors are (floor(x), floor(y)) and the +1 pixels to the right
// and below, each clamped to the buffer edge. Coordinates anywhere on the
// real line are accepted: far outside the buffer the edge pixel repeats.
// NaN coordinates are treated as 0.
//
// At integer coordinates the source pixel is returned verbatim.
func SampleBilinear(b *Buffer, x, y float64) Color {
	w, h := b.Bounds()

	// Keep the coordinates in a range where int conversion is defined;
	// anything beyond one pixel outside clamps to the same edge anyway.
	x = clampFloat(nanToZero(x), -1, float64(w))
	y = clampFloat(nanToZero(y), -1, float64(h))

	fx := math.Floor(x)
	fy := math.Floor(y)
	dx := x - fx
	dy := y - fy

	x1 := clamp(int(fx), 0, w-1)
	y1 := clamp(int(fy), 0, h-1)
	x2 := clamp(int(fx)+1, 0, w-1)
	y2 := clamp(int(fy)+1, 0, h-1)

	row1 := y1 * w
	row2 := y2 * w
	c11 := b.at((row1 + x1) * Channels)
	c21 := b.at((row1 + x2) * Channels)
	c12 := b.at((row2 + x1) * Channels)
	c22 := b.at((row2 + x2) * Channels)

	var out Color
	for i := range Channels {
		out[i] = lerp2D(c11[i], c21[i], c12[i], c22[i], dx, dy)
	}
	return out
}

func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid: horizontally along
// each row, then vertically between the rows.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
