package image

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Kernel selects the minification filter used to build the reduced level.
type Kernel uint8

const (
	// KernelBiLinear minifies with a tent kernel widened by the scale factor,
	// an area-style filter comparable to a smoothed scaled draw.
	KernelBiLinear Kernel = iota

	// KernelBox averages each 2x2 block of source pixels.
	// Odd trailing rows and columns are folded into the last block.
	KernelBox

	// KernelCatmullRom minifies with a Catmull-Rom cubic kernel.
	// Sharper than KernelBiLinear, may ring on hard edges.
	KernelCatmullRom
)

// String returns a string representation of the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelBiLinear:
		return "bilinear"
	case KernelBox:
		return "box"
	case KernelCatmullRom:
		return "catmullrom"
	default:
		return "unknown"
	}
}

// ParseKernel returns the kernel named s, as printed by Kernel.String.
func ParseKernel(s string) (Kernel, error) {
	for _, k := range []Kernel{KernelBiLinear, KernelBox, KernelCatmullRom} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("image: unknown kernel %q", s)
}

// ReducedSize returns the dimensions of the half-resolution level of a
// width x height image. Each dimension is halved, rounding down, but never
// drops below 1.
func ReducedSize(width, height int) (int, int) {
	return max(1, width/2), max(1, height/2)
}

// BuildReducedLevel produces the half-resolution level of src.
//
// The result is a new buffer of ReducedSize(src.Bounds()); src is not
// modified. Returns ErrInvalidDimensions for a nil or empty source.
func BuildReducedLevel(src *Buffer, k Kernel) (*Buffer, error) {
	if src.IsEmpty() {
		return nil, ErrInvalidDimensions
	}

	switch k {
	case KernelBox:
		return downsampleBox(src), nil
	case KernelBiLinear:
		return downsampleKernel(src, draw.BiLinear), nil
	case KernelCatmullRom:
		return downsampleKernel(src, draw.CatmullRom), nil
	default:
		return nil, fmt.Errorf("image: unknown kernel %d", k)
	}
}

// downsampleBox creates a half-size version of src using a 2x2 box filter.
func downsampleBox(src *Buffer) *Buffer {
	srcW, srcH := src.Bounds()
	dstW, dstH := ReducedSize(srcW, srcH)
	dst, _ := NewBuffer(dstW, dstH)

	for dy := range dstH {
		sy0 := min(dy*2, srcH-1)
		sy1 := min(dy*2+1, srcH-1)
		for dx := range dstW {
			sx0 := min(dx*2, srcW-1)
			sx1 := min(dx*2+1, srcW-1)

			c0 := src.at((sy0*srcW + sx0) * Channels)
			c1 := src.at((sy0*srcW + sx1) * Channels)
			c2 := src.at((sy1*srcW + sx0) * Channels)
			c3 := src.at((sy1*srcW + sx1) * Channels)

			var avg Color
			for i := range Channels {
				avg[i] = (c0[i] + c1[i] + c2[i] + c3[i]) / 4
			}
			_ = dst.Set(dx, dy, avg)
		}
	}

	return dst
}

// downsampleKernel minifies src with an x/image kernel scaler.
//
// The buffer round-trips through 16-bit NRGBA so the scaler's premultiplied
// arithmetic loses no precision an 8-bit image would notice.
func downsampleKernel(src *Buffer, scaler draw.Scaler) *Buffer {
	srcW, srcH := src.Bounds()
	dstW, dstH := ReducedSize(srcW, srcH)

	in := scratch.Get(srcW, srcH)
	defer scratch.Put(in)
	out := scratch.Get(dstW, dstH)
	defer scratch.Put(out)

	src.fillNRGBA64(in)
	scaler.Scale(out, out.Bounds(), in, in.Bounds(), draw.Src, nil)

	dst, _ := NewBuffer(dstW, dstH)
	for y := range dstH {
		for x := range dstW {
			c := out.NRGBA64At(x, y)
			_ = dst.Set(x, y, Color{
				float64(c.R) / 0x101,
				float64(c.G) / 0x101,
				float64(c.B) / 0x101,
				float64(c.A) / 0x101,
			})
		}
	}
	return dst
}

// fillNRGBA64 writes the buffer into img, a 16-bit non-premultiplied image
// of the same size.
func (b *Buffer) fillNRGBA64(img *image.NRGBA64) {
	for y := range b.height {
		for x := range b.width {
			c := b.at((y*b.width + x) * Channels)
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: widen(c[0]),
				G: widen(c[1]),
				B: widen(c[2]),
				A: widen(c[3]),
			})
		}
	}
}

// widen maps a 0-255 channel value onto the 16-bit range.
func widen(v float64) uint16 {
	v = clampFloat(nanToZero(v), 0, 255)
	return uint16(v*0x101 + 0.5)
}
