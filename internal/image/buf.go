// Package image provides the pixel buffer, sampler and reduced-level builder
// used by triwarp.
//
// Pixels are stored as four float32 channels (R, G, B, A) in the 0-255 range,
// non-premultiplied. Keeping channels as real numbers lets the warp engine
// blend fractional samples before the final quantization on write.
package image

import (
	"errors"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Channels is the number of channels stored per pixel.
const Channels = 4

// Buffer is a rectangular RGBA pixel buffer with real-valued channels.
//
// A Buffer is owned by whoever created it. Concurrent reads are safe;
// concurrent writes are safe only when they touch disjoint pixels.
type Buffer struct {
	pix    []float32
	width  int
	height int
}

// NewBuffer creates a zeroed (transparent black) buffer.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		pix:    make([]float32, width*height*Channels),
		width:  width,
		height: height,
	}, nil
}

// FromRGBA8 creates a buffer from tightly packed 8-bit non-premultiplied
// RGBA data. The data is copied.
func FromRGBA8(data []byte, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < width*height*Channels {
		return nil, ErrDataTooSmall
	}

	b, _ := NewBuffer(width, height)
	for i := range b.pix {
		b.pix[i] = float32(data[i])
	}
	return b, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]float32, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{pix: pix, width: b.width, height: b.height}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Pix returns the raw channel slice, row-major, 4 values per pixel.
func (b *Buffer) Pix() []float32 {
	return b.pix
}

// Row returns the channel values of row y, or nil if y is out of bounds.
func (b *Buffer) Row(y int) []float32 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.width * Channels
	return b.pix[start : start+b.width*Channels]
}

// PixelOffset returns the index of pixel (x, y) in Pix.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * Channels
}

// At returns the color at (x, y).
// Returns a zero Color if coordinates are out of bounds.
func (b *Buffer) At(x, y int) Color {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return Color{}
	}
	return b.at(i)
}

// at reads the pixel at a known-valid offset.
func (b *Buffer) at(i int) Color {
	p := b.pix[i : i+Channels : i+Channels]
	return Color{float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])}
}

// Set stores c at (x, y) without quantizing it.
// Returns ErrOutOfBounds if coordinates are outside the buffer.
func (b *Buffer) Set(x, y int, c Color) error {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return ErrOutOfBounds
	}
	p := b.pix[i : i+Channels : i+Channels]
	p[0] = float32(c[0])
	p[1] = float32(c[1])
	p[2] = float32(c[2])
	p[3] = float32(c[3])
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for i := 0; i < len(b.pix); i += Channels {
		b.pix[i] = float32(c[0])
		b.pix[i+1] = float32(c[1])
		b.pix[i+2] = float32(c[2])
		b.pix[i+3] = float32(c[3])
	}
}

// Clear sets all pixels to transparent black.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// RGBA8 returns the buffer as tightly packed 8-bit RGBA, quantizing each
// channel with Color.Quantize.
func (b *Buffer) RGBA8() []byte {
	out := make([]byte, len(b.pix))
	for i, v := range b.pix {
		out[i] = quantize(float64(v))
	}
	return out
}

// IsEmpty returns true if the buffer has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b == nil || b.width == 0 || b.height == 0
}
