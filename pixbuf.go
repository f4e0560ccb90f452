package triwarp

import (
	"image"
	"io"

	intImage "github.com/gogpu/triwarp/internal/image"
)

// PixelBuffer is a W x H RGBA buffer with real-valued channels in [0, 255].
// Warp results are quantized to whole values on write.
type PixelBuffer = intImage.Buffer

// Color is one RGBA sample of a PixelBuffer.
type Color = intImage.Color

// Kernel selects the filter used to build the half-resolution level.
type Kernel = intImage.Kernel

// Reduced-level kernels.
const (
	// KernelBiLinear is an area-style tent filter, widened by the
	// minification factor. This is the default.
	KernelBiLinear = intImage.KernelBiLinear

	// KernelBox averages each 2x2 block.
	KernelBox = intImage.KernelBox

	// KernelCatmullRom is a sharper cubic filter.
	KernelCatmullRom = intImage.KernelCatmullRom
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrUnsupportedFormat is returned by SaveImage for an unknown extension.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat
)

// NewPixelBuffer creates a transparent black buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	return intImage.NewBuffer(width, height)
}

// PixelBufferFromRGBA8 copies tightly packed 8-bit non-premultiplied RGBA
// data, as produced by an image decoder, into a new buffer.
func PixelBufferFromRGBA8(data []byte, width, height int) (*PixelBuffer, error) {
	return intImage.FromRGBA8(data, width, height)
}

// PixelBufferFromImage converts a standard library image.
func PixelBufferFromImage(img image.Image) (*PixelBuffer, error) {
	return intImage.FromStdImage(img)
}

// ParseKernel parses a kernel name as printed by Kernel.String.
func ParseKernel(s string) (Kernel, error) {
	return intImage.ParseKernel(s)
}

// BuildReducedLevel returns the half-resolution level of src.
// Warper builds and caches it on Load; call this directly only to inspect it.
func BuildReducedLevel(src *PixelBuffer, k Kernel) (*PixelBuffer, error) {
	return intImage.BuildReducedLevel(src, k)
}

// Decode reads an image in any supported format
// (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Decode(r io.Reader) (*PixelBuffer, error) {
	return intImage.Decode(r)
}

// LoadImage reads an image file in any supported format.
func LoadImage(path string) (*PixelBuffer, error) {
	return intImage.LoadImage(path)
}

// SaveImage writes b to path; the format follows the extension
// (.png, .jpg, .jpeg, .bmp, .tif, .tiff).
func SaveImage(b *PixelBuffer, path string) error {
	return intImage.SaveImage(b, path)
}
