package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadImage loads an image from the given file path, detecting the format
// from the content. Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func LoadImage(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadImageFromBytes decodes an image from a byte slice.
func LoadImageFromBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// SaveImage writes b to path, choosing the encoder from the file extension:
// .png, .jpg/.jpeg (quality 90), .bmp, .tif/.tiff.
func SaveImage(b *Buffer, path string) error {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = b.EncodePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer) error { return b.EncodeJPEG(w, 90) }
	case ".bmp":
		encode = b.EncodeBMP
	case ".tif", ".tiff":
		encode = b.EncodeTIFF
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToNRGBA()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the buffer as JPEG with the given quality (1-100).
// Alpha is discarded.
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	quality = clamp(quality, 1, 100)
	if err := jpeg.Encode(w, b.ToNRGBA(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the buffer as BMP to the given writer.
func (b *Buffer) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToNRGBA()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the buffer as deflate-compressed TIFF.
func (b *Buffer) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, b.ToNRGBA(), opts); err != nil {
		return fmt.Errorf("image: encode TIFF: %w", err)
	}
	return nil
}

// FromStdImage creates a buffer from a standard library image.Image.
// Premultiplied sources are converted to straight alpha.
func FromStdImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := y * nrgba.Stride
			row := buf.Row(y)
			for i, v := range nrgba.Pix[srcStart : srcStart+width*Channels] {
				row[i] = float32(v)
			}
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.Set(x, y, Color{float64(c.R), float64(c.G), float64(c.B), float64(c.A)})
		}
	}
	return buf, nil
}

// ToNRGBA converts the buffer to an 8-bit non-premultiplied image,
// quantizing every channel.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(nrgba.Pix, b.RGBA8())
	return nrgba
}

// EncodeToBytes encodes the buffer to PNG format and returns the bytes.
func (b *Buffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
