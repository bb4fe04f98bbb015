// Package pixel defines the raw RGBA buffer shared by the transform engine,
// the analyzer and the image adapters.
package pixel

import (
	"errors"
	"fmt"
)

// Channels is the number of bytes per pixel (R, G, B, A).
const Channels = 4

// Channel offsets within a pixel.
const (
	R = 0
	G = 1
	B = 2
	A = 3
)

// Buffer validation errors
var (
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")
	ErrSizeMismatch      = errors.New("pixel: buffer length does not match dimensions")
)

// Buffer is a flat RGBA pixel buffer in row-major order.
// Pix holds Width*Height*4 bytes.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed buffer for width x height pixels.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, DataSize(width, height)),
	}, nil
}

// FromBytes wraps pix as a buffer after checking that its length matches
// the dimensions. The slice is not copied.
func FromBytes(pix []uint8, width, height int) (*Buffer, error) {
	b := &Buffer{Width: width, Height: height, Pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// DataSize returns the byte length of a width x height RGBA buffer.
func DataSize(width, height int) int {
	return width * height * Channels
}

// Validate checks the length invariant.
func (b *Buffer) Validate() error {
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, b.Width, b.Height)
	}
	expected := DataSize(b.Width, b.Height)
	if len(b.Pix) != expected {
		return fmt.Errorf("%w: expected %d bytes for %dx%d RGBA, got %d",
			ErrSizeMismatch, expected, b.Width, b.Height, len(b.Pix))
	}
	return nil
}

// PixelCount returns the number of pixels held in Pix.
func (b *Buffer) PixelCount() int {
	return len(b.Pix) / Channels
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Equal reports whether both buffers have the same dimensions and bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	if b.Width != other.Width || b.Height != other.Height || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// At returns the RGBA values of the pixel with linear index i.
func (b *Buffer) At(i int) (r, g, bl, a uint8) {
	off := i * Channels
	return b.Pix[off+R], b.Pix[off+G], b.Pix[off+B], b.Pix[off+A]
}

// Set writes the RGBA values of the pixel with linear index i.
func (b *Buffer) Set(i int, r, g, bl, a uint8) {
	off := i * Channels
	b.Pix[off+R] = r
	b.Pix[off+G] = g
	b.Pix[off+B] = bl
	b.Pix[off+A] = a
}

// Fill sets every pixel to the same RGBA value.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for i := 0; i < b.PixelCount(); i++ {
		b.Set(i, r, g, bl, a)
	}
}
