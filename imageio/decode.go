// Package imageio converts between container image formats and the raw
// RGBA buffers the transform engine works on.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"pixelcipher/format"
	"pixelcipher/pixel"
)

// DefaultMaxBytes is the largest accepted encoded image (10 MB).
const DefaultMaxBytes int64 = 10 * format.BytesPerKB * format.BytesPerKB

// Image adapter errors
var (
	ErrImageTooLarge     = errors.New("imageio: image too large")
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
	ErrDecodeFailed      = errors.New("imageio: failed to decode image")
	ErrEmptyImage        = errors.New("imageio: empty image data")
)

// Format is a container format name as reported by image.Decode.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatWebP Format = "webp"
	FormatBMP  Format = "bmp"
)

// SupportedFormats lists the accepted input formats.
func SupportedFormats() []Format {
	return []Format{FormatJPEG, FormatPNG, FormatGIF, FormatWebP, FormatBMP}
}

// MIMEType returns the image/* media type for f.
func (f Format) MIMEType() string {
	return "image/" + string(f)
}

// FormatFromMIME maps a media type such as "image/png" to a Format.
func FormatFromMIME(mime string) (Format, error) {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	for _, f := range SupportedFormats() {
		if mime == f.MIMEType() {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mime)
}

func supported(name string) bool {
	for _, f := range SupportedFormats() {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Decoder decodes container images into pixel buffers.
type Decoder struct {
	// MaxBytes caps the encoded size. Non-positive means DefaultMaxBytes.
	MaxBytes int64
}

// NewDecoder creates a Decoder with the given size cap.
func NewDecoder(maxBytes int64) *Decoder {
	return &Decoder{MaxBytes: maxBytes}
}

func (d *Decoder) limit() int64 {
	if d == nil || d.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return d.MaxBytes
}

// Decode reads an encoded image from r. size is the caller-reported length
// (for example an upload's Content-Length); pass -1 when unknown. The
// reader is never consumed past the size cap.
func (d *Decoder) Decode(r io.Reader, size int64) (*pixel.Buffer, Format, error) {
	limit := d.limit()
	if size > limit {
		return nil, "", fmt.Errorf("%w: %s exceeds %s",
			ErrImageTooLarge, format.FileSize(size), format.FileSize(limit))
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if int64(len(data)) > limit {
		return nil, "", fmt.Errorf("%w: more than %s", ErrImageTooLarge, format.FileSize(limit))
	}
	return decodeBytes(data)
}

// Decode decodes r with the default 10 MB cap.
func Decode(r io.Reader, size int64) (*pixel.Buffer, Format, error) {
	return (*Decoder)(nil).Decode(r, size)
}

func decodeBytes(data []byte) (*pixel.Buffer, Format, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if !supported(name) {
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	return ToBuffer(img), Format(name), nil
}

// ToBuffer copies img into a new buffer with straight (non-premultiplied)
// alpha, the same layout a browser canvas hands out.
func ToBuffer(img image.Image) *pixel.Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != w*pixel.Channels || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	pix := make([]uint8, pixel.DataSize(w, h))
	copy(pix, nrgba.Pix)
	return &pixel.Buffer{Width: w, Height: h, Pix: pix}
}

// ToImage wraps a copy of buf as an *image.NRGBA.
func ToImage(buf *pixel.Buffer) (*image.NRGBA, error) {
	if buf == nil {
		return nil, ErrEmptyImage
	}
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	copy(img.Pix, buf.Pix)
	return img, nil
}
