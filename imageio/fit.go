package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"pixelcipher/pixel"
)

// DisplayMaxSize is the longest side of the preview canvas.
const DisplayMaxSize = 400

// FitWithin scales width and height so the longer side is at most maxSize,
// keeping the aspect ratio. Fractional results are truncated. Images that
// already fit are returned unchanged; nothing is ever enlarged.
func FitWithin(width, height, maxSize int) (int, int) {
	if width > height {
		if width > maxSize {
			height = height * maxSize / width
			width = maxSize
		}
	} else if height > maxSize {
		width = width * maxSize / height
		height = maxSize
	}
	return width, height
}

// Fit returns a copy of buf scaled to fit within maxSize using Catmull-Rom
// resampling. Transforms should run on the fitted buffer when the result
// will be shown or exported at preview size.
func Fit(buf *pixel.Buffer, maxSize int) (*pixel.Buffer, error) {
	src, err := ToImage(buf)
	if err != nil {
		return nil, err
	}

	w, h := FitWithin(buf.Width, buf.Height, maxSize)
	if w == buf.Width && h == buf.Height {
		return buf.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return ToBuffer(dst), nil
}
