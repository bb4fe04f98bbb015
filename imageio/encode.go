package imageio

import (
	"fmt"
	"image/png"
	"io"
	"strings"
	"time"

	"pixelcipher/pixel"
)

// EncodePNG writes buf as a PNG. PNG is lossless, so decoding the output
// yields the same bytes and an encrypted image can be decrypted later.
func EncodePNG(w io.Writer, buf *pixel.Buffer) error {
	img, err := ToImage(buf)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: failed to encode png: %w", err)
	}
	return nil
}

// ExportFilename returns the download name for a processed image:
// "<operation>-<algorithm>-<UTC timestamp to the second>.png", with the
// timestamp's colons replaced by dashes.
//
//	ExportFilename("encrypt", "xor", t) // "encrypt-xor-2024-03-05T14-07-09.png"
func ExportFilename(operation, algorithm string, t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return fmt.Sprintf("%s-%s-%s.png", operation, algorithm, stamp)
}
