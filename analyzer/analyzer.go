// Package analyzer computes per-channel statistics over RGBA buffers and
// pixel-wise differences between two buffers.
package analyzer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/blake2b"

	"pixelcipher/format"
	"pixelcipher/pixel"
)

// Analyzer errors
var (
	// ErrDimensionMismatch is returned by Compare when the buffers differ in length.
	ErrDimensionMismatch = errors.New("analyzer: buffer dimensions do not match")
	ErrNilBuffer         = errors.New("analyzer: nil buffer")
)

// RGB holds one value per colour channel.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Report summarises a single buffer. Averages are rounded half-up.
type Report struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	PixelCount int `json:"pixelCount"`

	Average RGB `json:"average"`
	Min     RGB `json:"min"`
	Max     RGB `json:"max"`

	// Digest is the hex BLAKE2b-256 of the raw pixel bytes. Two buffers with
	// equal digests are, for any practical purpose, byte-identical.
	Digest string `json:"digest"`
}

// Analyze scans buf once. An empty buffer reports zero averages, Min of
// 255 and Max of 0 on every channel.
func Analyze(buf *pixel.Buffer) (Report, error) {
	if buf == nil {
		return Report{}, ErrNilBuffer
	}
	if err := buf.Validate(); err != nil {
		return Report{}, err
	}

	var sumR, sumG, sumB int64
	min := RGB{R: 255, G: 255, B: 255}
	max := RGB{}

	pix := buf.Pix
	for i := 0; i < len(pix); i += pixel.Channels {
		r, g, b := int(pix[i+pixel.R]), int(pix[i+pixel.G]), int(pix[i+pixel.B])
		sumR += int64(r)
		sumG += int64(g)
		sumB += int64(b)

		min.R, max.R = minInt(min.R, r), maxInt(max.R, r)
		min.G, max.G = minInt(min.G, g), maxInt(max.G, g)
		min.B, max.B = minInt(min.B, b), maxInt(max.B, b)
	}

	n := buf.PixelCount()
	digest := blake2b.Sum256(pix)

	return Report{
		Width:      buf.Width,
		Height:     buf.Height,
		PixelCount: n,
		Average: RGB{
			R: roundedMean(sumR, n),
			G: roundedMean(sumG, n),
			B: roundedMean(sumB, n),
		},
		Min:    min,
		Max:    max,
		Digest: hex.EncodeToString(digest[:]),
	}, nil
}

// DifferenceReport describes how far two buffers differ. The string fields
// carry two decimals; the float fields hold the unrounded values.
type DifferenceReport struct {
	ChangedPixels     int    `json:"changedPixels"`
	TotalPixels       int    `json:"totalPixels"`
	ChangePercentage  string `json:"changePercentage"`
	AverageDifference string `json:"averageDifference"`

	ChangeRatio    float64 `json:"-"`
	MeanDifference float64 `json:"-"`
}

// Identical reports whether no pixel changed.
func (d DifferenceReport) Identical() bool {
	return d.ChangedPixels == 0
}

// Compare measures per-pixel differences between a and b. For every pixel
// the mean absolute difference over R, G and B is taken; alpha is ignored.
// Only the buffer lengths must agree, so a 2x8 and a 4x4 buffer compare.
func Compare(a, b *pixel.Buffer) (DifferenceReport, error) {
	if a == nil || b == nil {
		return DifferenceReport{}, ErrNilBuffer
	}
	return CompareBytes(a.Pix, b.Pix)
}

// CompareBytes is Compare over raw RGBA byte slices.
func CompareBytes(a, b []uint8) (DifferenceReport, error) {
	if len(a) != len(b) {
		return DifferenceReport{}, fmt.Errorf("%w: %d vs %d bytes", ErrDimensionMismatch, len(a), len(b))
	}

	total := len(a) / pixel.Channels
	changed := 0
	var diffSum float64

	for i := 0; i+pixel.B < len(a); i += pixel.Channels {
		d := absDiff(a[i+pixel.R], b[i+pixel.R]) +
			absDiff(a[i+pixel.G], b[i+pixel.G]) +
			absDiff(a[i+pixel.B], b[i+pixel.B])
		if d > 0 {
			changed++
			diffSum += float64(d) / 3
		}
	}

	report := DifferenceReport{
		ChangedPixels:     changed,
		TotalPixels:       total,
		ChangePercentage:  format.Percent(changed, total),
		AverageDifference: "0.00",
	}
	if total > 0 {
		report.ChangeRatio = float64(changed) / float64(total)
		report.MeanDifference = diffSum / float64(total)
		report.AverageDifference = format.Fixed(report.MeanDifference, 2)
	}
	return report, nil
}

// roundedMean mirrors Math.round(sum / n) for non-negative sums.
func roundedMean(sum int64, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}

func absDiff(x, y uint8) int {
	if x > y {
		return int(x - y)
	}
	return int(y - x)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
