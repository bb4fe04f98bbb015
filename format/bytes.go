package format

import (
	"math"
	"strings"
)

// BytesPerKB is the binary unit base used for file sizes.
const BytesPerKB = 1024

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FileSize converts a byte count to a short human-readable string with at
// most two decimals and no trailing zeros.
// Examples:
//   - FileSize(0) returns "0 Bytes"
//   - FileSize(512) returns "512 Bytes"
//   - FileSize(1536) returns "1.5 KB"
//   - FileSize(10485760) returns "10 MB"
//
// Sizes of a terabyte or more are still expressed in GB.
// Negative values are treated as 0.
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(BytesPerKB)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(BytesPerKB, float64(i))

	return trimZeros(Fixed(value, 2)) + " " + sizeUnits[i]
}

// trimZeros drops trailing fractional zeros and a dangling decimal point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
