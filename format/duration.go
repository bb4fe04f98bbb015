package format

import "time"

// Millis formats a duration as milliseconds with two decimals, e.g. "12.35".
func Millis(d time.Duration) string {
	return Fixed(float64(d)/float64(time.Millisecond), 2)
}
