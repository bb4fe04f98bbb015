package transform

import "math/bits"

// RotateLeft rotates an 8-bit value left by shifts positions (mod 8).
func RotateLeft(value uint8, shifts int) uint8 {
	return bits.RotateLeft8(value, shifts&7)
}

// RotateRight rotates an 8-bit value right by shifts positions (mod 8).
// It is the inverse of RotateLeft for the same shift count.
func RotateRight(value uint8, shifts int) uint8 {
	return bits.RotateLeft8(value, -(shifts & 7))
}
