package transform

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode/utf16"
)

// GeneratedKeyLength is the length of keys produced by GenerateKey.
const GeneratedKeyLength = 16

const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()"

// KeyBytes converts a key into its byte sequence: one byte per UTF-16 code
// unit, truncated to the low 8 bits. ASCII keys map to their character codes.
func KeyBytes(key string) []byte {
	units := utf16.Encode([]rune(key))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}

// KeySum returns the sum of the key's full UTF-16 code units. Unlike
// KeyBytes nothing is truncated, so "€" contributes 0x20AC, not 0xAC.
// It seeds the shuffle and derives the affine multiplier and addend.
func KeySum(key string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(key)) {
		sum += int(u)
	}
	return sum
}

// GenerateKey returns a random key of GeneratedKeyLength characters drawn
// from letters, digits and !@#$%^&*().
func GenerateKey() (string, error) {
	max := big.NewInt(int64(len(keyAlphabet)))
	buf := make([]byte, GeneratedKeyLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate key: %w", err)
		}
		buf[i] = keyAlphabet[n.Int64()]
	}
	return string(buf), nil
}
