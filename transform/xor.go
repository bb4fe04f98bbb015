package transform

import "pixelcipher/pixel"

// xorStrengthFactor scales strength 1..5 onto 51..255.
const xorStrengthFactor = 51

// xorPixels XORs the RGB channels of every pixel with a key byte scaled by
// strength. XOR is its own inverse, so both directions use this function.
func xorPixels(pix []uint8, key string, strength int, prog progress) {
	keyBytes := KeyBytes(key)
	if len(keyBytes) == 0 {
		return
	}
	multiplier := strength * xorStrengthFactor

	for i := 0; i < len(pix); i += pixel.Channels {
		prog.tick(StageXOR, i, len(pix))

		keyIndex := (i / pixel.Channels) % len(keyBytes)
		kb := uint8((int(keyBytes[keyIndex]) * multiplier) % 256)

		pix[i+pixel.R] ^= kb
		pix[i+pixel.G] ^= kb
		pix[i+pixel.B] ^= kb
	}
}
