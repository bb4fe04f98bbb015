package transform

import "pixelcipher/pixel"

// manipulateBits rotates each RGB channel by strength mod 8 and XORs it with
// the pixel's key byte. Decrypt applies the XOR first, then rotates back.
// A shift of 0 (strength 8, 16, ...) reduces this to a plain XOR.
func manipulateBits(pix []uint8, key string, strength int, encrypt bool, prog progress) {
	keyBytes := KeyBytes(key)
	if len(keyBytes) == 0 {
		return
	}
	shifts := strength % 8

	for i := 0; i < len(pix); i += pixel.Channels {
		prog.tick(StageBitManip, i, len(pix))

		kb := keyBytes[(i/pixel.Channels)%len(keyBytes)]
		for c := pixel.R; c <= pixel.B; c++ {
			if encrypt {
				pix[i+c] = RotateLeft(pix[i+c], shifts) ^ kb
			} else {
				pix[i+c] = RotateRight(pix[i+c]^kb, shifts)
			}
		}
	}
}
