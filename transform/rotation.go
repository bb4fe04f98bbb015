package transform

import "pixelcipher/pixel"

// rotateChannels cycles the RGB channels of every pixel strength times.
// Encrypt shifts R->G->B->R; decrypt shifts the other way. Three rotations
// return to the start, so strength 3 is the identity and 4 equals 1.
func rotateChannels(pix []uint8, strength int, encrypt bool, prog progress) {
	for i := 0; i < len(pix); i += pixel.Channels {
		prog.tick(StageRotate, i, len(pix))

		r, g, b := pix[i+pixel.R], pix[i+pixel.G], pix[i+pixel.B]
		for n := 0; n < strength; n++ {
			if encrypt {
				r, g, b = b, r, g
			} else {
				r, g, b = g, b, r
			}
		}
		pix[i+pixel.R], pix[i+pixel.G], pix[i+pixel.B] = r, g, b
	}
}
