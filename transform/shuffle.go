package transform

import "pixelcipher/pixel"

// shufflePixels permutes whole pixels (alpha included) using ShuffleSequence.
// Forward moves pixel i to slot seq[i]; inverse moves pixel seq[i] back to
// slot i. Reads come from a snapshot so writes never feed later reads.
func shufflePixels(pix []uint8, key string, strength int, encrypt bool, prog progress) {
	total := len(pix) / pixel.Channels
	seq := ShuffleSequence(total, key, strength)

	src := make([]uint8, len(pix))
	copy(src, pix)

	stage := StageShuffle
	if !encrypt {
		stage = StageUnshuffle
	}

	for i := 0; i < total; i++ {
		prog.tick(stage, i, total)

		from, to := i, seq[i]
		if !encrypt {
			from, to = seq[i], i
		}
		copy(pix[to*pixel.Channels:to*pixel.Channels+pixel.Channels],
			src[from*pixel.Channels:from*pixel.Channels+pixel.Channels])
	}
}
