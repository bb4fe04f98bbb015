// Package transform implements five reversible, key-driven pixel transforms
// over RGBA buffers.
//
// The algorithms are:
//
//   - xor: XOR of each RGB channel with a strength-scaled key byte (self-inverse)
//   - shuffle: keyed Fisher-Yates permutation of whole pixels
//   - rgb-rotation: cyclic rotation of the R, G and B channels (keyless)
//   - mathematical: affine map v*mul + add*strength mod 256 per channel
//   - bit-manipulation: 8-bit rotation followed by XOR with a key byte
//
// Every algorithm except shuffle leaves the alpha channel untouched.
// These transforms obfuscate images; they are not cryptographically secure.
//
// # Usage
//
//	engine := transform.NewEngine(
//	    transform.WithLogger(logger),
//	    transform.WithCollector(metrics.NewStore(metrics.DefaultStoreConfig())),
//	    transform.WithProgress(func(stage string, pct float64) {
//	        fmt.Printf("%s %.0f%%\n", stage, pct)
//	    }),
//	)
//
//	enc, err := engine.Encrypt(buf, transform.AlgorithmShuffle, "secret", 3)
//	if err != nil {
//	    return err
//	}
//	dec, err := engine.Decrypt(enc, transform.AlgorithmShuffle, "secret", 3)
//
// # Keys
//
// Keys are at least MinKeyLength UTF-16 code units. The per-pixel XOR and
// bit-manipulation steps use each code unit's low 8 bits (see KeyBytes).
// The shuffle seed and the affine multiplier and addend use the sum of the
// full code units (see KeySum), so "€" counts as 0x20AC there.
//
// # Strength
//
// Strength ranges over MinStrength..MaxStrength. The mathematical
// algorithm only round-trips when the key yields an odd multiplier; use
// IsInvertible to check a key before relying on decryption.
package transform
