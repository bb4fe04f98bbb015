// Package pixelcipher scrambles and restores images with keyed, reversible
// pixel transforms.
//
// The package-level functions work on raw RGBA byte slices:
//
//	out, err := pixelcipher.Transform(pix, w, h, "shuffle", "encrypt", "my key", 3)
//	back, err := pixelcipher.Transform(out, w, h, "shuffle", "decrypt", "my key", 3)
//
// Decrypting with the same algorithm, key and strength reproduces the input
// exactly. This is obfuscation, not cryptography: every algorithm is
// trivially breakable.
//
// Processor wires the supporting packages together from a core.Config:
// image decoding (imageio), the transform engine with logging and
// performance history (transform, logging, metrics), and before/after
// comparison (analyzer).
package pixelcipher
