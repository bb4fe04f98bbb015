package transform

import "pixelcipher/pixel"

const mathModulus = 256

// Multiplier returns the affine multiplier derived from the key:
// (KeySum mod 100) + 1.
func Multiplier(key string) int {
	return KeySum(key)%100 + 1
}

// Addend returns the affine addend derived from the key:
// (KeySum mod 50) + 1.
func Addend(key string) int {
	return KeySum(key)%50 + 1
}

// IsInvertible reports whether the mathematical algorithm can be exactly
// decrypted for key, which requires an odd multiplier. Even multipliers
// still encrypt and decrypt without error but decryption corrupts data.
func IsInvertible(key string) bool {
	return GCD(Multiplier(key), mathModulus) == 1
}

// affineEncrypt applies v = (v*mul + add*strength) mod 256 to each RGB channel.
func affineEncrypt(pix []uint8, key string, strength int, prog progress) {
	mul := Multiplier(key)
	shift := Addend(key) * strength

	for i := 0; i < len(pix); i += pixel.Channels {
		prog.tick(StageMathEncrypt, i, len(pix))

		for c := pixel.R; c <= pixel.B; c++ {
			v := int(pix[i+c])
			pix[i+c] = uint8((v*mul + shift) % mathModulus)
		}
	}
}

// affineDecrypt undoes affineEncrypt using the modular inverse of the multiplier.
func affineDecrypt(pix []uint8, key string, strength int, prog progress) {
	mul := Multiplier(key)
	shift := (Addend(key) * strength) % mathModulus
	inv := ModularInverse(mul, mathModulus)

	for i := 0; i < len(pix); i += pixel.Channels {
		prog.tick(StageMathDecrypt, i, len(pix))

		for c := pixel.R; c <= pixel.B; c++ {
			v := (int(pix[i+c]) - shift + mathModulus) % mathModulus
			pix[i+c] = uint8((v * inv) % mathModulus)
		}
	}
}
