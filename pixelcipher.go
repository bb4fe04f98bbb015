package pixelcipher

import (
	"pixelcipher/analyzer"
	"pixelcipher/pixel"
	"pixelcipher/transform"
)

// defaultEngine serves the package-level functions. It has no logger and
// no history, so sharing it between goroutines is safe.
var defaultEngine = transform.NewEngine()

// Transform applies algorithm in the given direction to an RGBA buffer of
// width x height pixels and returns a new buffer of the same size.
// buf is not modified.
//
// algorithm is one of xor, shuffle, rgb-rotation, mathematical or
// bit-manipulation; operation is encrypt or decrypt. Names are matched
// case-insensitively.
func Transform(buf []byte, width, height int, algorithm, operation, key string, strength int) ([]byte, error) {
	src, err := pixel.FromBytes(buf, width, height)
	if err != nil {
		return nil, err
	}

	out, err := defaultEngine.Transform(src, transform.Params{
		Algorithm: transform.Algorithm(algorithm),
		Operation: transform.Operation(operation),
		Key:       key,
		Strength:  strength,
	})
	if err != nil {
		return nil, err
	}
	return out.Pix, nil
}

// Analyze computes channel statistics for an RGBA buffer.
func Analyze(buf []byte, width, height int) (analyzer.Report, error) {
	src, err := pixel.FromBytes(buf, width, height)
	if err != nil {
		return analyzer.Report{}, err
	}
	return analyzer.Analyze(src)
}

// Compare reports how many pixels differ between two RGBA buffers of equal
// length and by how much.
func Compare(a, b []byte) (analyzer.DifferenceReport, error) {
	return analyzer.CompareBytes(a, b)
}
