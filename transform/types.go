package transform

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Algorithm names one of the five reversible transform families.
type Algorithm string

const (
	AlgorithmXOR             Algorithm = "xor"
	AlgorithmShuffle         Algorithm = "shuffle"
	AlgorithmRGBRotation     Algorithm = "rgb-rotation"
	AlgorithmMathematical    Algorithm = "mathematical"
	AlgorithmBitManipulation Algorithm = "bit-manipulation"
)

// Operation selects the forward or inverse direction of a transform.
type Operation string

const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// Parameter validation constants
const (
	MinKeyLength = 4

	MinStrength     = 1
	MaxStrength     = 5
	DefaultStrength = 3
)

var strengthLabels = [...]string{"Low", "Medium", "High", "Very High", "Maximum"}

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmXOR,
		AlgorithmShuffle,
		AlgorithmRGBRotation,
		AlgorithmMathematical,
		AlgorithmBitManipulation,
	}
}

// ParseAlgorithm converts an algorithm name to an Algorithm.
// Matching ignores case and surrounding whitespace.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AlgorithmXOR, AlgorithmShuffle, AlgorithmRGBRotation, AlgorithmMathematical, AlgorithmBitManipulation:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// ParseOperation converts an operation name to an Operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OperationEncrypt, OperationDecrypt:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// Params holds the inputs of a single transform run.
type Params struct {
	Algorithm Algorithm
	Operation Operation
	Key       string
	Strength  int
}

// ValidateKey checks the minimum key length, counted in UTF-16 code units.
func ValidateKey(key string) error {
	n := len(utf16.Encode([]rune(key)))
	if n < MinKeyLength {
		return fmt.Errorf("%w: key length %d is below minimum %d", ErrInvalidKey, n, MinKeyLength)
	}
	return nil
}

// ValidateStrength checks that strength lies in [MinStrength, MaxStrength].
func ValidateStrength(strength int) error {
	if strength < MinStrength || strength > MaxStrength {
		return fmt.Errorf("%w: strength %d must be between %d and %d",
			ErrInvalidStrength, strength, MinStrength, MaxStrength)
	}
	return nil
}

// ValidateParams validates transform parameters and returns an error if invalid.
// The key is only checked for algorithms that use it.
func ValidateParams(p Params) error {
	_, err := p.Normalize()
	return err
}

// Normalize returns p with canonical algorithm and operation names, or the
// first validation error found.
func (p Params) Normalize() (Params, error) {
	alg, err := ParseAlgorithm(string(p.Algorithm))
	if err != nil {
		return p, err
	}
	op, err := ParseOperation(string(p.Operation))
	if err != nil {
		return p, err
	}
	if err := ValidateStrength(p.Strength); err != nil {
		return p, err
	}
	if alg.UsesKey() {
		if err := ValidateKey(p.Key); err != nil {
			return p, err
		}
	}
	p.Algorithm = alg
	p.Operation = op
	return p, nil
}

// UsesKey reports whether the algorithm reads the key. RGB rotation does not.
func (a Algorithm) UsesKey() bool {
	return a != AlgorithmRGBRotation
}

// StrengthLabel returns the display label for a strength level,
// or an empty string when strength is out of range.
func StrengthLabel(strength int) string {
	if strength < MinStrength || strength > MaxStrength {
		return ""
	}
	return strengthLabels[strength-1]
}
