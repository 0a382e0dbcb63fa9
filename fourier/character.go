// SPDX-License-Identifier: MIT

package fourier

// Character is a character of {±1}: the parity behaviour of coefficients
// under t ↦ -t.
type Character int8

const (
	// Trivial is the character of even weight.
	Trivial Character = 1
	// Sign is the character of odd weight.
	Sign Character = -1
)

// Characters lists both characters, trivial first.
func Characters() []Character { return []Character{Trivial, Sign} }

// WeightCharacter returns the character carried by forms of weight k.
func WeightCharacter(k int) Character {
	if k%2 == 0 {
		return Trivial
	}

	return Sign
}

// Eval evaluates the character at x ∈ {±1}; negative x counts as -1.
func (c Character) Eval(x int64) int64 {
	if x < 0 {
		return int64(c)
	}

	return 1
}

// Parity returns 0 for Trivial and 1 for Sign.
func (c Character) Parity() int {
	if c == Sign {
		return 1
	}

	return 0
}

// String returns "trivial" or "sign".
func (c Character) String() string {
	if c == Sign {
		return "sign"
	}

	return "trivial"
}
