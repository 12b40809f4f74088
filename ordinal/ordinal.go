// Package ordinal implements Cantor-normal-form arithmetic over the finite
// ordinals below omega^3, which is exactly the range spanned by mapping
// Sudoku digits 1..9 through their base-3 expansion.
package ordinal

import (
	"fmt"
	"math"
	"strings"
)

// DomainError is returned when a coefficient would overflow the bound this
// package enforces on ordinal coefficients.
type DomainError struct {
	Coefficient int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("ordinal: coefficient %d exceeds the int32 bound", e.Coefficient)
}

// maxCoefficient mirrors the original implementation's numba int32 backing
// store for ordinal coefficients.
const maxCoefficient = math.MaxInt32

// Ordinal is a finite ordinal below omega^omega in Cantor normal form,
// represented coefficient-first: Coeffs[i] is the coefficient of omega^i.
// Coeffs is never empty; the zero ordinal is Coeffs == []int64{0}.
//
// Values are immutable after construction: every operation returns a new
// Ordinal rather than mutating the receiver or argument.
type Ordinal struct {
	coeffs []int64
}

// Zero is the ordinal 0.
func Zero() Ordinal {
	return Ordinal{coeffs: []int64{0}}
}

// One is the ordinal 1, the multiplicative identity.
func One() Ordinal {
	return New([]int64{1})
}

// New builds an Ordinal from a coefficient-first slice. An empty slice is
// treated as the zero ordinal. New does not strip trailing zeros; use Equal
// to compare ordinals that may differ only by trailing zero coefficients.
func New(coeffs []int64) Ordinal {
	if len(coeffs) == 0 {
		return Zero()
	}
	for _, c := range coeffs {
		if c < 0 || c > maxCoefficient {
			return Ordinal{coeffs: []int64{0}}
		}
	}
	cp := make([]int64, len(coeffs))
	copy(cp, coeffs)
	return Ordinal{coeffs: cp}
}

// NewChecked is like New but reports a DomainError instead of silently
// clamping to zero when a coefficient is out of bounds.
func NewChecked(coeffs []int64) (Ordinal, error) {
	for _, c := range coeffs {
		if c < 0 || c > maxCoefficient {
			return Ordinal{}, &DomainError{Coefficient: c}
		}
	}
	return New(coeffs), nil
}

// Order is the length of the coefficient sequence (not stripped of trailing
// zeros), matching the original's `order` field.
func (a Ordinal) Order() int {
	return len(a.coeffs)
}

// Coeffs returns a copy of the coefficient-first representation.
func (a Ordinal) Coeffs() []int64 {
	cp := make([]int64, len(a.coeffs))
	copy(cp, a.coeffs)
	return cp
}

// trimmed strips trailing zero coefficients, always leaving at least one
// entry (the zero ordinal is [0]).
func (a Ordinal) trimmed() []int64 {
	n := len(a.coeffs)
	for n > 1 && a.coeffs[n-1] == 0 {
		n--
	}
	return a.coeffs[:n]
}

// Equal reports whether two ordinals denote the same value, i.e. their
// coefficient sequences match after stripping trailing zeros.
func (a Ordinal) Equal(b Ordinal) bool {
	ta, tb := a.trimmed(), b.trimmed()
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether the ordinal equals 0.
func (a Ordinal) IsZero() bool {
	return a.Equal(Zero())
}

// Add computes a + b (ordinal addition is not commutative: when a has a
// lower order than b, a is absorbed and the result is b).
func (a Ordinal) Add(b Ordinal) Ordinal {
	m := b.Order()
	if a.Order() < m {
		return b
	}
	result := make([]int64, 0, m+a.Order()-m)
	result = append(result, b.coeffs[:m-1]...)
	result = append(result, b.coeffs[m-1]+a.coeffs[m-1])
	result = append(result, a.coeffs[m:]...)
	return New(result)
}

// Mul computes a * b (ordinal multiplication is not commutative).
func (a Ordinal) Mul(b Ordinal) Ordinal {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	top := a.Order() - 1
	result := make([]int64, 0, top+1+len(b.coeffs)-1)
	result = append(result, a.coeffs[:top]...)
	result = append(result, a.coeffs[top]*b.coeffs[0])
	result = append(result, b.coeffs[1:]...)
	return New(result)
}

// String renders the ordinal in Cantor normal form, e.g. "w*2+1".
func (a Ordinal) String() string {
	t := a.trimmed()
	if len(t) == 1 && t[0] == 0 {
		return "0"
	}
	var terms []string
	for i := len(t) - 1; i >= 0; i-- {
		n := t[i]
		if n == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprintf("%d", n))
		case i == 1 && n == 1:
			terms = append(terms, "w")
		case i == 1:
			terms = append(terms, fmt.Sprintf("w*%d", n))
		case n == 1:
			terms = append(terms, fmt.Sprintf("w^%d", i))
		default:
			terms = append(terms, fmt.Sprintf("w^%d*%d", i, n))
		}
	}
	return strings.Join(terms, "+")
}

// DigitToOrdinal maps a Sudoku digit 1..9 to its ordinal via the base-3
// expansion d = c0 + 3*c1 + 9*c2, ci in {0,1,2}. Digit 0 (unassigned) maps
// to the zero ordinal by convention, though callers performing ordinal-arrow
// evaluation should never invoke this on an unassigned cell.
func DigitToOrdinal(d int) Ordinal {
	if d <= 0 {
		return Zero()
	}
	coeffs := make([]int64, 0, 3)
	rem := d
	for i := 0; i < 3 && rem > 0; i++ {
		coeffs = append(coeffs, int64(rem%3))
		rem /= 3
	}
	return New(coeffs)
}

// OrdinalSum folds DigitToOrdinal over digits with left-to-right ordinal
// addition, i.e. digits[0] + digits[1] + ... + digits[n-1], seeded at Zero.
func OrdinalSum(digits []int) Ordinal {
	acc := Zero()
	for _, d := range digits {
		acc = acc.Add(DigitToOrdinal(d))
	}
	return acc
}

// OrdinalProduct folds DigitToOrdinal over digits with left-to-right ordinal
// multiplication, seeded at One (the multiplicative identity), matching the
// original's `board_prod = Ordinal([1])` seed.
func OrdinalProduct(digits []int) Ordinal {
	acc := One()
	for _, d := range digits {
		acc = acc.Mul(DigitToOrdinal(d))
	}
	return acc
}
