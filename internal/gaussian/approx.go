package gaussian

import "github.com/agbru/gausscalc/internal/bigint"

// This file carries the deliberately limited root and transcendental
// approximations. Their behavior — placeholders included — is part of the
// observable contract and is preserved as-is; a correct general solver, if
// ever needed, belongs under a new name rather than a silent change here.

// expTaylorTerms bounds the truncated series in ExpApprox.
const expTaylorTerms = 10

// NthRoot returns the n-th roots of z within the limits of the algorithm:
//
//   - n == 0 yields an empty result set.
//   - A zero input yields the singleton [0].
//   - n == 1 yields [z].
//   - n == 2 on a value lying on the real axis yields the pair of integer
//     square roots: floor roots on the real axis for positive reals, on the
//     imaginary axis for negative reals (exact when the component is a
//     perfect square).
//   - Every other combination returns the fixed placeholder single value
//     1 + 0i, which is NOT a correct root.
//
// The placeholder branch is an acknowledged incompleteness of the
// algorithm; a general solver would be a new, separately named operation.
func (z Complex) NthRoot(n uint) []Complex {
	if n == 0 {
		return []Complex{}
	}
	if z.IsZero() {
		return []Complex{Zero()}
	}
	if n == 1 {
		return []Complex{z}
	}

	if n == 2 && z.IsReal() {
		if z.re.IsPositive() {
			root, _ := z.re.Sqrt()
			return []Complex{
				New(root, bigint.Zero()),
				New(root.Neg(), bigint.Zero()),
			}
		}
		root, _ := z.re.Neg().Sqrt()
		return []Complex{
			New(bigint.Zero(), root),
			New(bigint.Zero(), root.Neg()),
		}
	}

	return []Complex{One()}
}

// LnApprox returns a crude integer logarithm of z. Zero input has no value.
// For a positive real input, 1 maps to 0 and any other value maps to the
// number of integer-halving steps needed to bring it down to <= 1 — a base-2
// logarithm approximation despite the name. Every other input (negative
// reals and all non-real values) maps to the fixed placeholder 0 + 1i.
func (z Complex) LnApprox() (Complex, bool) {
	if z.IsZero() {
		return Complex{}, false
	}

	if z.IsReal() && z.re.IsPositive() {
		if z.re.Equal(bigint.One()) {
			return Zero(), true
		}
		steps := bigint.Zero()
		two := bigint.New(2)
		for temp := z.re; temp.Cmp(bigint.One()) > 0; {
			temp = temp.Div(two)
			steps = steps.Add(bigint.One())
		}
		return New(steps, bigint.Zero()), true
	}

	return FromInt64(0, 1), true
}

// ExpApprox returns a truncated integer-scaled exponential of z. Zero input
// yields 1 + 0i. A real input accumulates a truncated Taylor series where
// term k is the previous term times z divided (truncating, component-wise)
// by k; the sum stops after at most 10 terms, or early once a term's squared
// magnitude drops below 1. Any non-real input yields the fixed placeholder
// 1 + 1i.
func (z Complex) ExpApprox() Complex {
	if z.IsZero() {
		return One()
	}
	if !z.IsReal() {
		return FromInt64(1, 1)
	}

	result := One()
	term := One()
	for k := int64(1); k <= expTaylorTerms; k++ {
		divided, ok := term.Mul(z).componentDiv(bigint.New(k))
		if !ok {
			// Unreachable: k >= 1 is never zero.
			break
		}
		term = divided
		result = result.Add(term)
		if term.MagnitudeSquared().Cmp(bigint.One()) < 0 {
			break
		}
	}
	return result
}

// componentDiv divides both components by d with truncating division.
// Unlike DivExact it does not require even divisibility.
func (z Complex) componentDiv(d bigint.Int) (Complex, bool) {
	if d.IsZero() {
		return Complex{}, false
	}
	return Complex{re: z.re.Div(d), im: z.im.Div(d)}, true
}
