package bigint

import (
	apperrors "github.com/agbru/gausscalc/internal/errors"
)

// Pow returns x^exp computed by exponentiation by squaring, costing
// O(log exp) multiplications. An exponent of 0 yields one for every base,
// including zero.
func (x Int) Pow(exp uint) Int {
	result := intOne
	base := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// Sqrt returns the floor of the square root of x, computed by binary search
// over [0, x]: the loop maintains low <= isqrt(x) <= high and narrows by
// comparing mid*mid against x. The result r satisfies
// r*r <= x < (r+1)*(r+1). Negative input yields ErrNegativeSqrt.
func (x Int) Sqrt() (Int, error) {
	if x.neg {
		return Int{}, apperrors.NewDomainError("sqrt", apperrors.ErrNegativeSqrt)
	}

	low := intZero
	high := x
	for low.Cmp(high) <= 0 {
		mid := low.Add(high).Div(intTwo)
		switch mid.Mul(mid).Cmp(x) {
		case 0:
			return mid, nil
		case -1:
			low = mid.Add(intOne)
		default:
			high = mid.Sub(intOne)
		}
	}
	return high, nil
}

// GCD returns the greatest common divisor of x and y. The result is always
// non-negative, divides both operands, and GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// LCM returns the least common multiple of x and y. The result is always
// non-negative; if either operand is zero the result is zero. For non-zero
// operands, GCD(x, y) * LCM(x, y) == |x * y|.
func (x Int) LCM(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	return x.Mul(y).Abs().Div(x.GCD(y))
}

// ModPow returns x^exp mod m computed by exponentiation by squaring with a
// reduction after every multiplication, so intermediate magnitudes stay
// bounded by the modulus. For a positive modulus the result lies in [0, m);
// in general it lies in [0, |m|).
//
// ModPow panics if m is zero (division by zero) or exp is negative.
func (x Int) ModPow(exp, m Int) Int {
	if m.IsZero() {
		panic("bigint: zero modulus in ModPow")
	}
	if exp.neg {
		panic("bigint: negative exponent in ModPow")
	}

	m0 := m.Abs()
	base := x.Mod(m0)
	if base.neg {
		base = base.Add(m0)
	}
	result := intOne.Mod(m0) // 0 when |m| == 1

	for i := 0; i < natBitLen(exp.mag); i++ {
		if natBit(exp.mag, i) == 1 {
			result = result.Mul(base).Mod(m0)
		}
		base = base.Mul(base).Mod(m0)
	}
	return result
}

// ModInv returns the multiplicative inverse of x modulo m: the unique value
// v in [0, |m|) with x*v == 1 (mod m). The inverse exists only when
// GCD(x, m) == 1; otherwise ErrNoModularInverse is returned.
func (x Int) ModInv(m Int) (Int, error) {
	if m.IsZero() {
		panic("bigint: zero modulus in ModInv")
	}

	m0 := m.Abs()
	a := x.Mod(m0)
	if a.neg {
		a = a.Add(m0)
	}

	// Extended Euclid tracking only the coefficient of a.
	oldR, r := a, m0
	oldS, s := intOne, intZero
	for !r.IsZero() {
		q := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
	}
	if !oldR.Equal(intOne) {
		return Int{}, apperrors.NewDomainError("mod_inv", apperrors.ErrNoModularInverse)
	}
	if oldS.neg {
		oldS = oldS.Add(m0)
	}
	return oldS, nil
}

// Factorial returns x! computed by iterative accumulation of the product
// 1 * 2 * ... * x, costing O(x) multiplications of growing magnitude.
// 0! is 1; negative input yields ErrNegativeFactorial.
func (x Int) Factorial() (Int, error) {
	if x.neg {
		return Int{}, apperrors.NewDomainError("factorial", apperrors.ErrNegativeFactorial)
	}

	result := intOne
	for current := intOne; current.Cmp(x) <= 0; current = current.Add(intOne) {
		result = result.Mul(current)
	}
	return result, nil
}

// IsPrime reports whether x is prime using exact trial division: values <= 1
// are not prime, 2 is, even values > 2 are not, and odd values are divided
// by every odd candidate up to floor(sqrt(x)).
//
// The O(sqrt(n)) cost is part of the contract: the test is exact for every
// input, and deliberately not replaced by a faster probabilistic test whose
// observable performance profile would differ.
func (x Int) IsPrime() bool {
	if x.Cmp(intOne) <= 0 {
		return false
	}
	if x.Equal(intTwo) {
		return true
	}
	if x.Mod(intTwo).IsZero() {
		return false
	}

	limit, _ := x.Sqrt() // x > 0 here, cannot fail
	for i := New(3); i.Cmp(limit) <= 0; i = i.Add(intTwo) {
		if x.Mod(i).IsZero() {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than x, except that
// any input <= 2 yields 2. The search walks odd candidates upward in steps
// of two, testing each with IsPrime.
func (x Int) NextPrime() Int {
	var candidate Int
	switch {
	case x.Cmp(intTwo) <= 0:
		return intTwo
	case x.Mod(intTwo).IsZero():
		candidate = x.Add(intOne)
	default:
		candidate = x.Add(intTwo)
	}

	for !candidate.IsPrime() {
		candidate = candidate.Add(intTwo)
	}
	return candidate
}
