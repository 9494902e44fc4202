// Package gaussian implements exact complex arithmetic over pairs of
// arbitrary-precision integers (Gaussian integers, with a handful of
// integer-only approximations of transcendental operations).
//
// A Complex is an ordered pair (real, imag) of bigint.Int values denoting
// real + imag*i. There is no separate normalized form for pure-real or
// pure-imaginary values: IsReal and IsImaginary are derived predicates, not
// stored tags. Every operation decomposes into bigint operations; the
// package holds no independent numeric representation.
//
// Like bigint, all values are immutable and may be shared freely.
package gaussian

import (
	"github.com/agbru/gausscalc/internal/bigint"
	apperrors "github.com/agbru/gausscalc/internal/errors"
)

// Complex is an immutable exact complex number with integer components.
// The zero value of the type is the complex zero 0 + 0i.
type Complex struct {
	re, im bigint.Int
}

// New returns the complex value re + im*i.
func New(re, im bigint.Int) Complex {
	return Complex{re: re, im: im}
}

// FromInt64 returns the complex value re + im*i from native integers.
func FromInt64(re, im int64) Complex {
	return Complex{re: bigint.New(re), im: bigint.New(im)}
}

// Zero returns the complex zero.
func Zero() Complex { return Complex{} }

// One returns the multiplicative identity 1 + 0i.
func One() Complex {
	return Complex{re: bigint.One()}
}

// Real returns the real component.
func (z Complex) Real() bigint.Int { return z.re }

// Imag returns the imaginary component.
func (z Complex) Imag() bigint.Int { return z.im }

// IsZero reports whether both components are zero.
func (z Complex) IsZero() bool {
	return z.re.IsZero() && z.im.IsZero()
}

// IsReal reports whether the imaginary component is zero.
func (z Complex) IsReal() bool { return z.im.IsZero() }

// IsImaginary reports whether the real component is zero.
func (z Complex) IsImaginary() bool { return z.re.IsZero() }

// Equal reports whether z and w have equal components.
func (z Complex) Equal(w Complex) bool {
	return z.re.Equal(w.re) && z.im.Equal(w.im)
}

// Add returns z + w (component-wise).
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

// Sub returns z - w (component-wise).
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: z.re.Neg(), im: z.im.Neg()}
}

// Mul returns z * w using the standard identity
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z Complex) Mul(w Complex) Complex {
	re := z.re.Mul(w.re).Sub(z.im.Mul(w.im))
	im := z.re.Mul(w.im).Add(z.im.Mul(w.re))
	return Complex{re: re, im: im}
}

// Div returns z / w by multiplying with the conjugate and dividing both
// resulting components by the integer denominator c²+d² with truncating
// integer division. The result is therefore generally lossy: this is not
// exact rational arithmetic. Dividing by the zero complex value returns a
// DivisionByZeroError.
func (z Complex) Div(w Complex) (Complex, error) {
	denom := w.re.Mul(w.re).Add(w.im.Mul(w.im))
	if denom.IsZero() {
		return Complex{}, apperrors.NewDivisionByZeroError(z.String())
	}
	re := z.re.Mul(w.re).Add(z.im.Mul(w.im)).Div(denom)
	im := z.im.Mul(w.re).Sub(z.re.Mul(w.im)).Div(denom)
	return Complex{re: re, im: im}, nil
}

// Scale returns z with both components multiplied by factor.
func (z Complex) Scale(factor bigint.Int) Complex {
	return Complex{re: z.re.Mul(factor), im: z.im.Mul(factor)}
}

// AddReal returns z with the real component shifted by re.
func (z Complex) AddReal(re bigint.Int) Complex {
	return Complex{re: z.re.Add(re), im: z.im}
}

// AddImag returns z with the imaginary component shifted by im.
func (z Complex) AddImag(im bigint.Int) Complex {
	return Complex{re: z.re, im: z.im.Add(im)}
}

// DivExact divides both components by the integer divisor, succeeding only
// when both divide evenly. A zero divisor or a non-zero remainder on either
// component yields ok == false. This distinguishes it from Div, which
// truncates.
func (z Complex) DivExact(divisor bigint.Int) (Complex, bool) {
	if divisor.IsZero() {
		return Complex{}, false
	}
	reQ, reR := z.re.QuoRem(divisor)
	imQ, imR := z.im.QuoRem(divisor)
	if !reR.IsZero() || !imR.IsZero() {
		return Complex{}, false
	}
	return Complex{re: reQ, im: imQ}, true
}

// Conjugate returns the complex conjugate of z.
func (z Complex) Conjugate() Complex {
	return Complex{re: z.re, im: z.im.Neg()}
}

// MagnitudeSquared returns re² + im², exactly.
func (z Complex) MagnitudeSquared() bigint.Int {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im))
}

// Norm is an alias for MagnitudeSquared.
func (z Complex) Norm() bigint.Int {
	return z.MagnitudeSquared()
}

// Magnitude returns floor(sqrt(re² + im²)): exact when the squared
// magnitude is a perfect square, otherwise a floor approximation, mirroring
// bigint.Int.Sqrt.
func (z Complex) Magnitude() bigint.Int {
	r, err := z.MagnitudeSquared().Sqrt()
	if err != nil {
		// Unreachable: a sum of squares is never negative.
		return bigint.Zero()
	}
	return r
}

// DistanceTo returns the squared distance |z - w|².
func (z Complex) DistanceTo(w Complex) bigint.Int {
	return z.Sub(w).MagnitudeSquared()
}

// Pow returns z^exp by exponentiation by squaring, mirroring the integer
// algorithm. A zero exponent yields 1 + 0i for every base.
func (z Complex) Pow(exp uint) Complex {
	result := One()
	base := z
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
