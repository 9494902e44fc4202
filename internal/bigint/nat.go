package bigint

import "math/bits"

// nat represents an unsigned magnitude as a little-endian slice of 32-bit
// digits. The zero magnitude is the empty (or nil) slice. A normalized nat
// has no superfluous high-order zero digits; all exported operations consume
// and produce normalized magnitudes.
//
// 32-bit digits with 64-bit intermediates keep every primitive expressible
// in portable Go without assembly or compiler intrinsics.
type nat []uint32

// karatsubaThreshold is the magnitude length (in 32-bit digits) above which
// multiplication switches from the schoolbook loop to Karatsuba splitting.
// 40 digits is 1280 bits, roughly where the recursion overhead pays off.
const karatsubaThreshold = 40

// norm strips high-order zero digits so that the representation is canonical.
func (x nat) norm() nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// natCmp compares two normalized magnitudes.
// It returns -1 if x < y, 0 if x == y, and +1 if x > y.
func natCmp(x, y nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// natAdd returns x + y.
func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		t := uint64(x[i]) + carry
		if i < len(y) {
			t += uint64(y[i])
		}
		z[i] = uint32(t)
		carry = t >> 32
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// natSub returns x - y. It requires x >= y; the sign-aware callers in
// arith.go are responsible for ordering the operands.
func natSub(x, y nat) nat {
	z := make(nat, len(x))
	var borrow uint64
	for i := range x {
		t := uint64(x[i]) - borrow
		if i < len(y) {
			t -= uint64(y[i])
		}
		z[i] = uint32(t)
		borrow = (t >> 32) & 1
	}
	if borrow != 0 {
		panic("bigint: natSub underflow")
	}
	return z.norm()
}

// natMulAddWW returns x*m + a for single-digit m and a.
// This is the workhorse of decimal parsing (chunked base 10^9).
func natMulAddWW(x nat, m, a uint32) nat {
	z := make(nat, len(x)+1)
	carry := uint64(a)
	for i := range x {
		t := uint64(x[i])*uint64(m) + carry
		z[i] = uint32(t)
		carry = t >> 32
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// natMulBasic is the schoolbook O(n*m) product.
func natMulBasic(x, y nat) nat {
	z := make(nat, len(x)+len(y))
	for i, d := range x {
		if d == 0 {
			continue
		}
		var carry uint64
		for j, e := range y {
			t := uint64(d)*uint64(e) + uint64(z[i+j]) + carry
			z[i+j] = uint32(t)
			carry = t >> 32
		}
		z[i+len(y)] = uint32(carry)
	}
	return z.norm()
}

// natMul returns x * y, dispatching between the schoolbook loop and
// Karatsuba splitting based on operand size.
func natMul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		return natMulBasic(x, y)
	}
	return natMulKaratsuba(x, y)
}

// natMulKaratsuba computes x*y with one level of Karatsuba splitting,
// recursing through natMul so sub-products below the threshold fall back to
// the schoolbook loop.
//
// With x = x1*B^k + x0 and y = y1*B^k + y0:
//
//	x*y = z2*B^2k + z1*B^k + z0
//	z0 = x0*y0
//	z2 = x1*y1
//	z1 = (x0+x1)*(y0+y1) - z0 - z2
func natMulKaratsuba(x, y nat) nat {
	k := (len(x) + 1) / 2

	x0, x1 := natSplit(x, k)
	y0, y1 := natSplit(y, k)

	z0 := natMul(x0, y0)
	z2 := natMul(x1, y1)
	z1 := natSub(natSub(natMul(natAdd(x0, x1), natAdd(y0, y1)), z0), z2)

	res := natAdd(z0, natShiftDigits(z1, k))
	return natAdd(res, natShiftDigits(z2, 2*k))
}

// natSplit returns the low k digits and the remaining high digits of x,
// both normalized.
func natSplit(x nat, k int) (lo, hi nat) {
	if len(x) <= k {
		return x.norm(), nil
	}
	return x[:k].norm(), x[k:].norm()
}

// natShiftDigits returns x * B^k, i.e. x shifted left by k whole digits.
func natShiftDigits(x nat, k int) nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x)+k)
	copy(z[k:], x)
	return z
}

// natShl returns x << s for a bit shift 0 <= s < 32.
func natShl(x nat, s uint) nat {
	if s == 0 || len(x) == 0 {
		return x
	}
	z := make(nat, len(x)+1)
	var carry uint32
	for i, d := range x {
		z[i] = d<<s | carry
		carry = uint32(uint64(d) >> (32 - s))
	}
	z[len(x)] = carry
	return z.norm()
}

// natShr returns x >> s for a bit shift 0 <= s < 32.
func natShr(x nat, s uint) nat {
	if s == 0 || len(x) == 0 {
		return x
	}
	z := make(nat, len(x))
	for i := range x {
		z[i] = x[i] >> s
		if i+1 < len(x) {
			z[i] |= x[i+1] << (32 - s)
		}
	}
	return z.norm()
}

// natDivW divides x by a single non-zero digit w, returning the quotient and
// the remainder digit.
func natDivW(x nat, w uint32) (nat, uint32) {
	q := make(nat, len(x))
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := r<<32 | uint64(x[i])
		q[i] = uint32(t / uint64(w))
		r = t % uint64(w)
	}
	return q.norm(), uint32(r)
}

// natDivMod computes the quotient and remainder of u / v using long division
// in base 2^32 (Knuth's Algorithm D, following the divmnu formulation).
// v must be non-zero; both results are normalized.
func natDivMod(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bigint: division by zero")
	}
	if natCmp(u, v) < 0 {
		return nil, u
	}
	if len(v) == 1 {
		q, rw := natDivW(u, v[0])
		if rw == 0 {
			return q, nil
		}
		return q, nat{rw}
	}

	n := len(v)
	m := len(u) - n

	// Normalize so the divisor's leading digit has its top bit set; this
	// bounds the quotient-digit estimate error to at most 2.
	s := uint(bits.LeadingZeros32(v[n-1]))
	vn := make(nat, n)
	copy(vn, natShl(v, s))
	un := make(nat, len(u)+1)
	copy(un, natShlFull(u, s))

	q = make(nat, m+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient digit from the top two dividend digits.
		t := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := t / uint64(vn[n-1])
		rhat := t % uint64(vn[n-1])

		for qhat >= 1<<32 || qhat*uint64(vn[n-2]) > rhat<<32+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= 1<<32 {
				break
			}
		}

		// Multiply and subtract: un[j..j+n] -= qhat * vn.
		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			d := int64(un[i+j]) - borrow - int64(p&0xFFFFFFFF)
			un[i+j] = uint32(d)
			borrow = int64(p>>32) - (d >> 32)
		}
		d := int64(un[j+n]) - borrow
		un[j+n] = uint32(d)

		// The estimate was one too large: add the divisor back.
		if d < 0 {
			qhat--
			var carry uint64
			for i := 0; i < n; i++ {
				t2 := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(t2)
				carry = t2 >> 32
			}
			un[j+n] = uint32(uint64(un[j+n]) + carry)
		}
		q[j] = uint32(qhat)
	}

	r = natShr(nat(un[:n]).norm(), s)
	return q.norm(), r
}

// natShlFull is natShl that always returns the full-width result slice so
// the caller can copy it into a fixed-size working buffer.
func natShlFull(x nat, s uint) nat {
	z := make(nat, len(x)+1)
	if s == 0 {
		copy(z, x)
		return z
	}
	var carry uint32
	for i, d := range x {
		z[i] = d<<s | carry
		carry = uint32(uint64(d) >> (32 - s))
	}
	z[len(x)] = carry
	return z
}

// natBitLen returns the position of the most significant set bit plus one,
// or 0 for the zero magnitude.
func natBitLen(x nat) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*32 + bits.Len32(x[len(x)-1])
}

// natBit returns bit i of x (0 or 1).
func natBit(x nat, i int) uint {
	w := i / 32
	if w >= len(x) {
		return 0
	}
	return uint(x[w]>>(i%32)) & 1
}
