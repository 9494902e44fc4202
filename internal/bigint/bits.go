package bigint

import "math/bits"

// BitLen returns the position of the most significant set bit of the
// magnitude plus one, independent of sign. The zero value has bit length 0.
func (x Int) BitLen() int {
	return natBitLen(x.mag)
}

// CountOnes returns the number of set bits in the magnitude. For negative
// values it is defined to be 0 — a documented asymmetry: this is a magnitude
// population count, not a two's-complement one.
func (x Int) CountOnes() int {
	if x.neg {
		return 0
	}
	count := 0
	for _, w := range x.mag {
		count += bits.OnesCount32(w)
	}
	return count
}

// TrailingZeros returns the number of consecutive zero low-order bits of the
// magnitude. The zero value has no defined result; ok is false in that case.
func (x Int) TrailingZeros() (n int, ok bool) {
	if len(x.mag) == 0 {
		return 0, false
	}
	for i, w := range x.mag {
		if w != 0 {
			return i*32 + bits.TrailingZeros32(w), true
		}
	}
	// Unreachable: a normalized non-zero magnitude has a non-zero digit.
	return 0, false
}

// IsPowerOfTwo reports whether x is positive with exactly one set bit.
func (x Int) IsPowerOfTwo() bool {
	return x.IsPositive() && x.CountOnes() == 1
}

// NextPowerOfTwo returns the smallest power of two >= x. Values <= 1 map to
// 1, an exact power of two maps to itself, and any other value maps to
// 2^BitLen(x).
func (x Int) NextPowerOfTwo() Int {
	if x.Cmp(intOne) <= 0 {
		return intOne
	}
	if x.IsPowerOfTwo() {
		return x
	}

	bitLen := x.BitLen()
	mag := make(nat, bitLen/32+1)
	mag[bitLen/32] = 1 << (bitLen % 32)
	return Int{mag: mag.norm()}
}
