// Package bigint implements exact arbitrary-precision signed integer
// arithmetic on a self-contained sign-magnitude representation.
//
// The magnitude is a dynamically sized little-endian slice of 32-bit digits;
// no external arbitrary-precision backend is involved. Values are immutable:
// every operation returns a new Int, so values may be freely shared
// (read-only) across goroutines without synchronization.
//
// The number-theoretic operations deliberately favor exactness and simplicity
// over asymptotic speed. In particular IsPrime is exact trial division with
// O(sqrt(n)) cost; it is not suitable for cryptographic-scale inputs and is
// intentionally not a probabilistic test (see IsPrime).
package bigint

// Sign is the sign of an Int: SignNegative, SignZero, or SignPositive.
type Sign int

// The three possible signs of an Int.
const (
	SignNegative Sign = -1
	SignZero     Sign = 0
	SignPositive Sign = 1
)

// String returns a human-readable name for the sign.
func (s Sign) String() string {
	switch s {
	case SignNegative:
		return "negative"
	case SignPositive:
		return "positive"
	default:
		return "zero"
	}
}

// Int is an immutable arbitrary-precision signed integer.
//
// The zero value of the type is the canonical integer zero and is ready to
// use. Invariants: the zero integer has an empty magnitude and neg unset;
// every non-zero integer has a normalized magnitude with a non-zero leading
// digit. Equal values always have identical representations.
type Int struct {
	neg bool
	mag nat
}

// Frequently used small constants.
var (
	intZero = Int{}
	intOne  = Int{mag: nat{1}}
	intTwo  = Int{mag: nat{2}}
)

// makeInt builds an Int from a sign flag and a normalized magnitude,
// canonicalizing the sign of zero.
func makeInt(neg bool, mag nat) Int {
	if len(mag) == 0 {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// New returns the Int with the exact value of v.
func New(v int64) Int {
	if v == 0 {
		return Int{}
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	mag := nat{uint32(u), uint32(u >> 32)}.norm()
	return Int{neg: neg, mag: mag}
}

// Zero returns the canonical zero value.
func Zero() Int { return intZero }

// One returns the multiplicative identity.
func One() Int { return intOne }

// FromBytes constructs an Int from an explicit sign and a big-endian
// magnitude buffer. A SignZero sign yields the zero value regardless of the
// buffer contents; leading zero bytes are ignored so the result is always
// canonical.
func FromBytes(sign Sign, buf []byte) Int {
	if sign == SignZero {
		return Int{}
	}
	mag := make(nat, (len(buf)+3)/4)
	for i, b := range buf {
		// buf[len-1] is the least significant byte.
		shift := uint(len(buf)-1-i) * 8
		mag[shift/32] |= uint32(b) << (shift % 32)
	}
	mag = mag.norm()
	if len(mag) == 0 {
		return Int{}
	}
	return Int{neg: sign == SignNegative, mag: mag}
}

// Bytes exports the value as a sign plus a canonical big-endian magnitude
// buffer: no leading zero byte for non-zero values, and an empty buffer for
// zero. FromBytes(x.Bytes()) reproduces x exactly (round-trip contract).
func (x Int) Bytes() (Sign, []byte) {
	if len(x.mag) == 0 {
		return SignZero, []byte{}
	}
	buf := make([]byte, 0, len(x.mag)*4)
	top := x.mag[len(x.mag)-1]
	for shift := 24; shift >= 0; shift -= 8 {
		if b := byte(top >> uint(shift)); b != 0 || len(buf) > 0 {
			buf = append(buf, b)
		}
	}
	for i := len(x.mag) - 2; i >= 0; i-- {
		w := x.mag[i]
		buf = append(buf, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	return x.Sign(), buf
}

// Sign reports whether x is SignNegative, SignZero, or SignPositive.
func (x Int) Sign() Sign {
	switch {
	case len(x.mag) == 0:
		return SignZero
	case x.neg:
		return SignNegative
	default:
		return SignPositive
	}
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return len(x.mag) == 0 }

// IsPositive reports whether x > 0.
func (x Int) IsPositive() bool { return len(x.mag) > 0 && !x.neg }

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg }

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	return makeInt(false, x.mag)
}

// Neg returns -x. Negating zero yields zero.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.mag)
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if x > y.
// The ordering is total and consistent with mathematical value: differing
// signs order by sign, equal signs order by (possibly inverted) magnitude.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := natCmp(x.mag, y.mag)
	if xs == SignNegative {
		return -c
	}
	return c
}

// Equal reports whether x and y denote the same integer.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && natCmp(x.mag, y.mag) == 0
}

// Int64 returns the value of x as an int64 together with a flag reporting
// whether the value fits without truncation.
func (x Int) Int64() (int64, bool) {
	if natBitLen(x.mag) > 64 {
		return 0, false
	}
	var u uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		u = u<<32 | uint64(x.mag[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u >= 1<<63 {
		return 0, false
	}
	return int64(u), true
}
