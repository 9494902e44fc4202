package bigint

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/gausscalc/internal/errors"
)

// Decimal digits are converted in chunks of 9 (the largest power of ten
// fitting a 32-bit digit), so parsing and formatting run one magnitude
// operation per 9 characters instead of one per character.
const (
	decChunkLen  = 9
	decChunkBase = 1_000_000_000
)

// Parse converts a decimal string into an Int. The accepted syntax is an
// optional leading '-' followed by one or more decimal digits; any other
// character, an empty string, or a lone sign yields a ParseError. Leading
// zero digits are accepted and normalized away.
func Parse(s string) (Int, error) {
	in := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 {
		return Int{}, apperrors.NewParseError(in)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Int{}, apperrors.NewParseError(in)
		}
	}

	var mag nat
	for len(s) > 0 {
		n := len(s) % decChunkLen
		if n == 0 {
			n = decChunkLen
		}
		chunk, err := strconv.ParseUint(s[:n], 10, 32)
		if err != nil {
			return Int{}, apperrors.NewParseError(in)
		}
		mag = natMulAddWW(mag, pow10(n), uint32(chunk))
		s = s[n:]
	}
	return makeInt(neg, mag), nil
}

// MustParse is Parse for known-good literals; it panics on error.
// It is intended for constants in tests and demo code.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// pow10 returns 10^n for 0 <= n <= 9.
func pow10(n int) uint32 {
	p := uint32(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// String renders x in canonical decimal form: an optional leading '-', no
// leading zero digits, and the literal "0" for zero. For every canonical
// decimal string s, Parse(s) followed by String reproduces s exactly.
func (x Int) String() string {
	if len(x.mag) == 0 {
		return "0"
	}

	// Peel off base-10^9 chunks, least significant first.
	chunks := make([]uint32, 0, len(x.mag)+1)
	m := x.mag
	for len(m) > 0 {
		var r uint32
		m, r = natDivW(m, decChunkBase)
		chunks = append(chunks, r)
	}

	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), 10)
		b.WriteString("000000000"[:decChunkLen-len(s)])
		b.WriteString(s)
	}
	return b.String()
}
