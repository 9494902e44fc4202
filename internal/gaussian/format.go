package gaussian

import (
	"fmt"

	"github.com/agbru/gausscalc/internal/bigint"
	apperrors "github.com/agbru/gausscalc/internal/errors"
)

// String renders z in the canonical display form:
//
//	0            the zero value
//	{re}         pure real (imaginary component zero)
//	i, -i        pure imaginary with component 1 or -1
//	{im}i        any other pure imaginary
//	{re}+{im}i   mixed, positive imaginary component
//	{re}{im}i    mixed, negative imaginary component ({im} supplies the '-')
//
// so 5 - 3i renders as "5-3i", never "5+-3i".
func (z Complex) String() string {
	if z.im.IsZero() {
		return z.re.String()
	}
	if z.re.IsZero() {
		switch {
		case z.im.Equal(bigint.One()):
			return "i"
		case z.im.Equal(bigint.New(-1)):
			return "-i"
		default:
			return z.im.String() + "i"
		}
	}
	sign := ""
	if z.im.IsPositive() {
		sign = "+"
	}
	return fmt.Sprintf("%s%s%si", z.re, sign, z.im)
}

// Parse reads a value in any of the display forms produced by String, plus
// the natural "a+bi" spellings with an explicit unit coefficient ("2+i",
// "2-i"). Whitespace is not accepted.
func Parse(s string) (Complex, error) {
	if s == "" {
		return Complex{}, apperrors.NewParseError(s)
	}

	// Pure real form first.
	if re, err := bigint.Parse(s); err == nil {
		return Complex{re: re}, nil
	}

	if s[len(s)-1] != 'i' {
		return Complex{}, apperrors.NewParseError(s)
	}
	body := s[:len(s)-1]

	// A '+' or '-' past the leading sign splits the real and imaginary parts.
	split := -1
	for i := 1; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			split = i
		}
	}
	if split < 0 {
		im, err := parseImagCoeff(body)
		if err != nil {
			return Complex{}, apperrors.NewParseError(s)
		}
		return Complex{im: im}, nil
	}

	re, err := bigint.Parse(body[:split])
	if err != nil {
		return Complex{}, apperrors.NewParseError(s)
	}
	im, err := parseImagCoeff(body[split:])
	if err != nil {
		return Complex{}, apperrors.NewParseError(s)
	}
	return Complex{re: re, im: im}, nil
}

// parseImagCoeff reads the coefficient preceding the trailing 'i', where a
// bare sign (or nothing at all) means a unit coefficient.
func parseImagCoeff(s string) (bigint.Int, error) {
	switch s {
	case "", "+":
		return bigint.One(), nil
	case "-":
		return bigint.New(-1), nil
	}
	if s[0] == '+' {
		s = s[1:]
	}
	return bigint.Parse(s)
}

// MustParse is like Parse but panics on malformed input. Reserved for
// literals in tests and fixtures known to be well formed.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}
