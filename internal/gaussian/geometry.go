package gaussian

import "github.com/agbru/gausscalc/internal/bigint"

// Axis angle codes accepted by FromPolar. This is the only supported polar
// form; there is no continuous-angle constructor.
const (
	Angle0   = 0 // 0°, the positive real axis
	Angle90  = 1 // 90°, the positive imaginary axis
	Angle180 = 2 // 180°, the negative real axis
	Angle270 = 3 // 270°, the negative imaginary axis
)

// FromPolar constructs a complex value from a magnitude and one of the four
// axis-aligned angle codes; the code is taken modulo 4.
func FromPolar(r bigint.Int, angle int) Complex {
	angle %= 4
	if angle < 0 {
		angle += 4
	}
	switch angle {
	case Angle90:
		return Complex{im: r}
	case Angle180:
		return Complex{re: r.Neg()}
	case Angle270:
		return Complex{im: r.Neg()}
	default:
		return Complex{re: r}
	}
}

// ArgQuadrant classifies a non-zero value into one of four quadrants by the
// signs of its components: (+,+)->0, (-,+)->1, (-,-)->2, (+,-)->3.
// Components on an axis count toward the non-positive side, matching the
// sign predicates. The zero value has no quadrant; ok is false.
func (z Complex) ArgQuadrant() (quadrant int, ok bool) {
	if z.IsZero() {
		return 0, false
	}
	switch {
	case z.re.IsPositive() && z.im.IsPositive():
		return 0, true
	case !z.re.IsPositive() && z.im.IsPositive():
		return 1, true
	case !z.re.IsPositive() && !z.im.IsPositive():
		return 2, true
	default:
		return 3, true
	}
}

// Rotate90 returns z rotated 90° counterclockwise: exact multiplication by
// i, implemented as the component swap (a+bi)*i = -b + ai.
func (z Complex) Rotate90() Complex {
	return Complex{re: z.im.Neg(), im: z.re}
}

// Rotate180 returns z rotated 180°: exact multiplication by -1.
func (z Complex) Rotate180() Complex {
	return Complex{re: z.re.Neg(), im: z.im.Neg()}
}

// Rotate270 returns z rotated 270° counterclockwise: exact multiplication by
// -i, implemented as (a+bi)*(-i) = b - ai.
func (z Complex) Rotate270() Complex {
	return Complex{re: z.im, im: z.re.Neg()}
}
