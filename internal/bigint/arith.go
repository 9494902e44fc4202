package bigint

// Add returns x + y following standard sign-magnitude rules.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, natAdd(x.mag, y.mag))
	}
	switch natCmp(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.neg, natSub(x.mag, y.mag))
	default:
		return makeInt(y.neg, natSub(y.mag, x.mag))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. The magnitude product uses the schoolbook loop for
// small operands and Karatsuba splitting above the threshold.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, natMul(x.mag, y.mag))
}

// QuoRem returns the quotient and remainder of x / y under truncating
// semantics: the quotient is rounded toward zero and the remainder carries
// the dividend's sign (or is zero), so that x == y*q + r for every y != 0.
//
// QuoRem panics if y is zero; integer division by zero is a fatal condition.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	qm, rm := natDivMod(x.mag, y.mag)
	return makeInt(x.neg != y.neg, qm), makeInt(x.neg, rm)
}

// Div returns the truncated quotient of x / y. It panics if y is zero.
func (x Int) Div(y Int) Int {
	q, _ := x.QuoRem(y)
	return q
}

// Mod returns the remainder of x / y under truncating semantics; the result
// has the same sign as x, or is zero. It panics if y is zero.
func (x Int) Mod(y Int) Int {
	_, r := x.QuoRem(y)
	return r
}
