package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt builds values spanning several magnitude digits by combining
// three 64-bit draws as a*b + c, covering both signs and zero.
func genInt() gopter.Gen {
	return gopter.CombineGens(gen.Int64(), gen.Int64(), gen.Int64()).
		Map(func(vs []interface{}) Int {
			a := New(vs[0].(int64))
			b := New(vs[1].(int64))
			c := New(vs[2].(int64))
			return a.Mul(b).Add(c)
		})
}

func TestArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("addition then subtraction is identity", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Sub(b).Equal(a)
		},
		genInt(), genInt(),
	))

	properties.Property("addition commutes", prop.ForAll(
		func(a, b Int) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genInt(), genInt(),
	))

	properties.Property("multiplication by one is identity", prop.ForAll(
		func(a Int) bool {
			return a.Mul(One()).Equal(a)
		},
		genInt(),
	))

	properties.Property("additive inverse cancels", prop.ForAll(
		func(a Int) bool {
			return a.Add(a.Neg()).IsZero()
		},
		genInt(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Int) bool {
			left := a.Mul(b.Add(c))
			right := a.Mul(b).Add(a.Mul(c))
			return left.Equal(right)
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("division reconstructs the dividend", prop.ForAll(
		func(a, b Int) bool {
			if b.IsZero() {
				return true
			}
			q, r := a.QuoRem(b)
			if !b.Mul(q).Add(r).Equal(a) {
				return false
			}
			// Remainder is smaller than the divisor and matches the
			// dividend's sign (or is zero).
			if r.Abs().Cmp(b.Abs()) >= 0 {
				return false
			}
			return r.IsZero() || r.IsNegative() == a.IsNegative()
		},
		genInt(), genInt(),
	))

	properties.Property("string round trip", prop.ForAll(
		func(a Int) bool {
			back, err := Parse(a.String())
			return err == nil && back.Equal(a)
		},
		genInt(),
	))

	properties.Property("byte export round trip", prop.ForAll(
		func(a Int) bool {
			sign, buf := a.Bytes()
			return FromBytes(sign, buf).Equal(a)
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestNumberTheoryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("gcd times lcm equals product of magnitudes", prop.ForAll(
		func(a, b Int) bool {
			if a.IsZero() || b.IsZero() {
				return true
			}
			return a.GCD(b).Mul(a.LCM(b)).Equal(a.Mul(b).Abs())
		},
		genInt(), genInt(),
	))

	properties.Property("gcd divides both operands", prop.ForAll(
		func(a, b Int) bool {
			g := a.GCD(b)
			if g.IsZero() {
				return a.IsZero() && b.IsZero()
			}
			return a.Mod(g).IsZero() && b.Mod(g).IsZero()
		},
		genInt(), genInt(),
	))

	properties.Property("isqrt brackets the input", prop.ForAll(
		func(a Int) bool {
			n := a.Abs()
			r, err := n.Sqrt()
			if err != nil {
				return false
			}
			return r.Mul(r).Cmp(n) <= 0 && r.Add(One()).Mul(r.Add(One())).Cmp(n) > 0
		},
		genInt(),
	))

	properties.Property("modpow matches repeated multiplication", prop.ForAll(
		func(base int64, exp uint8, mod int64) bool {
			if mod == 0 {
				return true
			}
			b, m := New(base), New(mod)
			got := b.ModPow(New(int64(exp)), m)
			want := One().Mod(m)
			if want.IsNegative() {
				want = want.Add(m.Abs())
			}
			for i := uint8(0); i < exp; i++ {
				want = want.Mul(b).Mod(m)
				if want.IsNegative() {
					want = want.Add(m.Abs())
				}
			}
			return got.Equal(want)
		},
		gen.Int64(), gen.UInt8Range(0, 40), gen.Int64(),
	))

	properties.Property("factorial satisfies the recurrence", prop.ForAll(
		func(n uint8) bool {
			cur, err := New(int64(n)).Factorial()
			if err != nil {
				return false
			}
			next, err := New(int64(n) + 1).Factorial()
			if err != nil {
				return false
			}
			return next.Equal(cur.Mul(New(int64(n) + 1)))
		},
		gen.UInt8Range(0, 60),
	))

	properties.TestingRun(t)
}

// TestIsPrimeAgainstSieve cross-checks trial division with a sieve of
// Eratosthenes over a dense small range.
func TestIsPrimeAgainstSieve(t *testing.T) {
	const limit = 5000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	for n := 0; n <= limit; n++ {
		want := n >= 2 && !composite[n]
		if got := New(int64(n)).IsPrime(); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}
