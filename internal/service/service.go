// Package service centralizes the evaluation of engine operations by name.
// It validates operands, dispatches to the bigint and gaussian packages, and
// returns display-form results. Both the CLI and the HTTP server sit on top
// of this layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/agbru/gausscalc/internal/bigint"
	apperrors "github.com/agbru/gausscalc/internal/errors"
	"github.com/agbru/gausscalc/internal/gaussian"
)

// ErrUnknownOperation is returned when the requested operation name is not
// registered.
var ErrUnknownOperation = errors.New("unknown operation")

// ProgressUpdate reports the fractional completion of one demo section.
// It flows from the orchestration workers to the progress display goroutine.
type ProgressUpdate struct {
	// SectionIndex identifies the reporting section.
	SectionIndex int
	// Value is the normalized progress (0.0 to 1.0).
	Value float64
}

// Result holds the outcome of a single operation evaluation. Values carries
// one entry for most operations; root extraction may yield several.
type Result struct {
	// Op is the operation that was evaluated.
	Op string
	// Values are the results in display form.
	Values []string
}

// Value returns the first result value, or the empty string when the result
// set is empty.
func (r Result) Value() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// Operation describes one named engine operation.
type Operation struct {
	// Name is the identifier used on the CLI and API ("add", "cmul", ...).
	Name string
	// Arity is the exact number of operands the operation takes.
	Arity int
	// Summary is a one-line description for listings.
	Summary string

	apply func(args []string) ([]string, error)
}

// Service defines the interface for operation evaluation services.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Compute evaluates the named operation on the given operands.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - op: The operation name.
	//   - args: The operands in display form.
	//
	// Returns:
	//   - Result: The evaluation outcome.
	//   - error: An error if validation or evaluation fails.
	Compute(ctx context.Context, op string, args []string) (Result, error)

	// Operations returns the registered operations sorted by name.
	Operations() []Operation
}

// Calculator implements Service on top of a fixed operation registry.
type Calculator struct {
	ops map[string]Operation
}

var _ Service = (*Calculator)(nil)

// NewCalculator creates a Calculator with every engine operation registered.
func NewCalculator() *Calculator {
	c := &Calculator{ops: make(map[string]Operation)}
	c.registerIntegerOps()
	c.registerComplexOps()
	return c
}

// List returns the sorted names of all registered operations.
func (c *Calculator) List() []string {
	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operations returns the registered operations sorted by name.
func (c *Calculator) Operations() []Operation {
	ops := make([]Operation, 0, len(c.ops))
	for _, op := range c.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Compute evaluates the named operation on the given operands.
func (c *Calculator) Compute(ctx context.Context, op string, args []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	operation, ok := c.ops[op]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(args) != operation.Arity {
		return Result{}, apperrors.NewConfigError(
			"operation %q takes %d operand(s), got %d", op, operation.Arity, len(args))
	}
	values, err := operation.apply(args)
	if err != nil {
		return Result{}, err
	}
	return Result{Op: op, Values: values}, nil
}

func (c *Calculator) register(op Operation) {
	c.ops[op.Name] = op
}

// parseInts parses every argument as a decimal integer.
func parseInts(args []string) ([]bigint.Int, error) {
	out := make([]bigint.Int, len(args))
	for i, a := range args {
		v, err := bigint.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseComplexes parses every argument in the a+bi display form.
func parseComplexes(args []string) ([]gaussian.Complex, error) {
	out := make([]gaussian.Complex, len(args))
	for i, a := range args {
		z, err := gaussian.Parse(a)
		if err != nil {
			return nil, err
		}
		out[i] = z
	}
	return out, nil
}

// parseExponent parses a non-negative machine-sized exponent.
func parseExponent(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, apperrors.NewParseError(arg)
	}
	return uint(n), nil
}

func single(s fmt.Stringer) []string {
	return []string{s.String()}
}

// intBinary registers a two-integer operation returning one integer.
func (c *Calculator) intBinary(name, summary string, f func(x, y bigint.Int) (bigint.Int, error)) {
	c.register(Operation{
		Name: name, Arity: 2, Summary: summary,
		apply: func(args []string) ([]string, error) {
			xs, err := parseInts(args)
			if err != nil {
				return nil, err
			}
			v, err := f(xs[0], xs[1])
			if err != nil {
				return nil, err
			}
			return single(v), nil
		},
	})
}

// intUnary registers a one-integer operation returning one display value.
func (c *Calculator) intUnary(name, summary string, f func(x bigint.Int) (string, error)) {
	c.register(Operation{
		Name: name, Arity: 1, Summary: summary,
		apply: func(args []string) ([]string, error) {
			xs, err := parseInts(args)
			if err != nil {
				return nil, err
			}
			v, err := f(xs[0])
			if err != nil {
				return nil, err
			}
			return []string{v}, nil
		},
	})
}

func (c *Calculator) registerIntegerOps() {
	ok2 := func(f func(x, y bigint.Int) bigint.Int) func(x, y bigint.Int) (bigint.Int, error) {
		return func(x, y bigint.Int) (bigint.Int, error) { return f(x, y), nil }
	}

	c.intBinary("add", "integer addition", ok2(bigint.Int.Add))
	c.intBinary("sub", "integer subtraction", ok2(bigint.Int.Sub))
	c.intBinary("mul", "integer multiplication", ok2(bigint.Int.Mul))
	c.intBinary("gcd", "greatest common divisor", ok2(bigint.Int.GCD))
	c.intBinary("lcm", "least common multiple", ok2(bigint.Int.LCM))

	// Division panics on a zero divisor by contract; the service validates
	// the operand instead so the driver surfaces stay recoverable.
	c.intBinary("div", "truncating integer division", func(x, y bigint.Int) (bigint.Int, error) {
		if y.IsZero() {
			return bigint.Int{}, apperrors.NewDomainError("div", apperrors.NewDivisionByZeroError(x.String()))
		}
		return x.Div(y), nil
	})
	c.intBinary("mod", "truncating integer remainder", func(x, y bigint.Int) (bigint.Int, error) {
		if y.IsZero() {
			return bigint.Int{}, apperrors.NewDomainError("mod", apperrors.NewDivisionByZeroError(x.String()))
		}
		return x.Mod(y), nil
	})
	c.intBinary("modinv", "modular inverse", func(x, m bigint.Int) (bigint.Int, error) {
		inv, err := x.ModInv(m)
		if err != nil {
			return bigint.Int{}, apperrors.NewDomainError("modinv", err)
		}
		return inv, nil
	})

	c.register(Operation{
		Name: "pow", Arity: 2, Summary: "integer exponentiation",
		apply: func(args []string) ([]string, error) {
			base, err := bigint.Parse(args[0])
			if err != nil {
				return nil, err
			}
			exp, err := parseExponent(args[1])
			if err != nil {
				return nil, err
			}
			return single(base.Pow(exp)), nil
		},
	})
	c.register(Operation{
		Name: "modpow", Arity: 3, Summary: "modular exponentiation",
		apply: func(args []string) ([]string, error) {
			xs, err := parseInts(args)
			if err != nil {
				return nil, err
			}
			if xs[2].IsZero() {
				return nil, apperrors.NewDomainError("modpow", apperrors.NewDivisionByZeroError(args[0]))
			}
			if xs[1].IsNegative() {
				return nil, apperrors.NewDomainError("modpow", errors.New("negative exponent"))
			}
			return single(xs[0].ModPow(xs[1], xs[2])), nil
		},
	})

	c.intUnary("sqrt", "integer square root (floor)", func(x bigint.Int) (string, error) {
		r, err := x.Sqrt()
		if err != nil {
			return "", apperrors.NewDomainError("sqrt", err)
		}
		return r.String(), nil
	})
	c.intUnary("factorial", "factorial", func(x bigint.Int) (string, error) {
		r, err := x.Factorial()
		if err != nil {
			return "", apperrors.NewDomainError("factorial", err)
		}
		return r.String(), nil
	})
	c.intUnary("isprime", "exact primality test", func(x bigint.Int) (string, error) {
		return strconv.FormatBool(x.IsPrime()), nil
	})
	c.intUnary("nextprime", "smallest prime above the input", func(x bigint.Int) (string, error) {
		return x.NextPrime().String(), nil
	})
	c.intUnary("bitlen", "bit length of the magnitude", func(x bigint.Int) (string, error) {
		return strconv.Itoa(x.BitLen()), nil
	})
	c.intUnary("countones", "set bits in the magnitude", func(x bigint.Int) (string, error) {
		return strconv.Itoa(x.CountOnes()), nil
	})
	c.intUnary("trailingzeros", "trailing zero bits", func(x bigint.Int) (string, error) {
		n, ok := x.TrailingZeros()
		if !ok {
			return "", apperrors.NewDomainError("trailingzeros", errors.New("undefined for zero"))
		}
		return strconv.Itoa(n), nil
	})
	c.intUnary("ispow2", "power-of-two test", func(x bigint.Int) (string, error) {
		return strconv.FormatBool(x.IsPowerOfTwo()), nil
	})
	c.intUnary("nextpow2", "smallest power of two >= input", func(x bigint.Int) (string, error) {
		return x.NextPowerOfTwo().String(), nil
	})
}

// complexBinary registers a two-complex operation returning one value.
func (c *Calculator) complexBinary(name, summary string, f func(z, w gaussian.Complex) (string, error)) {
	c.register(Operation{
		Name: name, Arity: 2, Summary: summary,
		apply: func(args []string) ([]string, error) {
			zs, err := parseComplexes(args)
			if err != nil {
				return nil, err
			}
			v, err := f(zs[0], zs[1])
			if err != nil {
				return nil, err
			}
			return []string{v}, nil
		},
	})
}

// complexUnary registers a one-complex operation returning one value.
func (c *Calculator) complexUnary(name, summary string, f func(z gaussian.Complex) (string, error)) {
	c.register(Operation{
		Name: name, Arity: 1, Summary: summary,
		apply: func(args []string) ([]string, error) {
			zs, err := parseComplexes(args)
			if err != nil {
				return nil, err
			}
			v, err := f(zs[0])
			if err != nil {
				return nil, err
			}
			return []string{v}, nil
		},
	})
}

func (c *Calculator) registerComplexOps() {
	okc := func(f func(z, w gaussian.Complex) gaussian.Complex) func(z, w gaussian.Complex) (string, error) {
		return func(z, w gaussian.Complex) (string, error) { return f(z, w).String(), nil }
	}
	oku := func(f func(z gaussian.Complex) gaussian.Complex) func(z gaussian.Complex) (string, error) {
		return func(z gaussian.Complex) (string, error) { return f(z).String(), nil }
	}

	c.complexBinary("cadd", "complex addition", okc(gaussian.Complex.Add))
	c.complexBinary("csub", "complex subtraction", okc(gaussian.Complex.Sub))
	c.complexBinary("cmul", "complex multiplication", okc(gaussian.Complex.Mul))
	c.complexBinary("cdiv", "truncating complex division", func(z, w gaussian.Complex) (string, error) {
		q, err := z.Div(w)
		if err != nil {
			return "", err
		}
		return q.String(), nil
	})
	c.complexBinary("distance", "squared distance between two values", func(z, w gaussian.Complex) (string, error) {
		return z.DistanceTo(w).String(), nil
	})

	c.complexUnary("conj", "complex conjugate", oku(gaussian.Complex.Conjugate))
	c.complexUnary("rotate90", "rotate 90 degrees counterclockwise", oku(gaussian.Complex.Rotate90))
	c.complexUnary("rotate180", "rotate 180 degrees", oku(gaussian.Complex.Rotate180))
	c.complexUnary("rotate270", "rotate 270 degrees counterclockwise", oku(gaussian.Complex.Rotate270))
	c.complexUnary("norm", "squared magnitude", func(z gaussian.Complex) (string, error) {
		return z.Norm().String(), nil
	})
	c.complexUnary("magnitude", "floor of the magnitude", func(z gaussian.Complex) (string, error) {
		return z.Magnitude().String(), nil
	})
	c.complexUnary("quadrant", "quadrant classification (0-3)", func(z gaussian.Complex) (string, error) {
		q, ok := z.ArgQuadrant()
		if !ok {
			return "", apperrors.NewDomainError("quadrant", errors.New("zero has no quadrant"))
		}
		return strconv.Itoa(q), nil
	})
	c.complexUnary("ln", "crude integer logarithm", func(z gaussian.Complex) (string, error) {
		v, ok := z.LnApprox()
		if !ok {
			return "", apperrors.NewDomainError("ln", errors.New("undefined for zero"))
		}
		return v.String(), nil
	})
	c.complexUnary("exp", "truncated integer exponential", func(z gaussian.Complex) (string, error) {
		return z.ExpApprox().String(), nil
	})

	c.register(Operation{
		Name: "cpow", Arity: 2, Summary: "complex exponentiation",
		apply: func(args []string) ([]string, error) {
			z, err := gaussian.Parse(args[0])
			if err != nil {
				return nil, err
			}
			exp, err := parseExponent(args[1])
			if err != nil {
				return nil, err
			}
			return single(z.Pow(exp)), nil
		},
	})
	c.register(Operation{
		Name: "scale", Arity: 2, Summary: "multiply both components by an integer",
		apply: func(args []string) ([]string, error) {
			z, err := gaussian.Parse(args[0])
			if err != nil {
				return nil, err
			}
			k, err := bigint.Parse(args[1])
			if err != nil {
				return nil, err
			}
			return single(z.Scale(k)), nil
		},
	})
	c.register(Operation{
		Name: "frompolar", Arity: 2, Summary: "build from magnitude and axis angle code",
		apply: func(args []string) ([]string, error) {
			r, err := bigint.Parse(args[0])
			if err != nil {
				return nil, err
			}
			angle, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, apperrors.NewParseError(args[1])
			}
			return single(gaussian.FromPolar(r, angle)), nil
		},
	})
	c.register(Operation{
		Name: "nthroot", Arity: 2, Summary: "n-th roots (limited algorithm)",
		apply: func(args []string) ([]string, error) {
			z, err := gaussian.Parse(args[0])
			if err != nil {
				return nil, err
			}
			n, err := parseExponent(args[1])
			if err != nil {
				return nil, err
			}
			roots := z.NthRoot(n)
			values := make([]string, len(roots))
			for i, root := range roots {
				values[i] = root.String()
			}
			return values, nil
		},
	})
}
