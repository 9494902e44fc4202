package orchestration

import (
	"context"
	"fmt"
	"strings"

	"github.com/agbru/gausscalc/internal/service"
)

// demoSection is one operation family showcased by the demo. Sections run
// concurrently, so run returns its rendered lines instead of writing them.
type demoSection struct {
	name string
	run  func(ctx context.Context, svc service.Service, report func(float64)) ([]string, error)
}

// demoStep is a single scripted evaluation within a section.
type demoStep struct {
	label string
	op    string
	args  []string
}

// runSteps evaluates the scripted steps in order, reporting fractional
// progress after each one.
func runSteps(ctx context.Context, svc service.Service, steps []demoStep, report func(float64)) ([]string, error) {
	lines := make([]string, 0, len(steps))
	for i, step := range steps {
		res, err := svc.Compute(ctx, step.op, step.args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.label, err)
		}
		lines = append(lines, fmt.Sprintf("%-42s = %s", step.label, strings.Join(res.Values, ", ")))
		report(float64(i+1) / float64(len(steps)))
	}
	return lines, nil
}

func stepsSection(name string, steps []demoStep) demoSection {
	return demoSection{
		name: name,
		run: func(ctx context.Context, svc service.Service, report func(float64)) ([]string, error) {
			return runSteps(ctx, svc, steps, report)
		},
	}
}

// demoSections returns the scripted showcase walking through every operation
// family the engine exposes.
func demoSections() []demoSection {
	return []demoSection{
		stepsSection("Integer arithmetic", []demoStep{
			{"123456789012345678901234567890 + 987654321098765432109876543210", "add",
				[]string{"123456789012345678901234567890", "987654321098765432109876543210"}},
			{"123456789012345678901234567890 * 987654321", "mul",
				[]string{"123456789012345678901234567890", "987654321"}},
			{"-7 div 3 (truncating)", "div", []string{"-7", "3"}},
			{"-7 mod 3 (remainder keeps dividend sign)", "mod", []string{"-7", "3"}},
			{"2^128", "pow", []string{"2", "128"}},
		}),
		stepsSection("Number theory", []demoStep{
			{"isqrt(152415787532388367501905199875019052100)", "sqrt",
				[]string{"152415787532388367501905199875019052100"}},
			{"gcd(1234567890, 9876543210)", "gcd", []string{"1234567890", "9876543210"}},
			{"lcm(4, 6)", "lcm", []string{"4", "6"}},
			{"7^3 mod 11", "modpow", []string{"7", "3", "11"}},
			{"3^-1 mod 11", "modinv", []string{"3", "11"}},
			{"20!", "factorial", []string{"20"}},
			{"isprime(97)", "isprime", []string{"97"}},
			{"nextprime(97)", "nextprime", []string{"97"}},
		}),
		stepsSection("Bit operations", []demoStep{
			{"bitlen(255)", "bitlen", []string{"255"}},
			{"countones(255)", "countones", []string{"255"}},
			{"trailingzeros(256)", "trailingzeros", []string{"256"}},
			{"ispow2(256)", "ispow2", []string{"256"}},
			{"nextpow2(255)", "nextpow2", []string{"255"}},
		}),
		stepsSection("Complex arithmetic", []demoStep{
			{"(2+3i) * (4-i)", "cmul", []string{"2+3i", "4-1i"}},
			{"(11+10i) / (4-i)", "cdiv", []string{"11+10i", "4-1i"}},
			{"conj(3+4i)", "conj", []string{"3+4i"}},
			{"norm(3+4i)", "norm", []string{"3+4i"}},
			{"magnitude(3+4i)", "magnitude", []string{"3+4i"}},
			{"(1+i)^8", "cpow", []string{"1+1i", "8"}},
			{"distance(1+2i, 4+6i)", "distance", []string{"1+2i", "4+6i"}},
		}),
		stepsSection("Geometry", []demoStep{
			{"frompolar(5, 90deg)", "frompolar", []string{"5", "1"}},
			{"rotate90(3+4i)", "rotate90", []string{"3+4i"}},
			{"rotate180(3+4i)", "rotate180", []string{"3+4i"}},
			{"rotate270(3+4i)", "rotate270", []string{"3+4i"}},
			{"quadrant(-3+4i)", "quadrant", []string{"-3+4i"}},
		}),
		stepsSection("Approximations", []demoStep{
			{"nthroot(16, 2)", "nthroot", []string{"16", "2"}},
			{"nthroot(-9, 2)", "nthroot", []string{"-9", "2"}},
			{"ln(8) (halving count)", "ln", []string{"8"}},
			{"exp(3) (truncated series)", "exp", []string{"3"}},
			{"scale(2-3i, 4)", "scale", []string{"2-3i", "4"}},
		}),
	}
}
