package gaussian

import (
	"testing"

	"github.com/agbru/gausscalc/internal/bigint"
)

func TestNthRoot(t *testing.T) {
	cases := []struct {
		name string
		z    Complex
		n    uint
		want []string
	}{
		{"zeroth root is empty", FromInt64(9, 0), 0, []string{}},
		{"root of zero", Zero(), 5, []string{"0"}},
		{"first root is identity", FromInt64(3, -4), 1, []string{"3-4i"}},
		{"square root of perfect square", FromInt64(16, 0), 2, []string{"4", "-4"}},
		{"square root floors", FromInt64(10, 0), 2, []string{"3", "-3"}},
		{"square root of negative real", FromInt64(-9, 0), 2, []string{"3i", "-3i"}},
		{"square root of non-real placeholder", FromInt64(3, 4), 2, []string{"1"}},
		{"cube root placeholder", FromInt64(8, 0), 3, []string{"1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roots := tc.z.NthRoot(tc.n)
			if len(roots) != len(tc.want) {
				t.Fatalf("NthRoot(%s, %d) returned %d roots, want %d",
					tc.z, tc.n, len(roots), len(tc.want))
			}
			for i, r := range roots {
				if got := r.String(); got != tc.want[i] {
					t.Errorf("root %d = %s, want %s", i, got, tc.want[i])
				}
			}
		})
	}
}

func TestLnApprox(t *testing.T) {
	cases := []struct {
		z    Complex
		want string
		ok   bool
	}{
		{Zero(), "", false},
		{One(), "0", true},
		{FromInt64(2, 0), "1", true},
		{FromInt64(8, 0), "3", true},
		{FromInt64(10, 0), "3", true}, // halving counts, not true log2
		{FromInt64(100, 0), "6", true},
		{FromInt64(1024, 0), "10", true},
		{FromInt64(-5, 0), "i", true},  // placeholder for negative reals
		{FromInt64(1, 1), "i", true},   // placeholder for non-reals
		{FromInt64(0, -3), "i", true},
	}
	for _, tc := range cases {
		got, ok := tc.z.LnApprox()
		if ok != tc.ok {
			t.Errorf("LnApprox(%s) ok = %v, want %v", tc.z, ok, tc.ok)
			continue
		}
		if ok && got.String() != tc.want {
			t.Errorf("LnApprox(%s) = %s, want %s", tc.z, got, tc.want)
		}
	}
}

func TestExpApprox(t *testing.T) {
	cases := []struct {
		z    Complex
		want string
	}{
		{Zero(), "1"},
		{One(), "2"},
		{FromInt64(2, 0), "6"},
		{FromInt64(3, 0), "16"},
		{FromInt64(4, 0), "49"},
		{FromInt64(5, 0), "136"}, // series capped at ten terms
		{FromInt64(-1, 0), "0"},
		{FromInt64(-2, 0), "0"},
		{FromInt64(0, 1), "1+1i"}, // placeholder for non-reals
		{FromInt64(2, 3), "1+1i"},
	}
	for _, tc := range cases {
		if got := tc.z.ExpApprox().String(); got != tc.want {
			t.Errorf("ExpApprox(%s) = %s, want %s", tc.z, got, tc.want)
		}
	}
}

func TestNthRootSquaresBack(t *testing.T) {
	// For perfect squares on the real axis both roots square back to z.
	for _, v := range []int64{1, 4, 9, 144, 10000} {
		z := FromInt64(v, 0)
		for _, r := range z.NthRoot(2) {
			if got := r.Mul(r); !got.Equal(z) {
				t.Errorf("root %s of %s squares to %s", r, z, got)
			}
		}
	}
	z := New(bigint.MustParse("152415787532388367501905199875019052100"), bigint.Zero())
	for _, r := range z.NthRoot(2) {
		if got := r.Mul(r); !got.Equal(z) {
			t.Errorf("large root %s squares to %s", r, got)
		}
	}
}
