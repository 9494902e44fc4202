package gaussian

import (
	"testing"

	"github.com/agbru/gausscalc/internal/bigint"
)

func TestStringDisplayForms(t *testing.T) {
	cases := []struct {
		re, im string
		want   string
	}{
		{"0", "0", "0"},
		{"5", "0", "5"},
		{"-5", "0", "-5"},
		{"0", "1", "i"},
		{"0", "-1", "-i"},
		{"0", "3", "3i"},
		{"0", "-3", "-3i"},
		{"2", "3", "2+3i"},
		{"2", "-3", "2-3i"},
		{"-2", "3", "-2+3i"},
		{"-2", "-3", "-2-3i"},
		{"1", "1", "1+1i"},
		{"1", "-1", "1-1i"},
		{"123456789012345678901234567890", "-987654321098765432109876543210",
			"123456789012345678901234567890-987654321098765432109876543210i"},
	}
	for _, tc := range cases {
		z := New(bigint.MustParse(tc.re), bigint.MustParse(tc.im))
		if got := z.String(); got != tc.want {
			t.Errorf("(%s, %s).String() = %q, want %q", tc.re, tc.im, got, tc.want)
		}
		// Every display form parses back to the same value.
		back, err := Parse(tc.want)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.want, err)
		} else if !back.Equal(z) {
			t.Errorf("Parse(%q) = %s, want %s", tc.want, back, z)
		}
	}
}

func TestParseUnitCoefficients(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2+i", "2+1i"},
		{"2-i", "2-1i"},
		{"-2+i", "-2+1i"},
		{"007", "7"},
	}
	for _, tc := range cases {
		z, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.in, err)
		}
		if got := z.String(); got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "-", "i5", "3j", "2+3", "2 + 3i", "++i", "2+-3i", "abc"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}
