package gaussian

import (
	"testing"

	"github.com/agbru/gausscalc/internal/bigint"
)

func TestFromPolar(t *testing.T) {
	r := bigint.New(5)
	cases := []struct {
		angle int
		want  string
	}{
		{Angle0, "5"},
		{Angle90, "5i"},
		{Angle180, "-5"},
		{Angle270, "-5i"},
		{4, "5"}, // codes wrap modulo 4
		{7, "-5i"},
		{-1, "-5i"},
		{-4, "5"},
	}
	for _, tc := range cases {
		if got := FromPolar(r, tc.angle).String(); got != tc.want {
			t.Errorf("FromPolar(5, %d) = %s, want %s", tc.angle, got, tc.want)
		}
	}
	if !FromPolar(bigint.Zero(), Angle90).IsZero() {
		t.Error("FromPolar with zero magnitude not zero")
	}
}

func TestArgQuadrant(t *testing.T) {
	cases := []struct {
		z    Complex
		want int
		ok   bool
	}{
		{Zero(), 0, false},
		{FromInt64(3, 4), 0, true},
		{FromInt64(-3, 4), 1, true},
		{FromInt64(-3, -4), 2, true},
		{FromInt64(3, -4), 3, true},
		// Axis values fall on the non-positive side.
		{FromInt64(5, 0), 3, true},
		{FromInt64(0, 5), 1, true},
		{FromInt64(-5, 0), 2, true},
		{FromInt64(0, -5), 2, true},
	}
	for _, tc := range cases {
		q, ok := tc.z.ArgQuadrant()
		if q != tc.want || ok != tc.ok {
			t.Errorf("ArgQuadrant(%s) = (%d, %v), want (%d, %v)", tc.z, q, ok, tc.want, tc.ok)
		}
	}
}

func TestRotations(t *testing.T) {
	z := FromInt64(3, 4)
	if got := z.Rotate90().String(); got != "-4+3i" {
		t.Errorf("Rotate90 = %s", got)
	}
	if got := z.Rotate180().String(); got != "-3-4i" {
		t.Errorf("Rotate180 = %s", got)
	}
	if got := z.Rotate270().String(); got != "4-3i" {
		t.Errorf("Rotate270 = %s", got)
	}
}

func TestRotationComposition(t *testing.T) {
	z := FromInt64(7, -2)
	if got := z.Rotate90().Rotate90().Rotate90().Rotate90(); !got.Equal(z) {
		t.Errorf("four 90° rotations = %s, want %s", got, z)
	}
	if got := z.Rotate90().Rotate90(); !got.Equal(z.Rotate180()) {
		t.Errorf("two 90° rotations = %s, want %s", got, z.Rotate180())
	}
	if got := z.Rotate180().Rotate90(); !got.Equal(z.Rotate270()) {
		t.Errorf("180° then 90° = %s, want %s", got, z.Rotate270())
	}
	// Rotation agrees with multiplication by i.
	if got := z.Mul(FromInt64(0, 1)); !got.Equal(z.Rotate90()) {
		t.Errorf("z*i = %s, want %s", got, z.Rotate90())
	}
	// Rotation preserves the squared magnitude.
	if !z.Rotate90().MagnitudeSquared().Equal(z.MagnitudeSquared()) {
		t.Error("Rotate90 changed the magnitude")
	}
}
