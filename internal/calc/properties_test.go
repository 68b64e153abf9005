package calc

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Property: text that does not parse as a number behaves exactly like 0.
func TestUnparsableTextIsZero_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		junk := rapid.StringMatching(`[a-zA-Z_ ]*`).Draw(rt, "junk")
		b := rapid.Float64Range(-1e6, 1e6).Draw(rt, "b")
		op := rapid.SampledFrom(Operations()).Draw(rt, "op")

		bText := strconv.FormatFloat(b, 'g', -1, 64)
		got := Compute(junk, bText, op.Label())
		want := Compute("0", bText, op.Label())
		if got != want {
			rt.Fatalf("Compute(%q, %q, %s) = %q, want %q", junk, bText, op, got, want)
		}
	})
}

// Property: division is undefined exactly when the divisor is zero.
func TestDivideUndefinedIffZero_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-1e9, 1e9).Draw(rt, "a")
		b := rapid.OneOf(rapid.Just(0.0), rapid.Float64Range(-1e9, 1e9)).Draw(rt, "b")

		got := Evaluate(a, b, Divide).IsUndefined()
		if got != (b == 0) {
			rt.Fatalf("Evaluate(%v, %v, Divide).IsUndefined() = %v", a, b, got)
		}
	})
}

// Property: the label has no decimal point iff the value is whole.
func TestFormatDecimalPointIffFraction_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.OneOf(
			rapid.Float64Range(-1e12, 1e12),
			rapid.Map(rapid.Int64Range(-1e15, 1e15), func(i int64) float64 { return float64(i) }),
		).Draw(rt, "v")

		text := Format(Value(v))
		whole := v == math.Trunc(v)
		if strings.Contains(text, ".") == whole {
			rt.Fatalf("Format(%v) = %q, whole = %v", v, text, whole)
		}

		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil || parsed != v {
			rt.Fatalf("Format(%v) = %q does not read back (%v, %v)", v, text, parsed, err)
		}
	})
}

// Property: an unrecognized label gives the same result as Suma.
func TestUnknownLabelIsAdd_Property(t *testing.T) {
	known := map[string]bool{}
	for _, label := range Labels() {
		known[label] = true
	}

	rapid.Check(t, func(rt *rapid.T) {
		label := rapid.String().Draw(rt, "label")
		if known[label] {
			rt.Skip("label is a known operation")
		}
		a := strconv.Itoa(rapid.IntRange(-1000, 1000).Draw(rt, "a"))
		b := strconv.Itoa(rapid.IntRange(-1000, 1000).Draw(rt, "b"))

		if got, want := Compute(a, b, label), Compute(a, b, LabelAdd); got != want {
			rt.Fatalf("Compute(%s, %s, %q) = %q, want %q", a, b, label, got, want)
		}
	})
}
