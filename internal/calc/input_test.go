package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"10", 10},
		{"-4", -4},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1e3", 1000},
		{"  7  ", 7},
		{"1,5", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-infinity", 0},
		{"1e400", 0},
		{"-", 0},
		{".", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.text))
		})
	}
}

func TestReadInputs(t *testing.T) {
	in := ReadInputs("10", "x", "División")
	assert.Equal(t, Inputs{A: 10, B: 0, Op: Divide}, in)

	in = ReadInputs("", "", "")
	assert.Equal(t, Inputs{A: 0, B: 0, Op: Add}, in)
}

func FuzzParseNumber(f *testing.F) {
	for _, seed := range []string{"", "abc", "10", "-4.5", "1e308", "1e400", "NaN", "0x1p-2", " 3 "} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		v := ParseNumber(text)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("ParseNumber(%q) returned %v", text, v)
		}
		// the result must always format without panicking
		_ = Compute(text, text, LabelDivide)
	})
}
