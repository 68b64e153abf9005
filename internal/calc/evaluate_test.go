package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		a     string
		b     string
		label string
		want  string
	}{
		{"sum", "10", "5", "Suma", "15"},
		{"divide by zero", "10", "0", "División", "-"},
		{"empty first field", "", "4", "Resta", "-4"},
		{"multiply", "7", "2", "Multiplicación", "14"},
		{"fractional division", "7", "2", "División", "3.5"},
		{"letters and unset operation", "abc", "abc", "", "0"},
		{"unknown label is sum", "2", "3", "Potencia", "5"},
		{"decimal input", "0.5", "0.25", "Suma", "0.75"},
		{"negative result", "3", "10", "Resta", "-7"},
		{"zero divided", "0", "5", "División", "0"},
		{"whitespace around numbers", " 8 ", "\t2\n", "División", "4"},
		{"exponent input", "1e3", "2", "Multiplicación", "2000"},
		{"float rounding", "0.1", "0.2", "Suma", "0.30000000000000004"},
		{"lowercase label is not recognized", "6", "3", "resta", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.a, tt.b, tt.label))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   Operation
		want Result
	}{
		{"add", 2, 3, Add, Value(5)},
		{"subtract", 2, 3, Subtract, Value(-1)},
		{"multiply", 2, 3, Multiply, Value(6)},
		{"divide", 3, 2, Divide, Value(1.5)},
		{"divide by zero", 3, 0, Divide, Undefined},
		{"divide by negative zero", 3, math.Copysign(0, -1), Divide, Undefined},
		{"zero by zero", 0, 0, Divide, Undefined},
		{"unknown operation adds", 2, 3, Operation(42), Value(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.a, tt.b, tt.op))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"undefined", Undefined, "-"},
		{"whole number", Value(40), "40"},
		{"negative whole number", Value(-4), "-4"},
		{"zero", Value(0), "0"},
		{"negative zero", Value(math.Copysign(0, -1)), "0"},
		{"fraction", Value(3.5), "3.5"},
		{"negative fraction", Value(-0.25), "-0.25"},
		{"small fraction", Value(1e-7), "0.0000001"},
		{"large whole number", Value(1e21), "1000000000000000000000"},
		{"largest exact integer", Value(9007199254740993), "9007199254740992"},
		{"overflow", Value(math.Inf(1)), "+Inf"},
		{"negative overflow", Value(math.Inf(-1)), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.result))
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}

func TestResult(t *testing.T) {
	v, ok := Value(2.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
	assert.False(t, Value(2.5).IsUndefined())

	_, ok = Undefined.Float()
	assert.False(t, ok)
	assert.True(t, Undefined.IsUndefined())
}
