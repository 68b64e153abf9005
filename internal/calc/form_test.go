package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_InitialState(t *testing.T) {
	f := NewForm()

	assert.Equal(t, Snapshot{
		A:         "",
		B:         "",
		Operation: "Suma",
		Result:    "0",
	}, f.Snapshot())
	assert.Equal(t, Add, f.Operation())
}

func TestForm_RecomputesOnEveryEdit(t *testing.T) {
	f := NewForm()

	f.SetA("1")
	assert.Equal(t, "1", f.Result())

	f.SetA("10")
	assert.Equal(t, "10", f.Result())

	f.SetB("0")
	assert.Equal(t, "10", f.Result())

	f.Select("División")
	assert.Equal(t, "-", f.Result())
	assert.True(t, f.Snapshot().Undefined)

	f.SetB("4")
	assert.Equal(t, "2.5", f.Result())
	assert.False(t, f.Snapshot().Undefined)

	f.SelectOperation(Multiply)
	assert.Equal(t, "40", f.Result())

	f.Select("")
	assert.Equal(t, "14", f.Result())
	assert.Equal(t, "Suma", f.Snapshot().Operation)
}

func TestForm_Set(t *testing.T) {
	f := NewForm()

	require.NoError(t, f.Set(FieldA, "7"))
	require.NoError(t, f.Set(FieldB, "2"))
	require.NoError(t, f.Set(FieldOperation, "Resta"))
	assert.Equal(t, Snapshot{A: "7", B: "2", Operation: "Resta", Result: "5"}, f.Snapshot())

	err := f.Set("c", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Contains(t, err.Error(), `"c"`)
	assert.Equal(t, "5", f.Result())
}

func TestForm_KeepsRawText(t *testing.T) {
	f := NewForm()
	f.SetA("abc")
	f.SetB("2")

	assert.Equal(t, "abc", f.A())
	assert.Equal(t, "2", f.B())
	assert.Equal(t, "2", f.Result())
}
