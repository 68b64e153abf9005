package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lacquerai/calcform/internal/testhelper"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

var (
	tabKey      = tea.KeyPressMsg{Code: tea.KeyTab}
	shiftTabKey = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	rightKey    = tea.KeyPressMsg{Code: tea.KeyRight}
	leftKey     = tea.KeyPressMsg{Code: tea.KeyLeft}
	escKey      = tea.KeyPressMsg{Code: tea.KeyEscape}
	backspace   = tea.KeyPressMsg{Code: tea.KeyBackspace}
)

func TestNew_InitialState(t *testing.T) {
	m := New(Options{})

	snapshot := m.Snapshot()
	assert.Equal(t, "Suma", snapshot.Operation)
	assert.Equal(t, "0", snapshot.Result)
	assert.Equal(t, focusA, m.focus)
	assert.Nil(t, m.Init())
}

func TestNew_SeededValues(t *testing.T) {
	m := New(Options{A: "10", B: "0", Operation: "División"})

	assert.Equal(t, "-", m.Snapshot().Result)
	assert.Equal(t, "10", m.inputA.Value())
	assert.Equal(t, "0", m.inputB.Value())
}

func TestUpdate_TypingRecomputes(t *testing.T) {
	m := New(Options{})

	m = typeText(t, m, "1")
	assert.Equal(t, "1", m.Snapshot().Result)

	m = typeText(t, m, "0")
	assert.Equal(t, "10", m.Snapshot().Result)

	m = press(t, m, tabKey)
	assert.Equal(t, focusB, m.focus)

	m = typeText(t, m, "5")
	assert.Equal(t, "15", m.Snapshot().Result)

	m = press(t, m, backspace)
	assert.Equal(t, "10", m.Snapshot().Result)
}

func TestUpdate_PickerCyclesOperations(t *testing.T) {
	m := New(Options{A: "7", B: "2"})

	m = press(t, m, tabKey)
	m = press(t, m, tabKey)
	require.Equal(t, focusOperation, m.focus)

	expected := []struct {
		operation string
		result    string
	}{
		{"Resta", "5"},
		{"Multiplicación", "14"},
		{"División", "3.5"},
		{"Suma", "9"},
	}
	for _, want := range expected {
		m = press(t, m, rightKey)
		assert.Equal(t, want.operation, m.Snapshot().Operation)
		assert.Equal(t, want.result, m.Snapshot().Result)
	}

	m = press(t, m, leftKey)
	assert.Equal(t, "División", m.Snapshot().Operation)
}

func TestUpdate_PickerIgnoresText(t *testing.T) {
	m := New(Options{A: "7", B: "2"})
	m = press(t, m, shiftTabKey)
	require.Equal(t, focusOperation, m.focus)

	m = typeText(t, m, "9")
	assert.Equal(t, "7", m.Snapshot().A)
	assert.Equal(t, "2", m.Snapshot().B)
	assert.Equal(t, "9", m.Snapshot().Result)
}

func TestUpdate_FocusWraps(t *testing.T) {
	m := New(Options{})

	for _, want := range []focusArea{focusB, focusOperation, focusA} {
		m = press(t, m, tabKey)
		assert.Equal(t, want, m.focus)
	}

	m = press(t, m, shiftTabKey)
	assert.Equal(t, focusOperation, m.focus)
}

func TestUpdate_Quit(t *testing.T) {
	m := New(Options{A: "1"})

	next, cmd := m.Update(escKey)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestView(t *testing.T) {
	m := New(Options{A: "7", B: "2", Operation: "División"})

	view := m.View()
	for _, want := range []string{"Calculadora", "Valor 1", "Valor 2", "Operación", "Resultado", "División", "3.5"} {
		assert.Contains(t, view, want)
	}
}

func TestView_Undefined(t *testing.T) {
	m := New(Options{A: "7", B: "0", Operation: "División"})
	assert.Contains(t, m.View(), "Resultado")
	assert.Equal(t, "-", m.Snapshot().Result)
}
