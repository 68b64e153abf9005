// Package form is the interactive terminal rendition of the calculator
// screen: two numeric fields, an operation picker and a live result label.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/lacquerai/calcform/internal/style"
	"github.com/rs/zerolog/log"
)

type focusArea int

const (
	focusA focusArea = iota
	focusB
	focusOperation
	focusCount
)

// Options seeds the form before the first render.
type Options struct {
	A         string
	B         string
	Operation string
}

// Model is the bubbletea model of the calculator screen.
type Model struct {
	form   calc.Form
	inputA textinput.Model
	inputB textinput.Model
	focus  focusArea
	keys   keyMap
	help   help.Model
	done   bool
}

// New builds the screen with the first field focused and the result already
// computed from the seeded values.
func New(opts Options) Model {
	m := Model{
		form:   *calc.NewForm(),
		inputA: newInput(opts.A),
		inputB: newInput(opts.B),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}

	m.inputA.Focus()
	m.form.SetA(opts.A)
	m.form.SetB(opts.B)
	m.form.Select(opts.Operation)

	return m
}

func newInput(value string) textinput.Model {
	input := textinput.New()
	input.Placeholder = "0"
	input.Prompt = "› "
	input.CharLimit = 32
	input.SetValue(value)
	return input
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus == focusOperation {
		switch {
		case key.Matches(keyMsg, m.keys.Left):
			m.form.SelectOperation(m.form.Operation().Prev())
		case key.Matches(keyMsg, m.keys.Right):
			m.form.SelectOperation(m.form.Operation().Next())
		default:
			return m, nil
		}
		log.Debug().
			Str("operation", m.form.Operation().Label()).
			Str("result", m.form.Result()).
			Msg("Operation selected")
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused field and recomputes the result
// from whatever text it holds afterwards.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusA:
		m.inputA, cmd = m.inputA.Update(msg)
		if m.inputA.Value() != m.form.A() {
			m.form.SetA(m.inputA.Value())
		}
	case focusB:
		m.inputB, cmd = m.inputB.Update(msg)
		if m.inputB.Value() != m.form.B() {
			m.form.SetB(m.inputB.Value())
		}
	}

	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = focusArea((int(m.focus) + delta + int(focusCount)) % int(focusCount))

	m.inputA.Blur()
	m.inputB.Blur()

	var cmd tea.Cmd
	switch m.focus {
	case focusA:
		cmd = m.inputA.Focus()
	case focusB:
		cmd = m.inputB.Focus()
	}

	return m, cmd
}

// View implements tea.ViewModel
func (m Model) View() string {
	if m.done {
		return ""
	}

	snapshot := m.form.Snapshot()

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Calculadora"))
	b.WriteString("\n\n")
	b.WriteString(m.row("Valor 1", m.inputA.View(), m.focus == focusA))
	b.WriteString("\n")
	b.WriteString(m.row("Valor 2", m.inputB.View(), m.focus == focusB))
	b.WriteString("\n")
	b.WriteString(m.row("Operación", m.picker(), m.focus == focusOperation))
	b.WriteString("\n\n")
	b.WriteString(m.row("Resultado", style.ResultString(snapshot.Result, snapshot.Undefined), false))

	return lipgloss.JoinVertical(lipgloss.Left,
		style.FormBoxStyle.Render(b.String()),
		m.help.View(m.keys),
	)
}

func (m Model) row(label, content string, focused bool) string {
	labelStyle := style.FieldLabelStyle
	if focused {
		labelStyle = style.FocusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), content)
}

func (m Model) picker() string {
	op := m.form.Operation()
	text := "‹ " + op.Symbol() + " " + op.Label() + " ›"
	if m.focus == focusOperation {
		return style.FocusedPickerStyle.Render(text)
	}
	return style.PickerStyle.Render(text)
}

// Snapshot returns the state of the underlying form.
func (m Model) Snapshot() calc.Snapshot {
	return m.form.Snapshot()
}
