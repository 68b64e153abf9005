package form

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/rs/zerolog/log"
)

// Run shows the form until the user quits and returns its final state.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (calc.Snapshot, error) {
	log.Debug().
		Str("a", opts.A).
		Str("b", opts.B).
		Str("operation", opts.Operation).
		Msg("Starting form")

	program := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return calc.Snapshot{}, fmt.Errorf("failed to run form: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return calc.Snapshot{}, fmt.Errorf("unexpected final model %T", final)
	}

	snapshot := model.Snapshot()
	log.Debug().
		Str("result", snapshot.Result).
		Msg("Form closed")

	return snapshot, nil
}
