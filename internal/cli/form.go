package cli

import (
	"github.com/lacquerai/calcform/internal/form"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Form command flags
	formA         string
	formB         string
	formOperation string
)

// formCmd represents the form command
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the calculator form in the terminal",
	Long: `Open the interactive calculator form.

Type into the two fields and pick an operation; the result label is recomputed
on every keystroke. Division by zero shows "-", anything that is not a number
counts as 0.

Keys:
  tab / enter      next field
  shift+tab        previous field
  ← → ↑ ↓          change operation (on the picker)
  esc / ctrl+c     quit`,
	Example: `
  calcform form                                 # Empty form, Suma selected
  calcform form --a 7 --b 2 --operation División # Start from a calculation`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
	addFormFlags(formCmd)
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&formA, "a", "", "initial text of the first field")
	cmd.Flags().StringVar(&formB, "b", "", "initial text of the second field")
	cmd.Flags().StringVar(&formOperation, "operation", "Suma", "initial operation (Suma, Resta, Multiplicación, División)")
}

// runForm shows the form and prints its final state once it is closed
func runForm(cmd *cobra.Command, args []string) error {
	snapshot, err := form.Run(cmd.Context(), form.Options{
		A:         formA,
		B:         formB,
		Operation: formOperation,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if viper.GetBool("quiet") {
		return nil
	}

	printSnapshot(cmd.OutOrStdout(), snapshot, viper.GetString("output"), true)
	return nil
}
