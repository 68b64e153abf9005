package cli

import (
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var evalOperation string

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [a] [b]",
	Short: "Evaluate one calculation",
	Long: `Evaluate one calculation the way the form does and print the result label.

Missing or non-numeric values count as 0 and an unknown operation is Suma.
Division by zero prints "-".`,
	Example: `
  calcform eval 10 5                         # 15
  calcform eval 7 2 -o División              # 3.5
  calcform eval 10 0 -o División --verbose   # 10 ÷ 0 = -
  calcform eval -- -3 4                      # negative numbers after --
  calcform eval 7 2 -o Resta --output json   # whole form state as JSON`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := calc.NewForm()
		if len(args) > 0 {
			form.SetA(args[0])
		}
		if len(args) > 1 {
			form.SetB(args[1])
		}
		form.Select(evalOperation)

		snapshot := form.Snapshot()
		log.Debug().
			Str("a", snapshot.A).
			Str("b", snapshot.B).
			Str("operation", snapshot.Operation).
			Str("result", snapshot.Result).
			Msg("Evaluated")

		printSnapshot(cmd.OutOrStdout(), snapshot, viper.GetString("output"), viper.GetBool("verbose"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalOperation, "operation", "o", calc.LabelAdd, "operation label (Suma, Resta, Multiplicación, División)")
}
