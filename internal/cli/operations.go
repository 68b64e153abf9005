package cli

import (
	"github.com/lacquerai/calcform/internal/server"
	"github.com/lacquerai/calcform/internal/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// operationsCmd represents the operations command
var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the available operations",
	Long:  `List the operations of the picker, in picker order, with their symbols.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		operations := server.ListOperations()

		switch viper.GetString("output") {
		case "json":
			style.PrintJSON(cmd.OutOrStdout(), operations)
		case "yaml":
			style.PrintYAML(cmd.OutOrStdout(), operations)
		default:
			rows := make([][]string, 0, len(operations))
			for _, op := range operations {
				rows = append(rows, []string{op.Label, op.Symbol})
			}
			printTable(cmd.OutOrStdout(), []string{"LABEL", "SYMBOL"}, rows)
		}
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}
