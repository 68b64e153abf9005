package cli

import (
	"fmt"

	"github.com/lacquerai/calcform/internal/server"
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Output the JSON schema of the HTTP API",
	Long:   `Output the JSON schema of every payload the HTTP API reads or writes.`,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaBytes, err := server.NewSchema()
		if err != nil {
			return fmt.Errorf("error generating schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(schemaBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
