package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lacquerai/calcform/internal/calc"
	"github.com/lacquerai/calcform/internal/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// BatchFile is the document read by the batch command. JSON documents are
// accepted too, as they are valid YAML.
type BatchFile struct {
	Calculations []BatchEntry `yaml:"calculations"`
}

// BatchEntry is one calculation. Numbers may be written as YAML numbers or
// strings; both reach the form as the text that was written.
type BatchEntry struct {
	A         string `yaml:"a"`
	B         string `yaml:"b"`
	Operation string `yaml:"operation"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Evaluate every calculation in a YAML or JSON file",
	Long: `Evaluate a list of calculations read from a file.

The file holds a 'calculations' list whose entries have the fields a, b and
operation, all optional:

  calculations:
    - a: 10
      b: 5
      operation: Suma
    - a: 7
      b: 0
      operation: División`,
	Example: `
  calcform batch sums.yaml                # Print a table of results
  calcform batch sums.yaml --output json  # Print the results as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshots, err := runBatch(args[0])
		if err != nil {
			return err
		}

		printBatch(cmd.OutOrStdout(), snapshots, viper.GetString("output"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// loadBatchFile reads and decodes a batch document
func loadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	return &file, nil
}

// runBatch evaluates every entry of the file at path in order
func runBatch(path string) ([]calc.Snapshot, error) {
	file, err := loadBatchFile(path)
	if err != nil {
		return nil, err
	}

	snapshots := make([]calc.Snapshot, 0, len(file.Calculations))
	for _, entry := range file.Calculations {
		form := calc.NewForm()
		form.SetA(entry.A)
		form.SetB(entry.B)
		form.Select(entry.Operation)
		snapshots = append(snapshots, form.Snapshot())
	}

	log.Debug().
		Str("file", path).
		Int("calculations", len(snapshots)).
		Msg("Batch evaluated")

	return snapshots, nil
}

func printBatch(w io.Writer, snapshots []calc.Snapshot, format string) {
	switch format {
	case "json":
		style.PrintJSON(w, snapshots)
	case "yaml":
		style.PrintYAML(w, snapshots)
	default:
		if len(snapshots) == 0 {
			style.Info(w, "No calculations found")
			return
		}

		rows := make([][]string, 0, len(snapshots))
		for i, snapshot := range snapshots {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				snapshot.A,
				snapshot.Operation,
				snapshot.B,
				snapshot.Result,
			})
		}
		printTable(w, []string{"#", "A", "OPERATION", "B", "RESULT"}, rows)
	}
}
