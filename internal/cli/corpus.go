// internal/cli/corpus.go
package tokbench

import (
	"fmt"
	"os"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/corpus"
	"github.com/spf13/cobra"
)

var corpusOpts struct {
	size   string
	seed   int64
	output string
}

// corpusCmd emits the deterministic corpus a benchmark run would measure,
// so the exact bytes can be inspected or fed to other tools.
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Emit the deterministic benchmark corpus for a given size and seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sizeBytes, err := corpus.ParseSize(corpusOpts.size)
		if err != nil {
			return err
		}

		text := corpus.Generate(sizeBytes, corpusOpts.seed)

		if corpusOpts.output != "" {
			if err := os.WriteFile(corpusOpts.output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write corpus to %q: %w", corpusOpts.output, err)
			}
			return nil
		}

		fmt.Print(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)

	corpusCmd.Flags().StringVar(&corpusOpts.size, "size", appconfig.DefaultSize, "corpus size (e.g., 1KB, 10KB, 100KB, 1MB)")
	corpusCmd.Flags().Int64Var(&corpusOpts.seed, "seed", appconfig.DefaultSeed, "corpus generation seed")
	corpusCmd.Flags().StringVar(&corpusOpts.output, "output", "", "write the corpus to a file instead of stdout")
}
