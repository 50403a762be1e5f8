// internal/cli/bench.go
package tokbench

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/mwiater/tokbench/internal/benchmark"
	"github.com/mwiater/tokbench/internal/corpus"
	"github.com/mwiater/tokbench/internal/logging"
	"github.com/mwiater/tokbench/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// benchCmd runs the reference and candidate tokenizers over the same
// deterministic corpus and reports latency, throughput, and token parity.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the candidate tokenizer binary against tiktoken",
	Long: `Generate a deterministic corpus, run the in-process tiktoken reference and
the candidate binary over it under identical warmup/measurement loops, and
report latency distributions, throughput, and token-count parity.

The two runners execute strictly one after the other; running them
concurrently would contaminate the measurements.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(getConfig())
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().String("size", appconfig.DefaultSize, "input size (e.g., 1KB, 10KB, 100KB, 1MB)")
	benchCmd.Flags().Int("iterations", appconfig.DefaultIterations, "number of timed iterations")
	benchCmd.Flags().Int("warmup", appconfig.DefaultWarmup, "number of warmup iterations")
	benchCmd.Flags().String("encoding", appconfig.DefaultEncoding, "encoding to benchmark (cl100k_base, o200k_base)")
	benchCmd.Flags().Int64("seed", appconfig.DefaultSeed, "corpus generation seed")
	benchCmd.Flags().String("candidate", "", "path to the candidate tokenizer binary")
	benchCmd.Flags().Bool("json", false, "output JSON instead of a table")
	benchCmd.Flags().String("output", "", "write results to a file instead of stdout")

	_ = viper.BindPFlag("size", benchCmd.Flags().Lookup("size"))
	_ = viper.BindPFlag("iterations", benchCmd.Flags().Lookup("iterations"))
	_ = viper.BindPFlag("warmup", benchCmd.Flags().Lookup("warmup"))
	_ = viper.BindPFlag("encoding", benchCmd.Flags().Lookup("encoding"))
	_ = viper.BindPFlag("seed", benchCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("candidateBinary", benchCmd.Flags().Lookup("candidate"))
	_ = viper.BindPFlag("jsonOutput", benchCmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("output", benchCmd.Flags().Lookup("output"))
}

// runBench executes one full benchmark pass: corpus generation, the
// reference run, the candidate run, then reporting. Execution is strictly
// sequential.
func runBench(cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LogFile); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	if cfg.Debug {
		pp.Println(cfg)
	}

	sizeBytes, err := corpus.ParseSize(cfg.Size)
	if err != nil {
		return err
	}

	logging.LogEvent("Generating %s test data...", cfg.Size)
	text := corpus.Generate(sizeBytes, cfg.Seed)
	logging.LogEvent("  Generated %d bytes", len(text))

	runCfg := benchmark.Config{
		Encoding:   cfg.Encoding,
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
	}

	logging.LogEvent("Running benchmarks (%d iterations, %d warmup)...", cfg.Iterations, cfg.Warmup)

	logging.LogEvent("  Benchmarking tiktoken...")
	ref, err := benchmark.RunLibrary(text, runCfg)
	if err != nil {
		return err
	}
	logging.LogEvent("    %.2f MB/s", ref.ThroughputMBPS())

	logging.LogEvent("  Benchmarking candidate...")
	cand, err := benchmark.RunProcess(text, runCfg, cfg.CandidateBinaryPath())
	if err != nil {
		return err
	}

	results := []*benchmark.Result{ref}
	if cand != nil {
		results = append(results, cand)
		logging.LogEvent("    %.2f MB/s", cand.ThroughputMBPS())
	} else {
		logging.LogEvent("    Skipped (binary not found)")
	}

	var output string
	if cfg.JSONOutput {
		meta := report.Meta{
			InputSize:  cfg.Size,
			InputBytes: sizeBytes,
			Encoding:   cfg.Encoding,
			Iterations: cfg.Iterations,
		}
		data, err := report.JSON(meta, results)
		if err != nil {
			return fmt.Errorf("encode JSON report: %w", err)
		}
		output = string(data)
	} else {
		output = report.Table(results)
		if cand != nil {
			output += report.Summary(benchmark.Compare(ref, cand))
		}
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("write results to %q: %w", cfg.Output, err)
		}
		logging.LogEvent("Results written to %s", cfg.Output)
		return nil
	}

	fmt.Println(output)
	return nil
}
