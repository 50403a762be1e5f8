// internal/cli/root.go
package tokbench

import (
	"os"

	"github.com/mwiater/tokbench/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "tokbench",
	Short: "tokbench — benchmark a candidate tokenizer binary against tiktoken",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults). Fatal user-input errors in the
		//    file surface here, before any measurement begins.
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2) File values become viper defaults, so bound flags override the
		//    file and the file overrides the built-in defaults.
		viper.SetDefault("size", cfg.Size)
		viper.SetDefault("iterations", cfg.Iterations)
		viper.SetDefault("warmup", cfg.Warmup)
		viper.SetDefault("encoding", cfg.Encoding)
		viper.SetDefault("seed", cfg.Seed)
		viper.SetDefault("candidateBinary", cfg.CandidateBinary)
		viper.SetDefault("jsonOutput", cfg.JSONOutput)
		viper.SetDefault("output", cfg.Output)
		viper.SetDefault("debug", cfg.Debug)
		viper.SetDefault("logFile", cfg.LogFile)

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		currentConfig = &appconfig.Config{
			Size:            viper.GetString("size"),
			Iterations:      viper.GetInt("iterations"),
			Warmup:          viper.GetInt("warmup"),
			Encoding:        viper.GetString("encoding"),
			Seed:            viper.GetInt64("seed"),
			CandidateBinary: viper.GetString("candidateBinary"),
			JSONOutput:      viper.GetBool("jsonOutput"),
			Output:          viper.GetString("output"),
			Debug:           viper.GetBool("debug"),
			LogFile:         viper.GetString("logFile"),
			ConfigPath:      cfg.ConfigPath,
		}

		return nil
	},
}

// Execute runs the root command, exiting non-zero on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("log-file", "", "append diagnostics to a log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("log-file"))
}

// getConfig returns the loaded application configuration for other packages.
func getConfig() *appconfig.Config {
	return currentConfig
}
