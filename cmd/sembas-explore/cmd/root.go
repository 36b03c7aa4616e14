package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  *slog.Logger
)

// rootCmd is the base command for the sembas-explore binary.
var rootCmd = &cobra.Command{
	Use:   "sembas-explore",
	Short: "Boundary-exploration driver for black-box systems under test",
	Long: `sembas-explore finds and characterizes the boundary between the
within-mode and out-of-mode regions of a classifier, using Monte-Carlo
seed acquisition, binary surface search, and mesh-based boundary
exploration. It can run against a built-in reference shape or bridge to
a remote system under test over TCP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose || viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML exploration config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("sembas")
	viper.AutomaticEnv()
}

// BinName returns the base name of the running executable, for help text.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// Logger returns the logger configured by the root command's PersistentPreRun.
func Logger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// configPath resolves the --config flag, falling back to viper's bound
// environment variable (SEMBAS_CONFIG) if the flag was not set.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return viper.GetString("config")
}
