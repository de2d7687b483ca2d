package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proxyfmt/internal/config"
	"proxyfmt/internal/logger"
)

var cfgFile string
var verbose bool
var logFile string
var output string

var rootCmd = &cobra.Command{
	Use:   "proxyfmt",
	Short: "Decode and encode proxy share links, subscriptions and Clash nodes",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies --output on top of the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if output != "" {
		cfg.Output = output
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr (overwrites file)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Record rendering: yaml or json (overrides config)")
}
