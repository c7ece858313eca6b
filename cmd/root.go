package cmd

import (
	"log"

	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	trace   bool
)

var rootCmd = &cobra.Command{
	Use:   model.AppName,
	Short: "Detect the hardware this host runs on and report its hardware inventory",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func logLevel() int {
	switch {
	case trace:
		return model.LogLevelTrace
	case debug:
		return model.LogLevelDebug
	default:
		return model.LogLevelInfo
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default is none, environment variables prefixed with HWMANAGER_ are read)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "Set logging level to debug")
	rootCmd.PersistentFlags().BoolVarP(&trace, "trace", "", false, "Set logging level to trace")
}
