package cmd

import (
	"fmt"
	"os"

	"quoraprofiler-backend/lib/telemetry"
	"quoraprofiler-backend/services/quora"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var service quora.Service
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quora-cli",
	Short: "quora-cli queries the Quora scraping API from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()
		telemetry.InitSlog(verbose)
		service = quora.NewService(quora.ConfigFromEnv())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
