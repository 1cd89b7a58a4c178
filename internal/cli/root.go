package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. The exit status reflects pipeline health only; the analysis
// verdict lives on the remote check, not in the exit code.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:   "checklint",
	Short: "Publish static-analysis findings as a GitHub check run",
	Long:  "Checklint ingests analyzer findings, scopes them to the triggering pull request, and drives a GitHub check run to completion with batched inline annotations.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if flagDebug {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// log is the process-wide logger; commands and the lifecycle driver share it.
var log = logrus.New()

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print checklint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "checklint version %s\n", version)
	},
}
