package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/checklint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage checklint configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .checklint.yml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists\n", config.DefaultFile)
			exitCode = ExitUsageError
			return nil
		}
		if err := config.Save(config.Default(), config.DefaultFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", config.DefaultFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("", nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprint(os.Stdout, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
