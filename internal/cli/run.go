package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/checklint/internal/analysis"
	"github.com/dshills/checklint/internal/annotate"
	"github.com/dshills/checklint/internal/checkrun"
	"github.com/dshills/checklint/internal/config"
	"github.com/dshills/checklint/internal/github"
	"github.com/dshills/checklint/internal/output"
	"github.com/dshills/checklint/internal/report"
	"github.com/dshills/checklint/internal/trigger"
)

var (
	flagConfig    string
	flagFindings  string
	flagRules     string
	flagCheckName string
	flagBatchSize int
	flagFormat    string
	flagOut       string
	flagOwner     string
	flagRepo      string
	flagPR        int
	flagSHA       string
	flagDryRun    bool
	flagEnvFile   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reporting pipeline",
	Long:  "Load findings, scope them to the pull request's changed files, and publish a check run with batched annotations.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEnvFile != "" {
			if err := godotenv.Load(flagEnvFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error: loading env file: %v\n", err)
				exitCode = ExitUsageError
				return nil
			}
		}

		cfg, err := config.Load(flagConfig, buildOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		ctx := context.Background()

		findings, err := loadFindings(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		rules, err := analysis.LoadRules(cfg.RulesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		findings = rules.Apply(findings)

		run, err := buildRunContext(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}
		log.WithField("repository", run.Repository()).Debug("run context resolved")

		var client *github.Client
		if !flagDryRun || run.IsPullRequest() {
			client, err = github.NewClient()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
		}

		// No PR context: nil set, the filter is the identity.
		var changed map[string]bool
		if run.IsPullRequest() {
			files, err := client.ChangedFiles(ctx, run.Owner, run.Repo, run.PRNumber, run.ChangedFileCount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			changed = annotate.ChangedFileSet(files)
			log.WithField("files", len(files)).Debug("changed-file set resolved")
		}

		scoped := annotate.FilterScope(findings, changed)
		anns := annotate.Project(scoped)
		verdict := annotate.ComputeVerdict(anns)
		batches := annotate.SplitIntoBatches(anns, cfg.BatchSize)

		runID := uuid.NewString()
		body, err := report.Build(runID, cfg, rules, verdict.Summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagDryRun {
			log.WithFields(logrus.Fields{
				"annotations": len(anns),
				"batches":     len(batches),
				"conclusion":  verdict.Conclusion,
			}).Info("dry run: not publishing")
		} else {
			driver := checkrun.New(client, log)
			if err := driver.Publish(ctx, run, verdict, batches, body); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}

		rep := &report.Report{
			Tool:           "checklint",
			Version:        version,
			RunID:          runID,
			Repository:     run.Repository(),
			HeadSHA:        run.HeadSHA,
			PRNumber:       run.PRNumber,
			CheckName:      run.CheckName,
			TotalFindings:  len(findings),
			ScopedFindings: len(scoped),
			ErrorCount:     verdict.ErrorCount,
			WarningCount:   verdict.WarningCount,
			Conclusion:     verdict.Conclusion,
			Summary:        verdict.Summary,
			Batches:        len(batches),
			DryRun:         flagDryRun,
		}
		if err := output.WriteReport(rep, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		return nil
	},
}

// loadFindings resolves the finding source: an analyzer command when
// configured, otherwise the findings file (or stdin).
func loadFindings(ctx context.Context, cfg config.Config) ([]analysis.Finding, error) {
	if cfg.Analyzer.Command != "" {
		return analysis.Exec(ctx, cfg.Analyzer.Command, cfg.Analyzer.Args...)
	}
	if cfg.Findings == "" {
		return nil, fmt.Errorf("no finding source: set findings path or analyzer command")
	}
	return analysis.Load(cfg.Findings)
}

// buildRunContext resolves the trigger context from the environment and
// applies explicit flag overrides on top.
func buildRunContext(cfg config.Config) (trigger.RunContext, error) {
	run, err := trigger.FromEnv(cfg.CheckName)
	if err != nil {
		// Flags can still supply a full identity for local use.
		if flagOwner == "" || flagRepo == "" || flagSHA == "" {
			return trigger.RunContext{}, err
		}
		run = trigger.RunContext{CheckName: cfg.CheckName}
	}
	if flagOwner != "" {
		run.Owner = flagOwner
	}
	if flagRepo != "" {
		run.Repo = flagRepo
	}
	if flagSHA != "" {
		run.HeadSHA = flagSHA
	}
	if flagPR > 0 {
		run.PRNumber = flagPR
	}
	return run, nil
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFindings != "" {
		m["findings"] = flagFindings
	}
	if flagRules != "" {
		m["rulesFile"] = flagRules
	}
	if flagCheckName != "" {
		m["checkName"] = flagCheckName
	}
	if flagBatchSize > 0 {
		m["batchSize"] = strconv.Itoa(flagBatchSize)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: .checklint.yml)")
	runCmd.Flags().StringVar(&flagFindings, "findings", "", "Findings JSON path ('-' for stdin)")
	runCmd.Flags().StringVar(&flagRules, "rules", "", "Rules file path")
	runCmd.Flags().StringVar(&flagCheckName, "check-name", "", "Name of the check run")
	runCmd.Flags().IntVar(&flagBatchSize, "batch-size", 0, "Annotations per update call (max 50)")
	runCmd.Flags().StringVar(&flagFormat, "format", "", "Local report format (text, json)")
	runCmd.Flags().StringVar(&flagOut, "out", "", "Local report file path (default: stdout)")
	runCmd.Flags().StringVar(&flagOwner, "owner", "", "Repository owner (auto-detected if omitted)")
	runCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository name (auto-detected if omitted)")
	runCmd.Flags().IntVar(&flagPR, "pr", 0, "Pull request number (from event payload if omitted)")
	runCmd.Flags().StringVar(&flagSHA, "sha", "", "Head commit SHA (from environment if omitted)")
	runCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Run the pipeline but don't publish to GitHub")
	runCmd.Flags().StringVar(&flagEnvFile, "env-file", "", "Load environment variables from a dotenv file")
}
