// Package cli wires the cobra command surface around the batch runner.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/autoheader/internal/version"
	"github.com/arthur-debert/autoheader/pkg/config"
	"github.com/arthur-debert/autoheader/pkg/logging"
	"github.com/arthur-debert/autoheader/pkg/run"
)

// ExitCodeError signals a non-zero exit without an error message; cobra
// has already reported everything worth saying.
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		directory  string
		headerText string
		headerFile string
		ignore     []string
		jobs       int
		check      bool
		dryRun     bool
	)

	rootCmd := &cobra.Command{
		Use:   "autoheader",
		Short: "Keep copyright headers current across a source tree",
		Long: `autoheader inserts, updates, or verifies a copyright/license header at
the top of source files across multiple languages, while keeping
language-specific preamble lines (shebangs, #Requires directives, YAML
front matter, build constraints) exactly where they belong.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]interface{})
			if cmd.Flags().Changed("header") {
				overrides["header"] = headerText
			}
			if cmd.Flags().Changed("header-file") {
				overrides["header_file"] = headerFile
			}
			if cmd.Flags().Changed("ignore") {
				overrides["ignore"] = ignore
			}
			if cmd.Flags().Changed("jobs") {
				overrides["jobs"] = jobs
			}

			cfg, err := config.Load(directory, overrides)
			if err != nil {
				return err
			}

			// Never stamp the tool's own config file.
			result, err := run.Run(cmd.Context(), run.Options{
				Root:   directory,
				Header: cfg.Header,
				Ignore: append(cfg.Ignore, config.FileName),
				Jobs:   cfg.Jobs,
				Check:  check,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			printResult(cmd, result, check || dryRun)

			// Changed files are fine; failures are not. Check mode also
			// fails when something is out of date.
			if result.Failed > 0 || (check && result.Modified > 0) {
				return ExitCodeError{Code: 1}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&directory, "directory", "d", ".", "Root directory to scan")
	rootCmd.Flags().StringVar(&headerText, "header", "", "Desired header text")
	rootCmd.Flags().StringVar(&headerFile, "header-file", "", "Read the header text from a file")
	rootCmd.Flags().StringArrayVarP(&ignore, "ignore", "i", nil, "Glob pattern to exclude (repeatable)")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of files processed concurrently")
	rootCmd.Flags().BoolVar(&check, "check", false, "Report out-of-date headers without writing, exit 1 if any")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing them")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newListTypesCmd())

	return rootCmd
}

func printResult(cmd *cobra.Command, result *run.Result, preview bool) {
	out := cmd.OutOrStdout()

	verb := map[run.Status]string{
		run.StatusInserted: "inserted",
		run.StatusReplaced: "replaced",
		run.StatusFailed:   "failed",
	}
	if preview {
		verb[run.StatusInserted] = "would insert"
		verb[run.StatusReplaced] = "would replace"
	}

	for _, f := range result.Files {
		switch f.Status {
		case run.StatusInserted, run.StatusReplaced:
			fmt.Fprintf(out, "%s %s\n", color.GreenString(verb[f.Status]), f.Path)
		case run.StatusFailed:
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString(verb[f.Status]), f.Path, f.Err)
		}
	}

	fmt.Fprintf(out, "%d processed, %d modified, %d unchanged, %d skipped, %d failed\n",
		result.Processed, result.Modified, result.Unchanged, result.Skipped, result.Failed)
}
