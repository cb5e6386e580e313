package scan

import (
	"github.com/spf13/cobra"

	"github.com/scan-io-git/i18nscan/internal/git"
	"github.com/scan-io-git/i18nscan/internal/patterns"
	"github.com/scan-io-git/i18nscan/internal/scanner"
	"github.com/scan-io-git/i18nscan/pkg/shared/config"
	"github.com/scan-io-git/i18nscan/pkg/shared/errors"
	"github.com/scan-io-git/i18nscan/pkg/shared/logger"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	Extensions     []string
	Exclusions     []string
	ReportFormat   string
	OutputPath     string
	Threads        int
	FailOnFindings bool
	ChangedOnly    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning the default roots (src/app and src/components)
  i18nscan scan

  # Scanning specific directories
  i18nscan scan web/pages web/widgets

  # Scanning Vue and TypeScript sources only
  i18nscan scan --ext .vue,.ts src

  # Writing a SARIF report into a results folder
  i18nscan scan --format sarif --output /path/to/results

  # Scanning only files changed in the git worktree and failing when anything is found
  i18nscan scan --changed --fail-on-findings

  # Scanning a large tree with multiple concurrent threads
  i18nscan scan -j 8 src`
)

// ScanCmd represents the scan command.
var ScanCmd = &cobra.Command{
	Use:                   "scan [--ext/-e EXTENSIONS] [--exclude/-x SUBSTRINGS] [--format/-f FORMAT] [--output/-o PATH] [-j THREADS_NUMBER, default=1] [--changed] [--fail-on-findings] [DIR...]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scans UI sources for literal text that bypasses translation",
	Long: `Scans UI sources for literal text that bypasses translation.

Every line of every eligible file is checked against the built-in rule catalog
(see the rules command). Lines containing "import" and lines opening with // or /*
are skipped. Results are advisory: the command exits with 0 unless
--fail-on-findings is set and something was found.`,
	RunE: runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	if AppConfig == nil {
		AppConfig = config.Default()
	}
	logger := logger.NewLogger(AppConfig, "core-scan")

	scanConfig := AppConfig.Scan
	applyFlagOverrides(cmd.Flags(), &scanConfig, &scanOptions, args)

	if err := validateScanArgs(&scanConfig); err != nil {
		logger.Error("invalid scan arguments", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeError)
	}

	catalog := patterns.Default()
	s := scanner.New(
		catalog,
		scanConfig.Extensions,
		scanner.ExclusionSet(scanConfig.Exclusions),
		scanConfig.Threads,
		logger,
	)

	if scanConfig.ChangedOnly {
		changed, err := git.ChangedFiles(".", logger)
		if err != nil {
			logger.Error("failed to collect changed files", "error", err)
			return errors.NewCommandError(err, errors.ExitCodeError)
		}
		logger.Info("restricting scan to changed files", "count", len(changed))
		s.RestrictTo(changed)
	}

	result := s.Walk(scanConfig.Roots)

	if err := writeReport(cmd.OutOrStdout(), &scanConfig, result, catalog, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeError)
	}

	if scanConfig.FailOnFindings && len(result) > 0 {
		return errors.NewFindingsError(len(result))
	}

	logger.Debug("scan command completed successfully", "findings", len(result))
	return nil
}

// Initialize flags for the scan command.
func init() {
	ScanCmd.Flags().StringSliceVarP(&scanOptions.Extensions, "ext", "e", nil, "Comma-separated file extensions to scan (default .tsx,.ts,.jsx,.js).")
	ScanCmd.Flags().StringSliceVarP(&scanOptions.Exclusions, "exclude", "x", nil, "Comma-separated path substrings to skip (default node_modules,.next,dist,build,.git,__tests__,.test.,.spec.).")
	ScanCmd.Flags().StringVarP(&scanOptions.ReportFormat, "format", "f", "", "Format of the report: text, json or sarif (default text).")
	ScanCmd.Flags().BoolP("help", "h", false, "Show help for the scan command.")
	ScanCmd.Flags().StringVarP(&scanOptions.OutputPath, "output", "o", "", "Path to the output file or directory for the report. The report is printed to stdout when empty.")
	ScanCmd.Flags().IntVarP(&scanOptions.Threads, "threads", "j", 1, "Number of files to scan concurrently.")
	ScanCmd.Flags().BoolVar(&scanOptions.FailOnFindings, "fail-on-findings", false, "Exit with code 2 when any finding is reported.")
	ScanCmd.Flags().BoolVar(&scanOptions.ChangedOnly, "changed", false, "Only scan files that are modified or untracked in the current git worktree.")
}
