package scan

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
	"github.com/scan-io-git/i18nscan/internal/report"
	"github.com/scan-io-git/i18nscan/pkg/shared/config"
	"github.com/scan-io-git/i18nscan/pkg/shared/files"
)

// reportNameTemplate names the report file when --output points at a folder.
const reportNameTemplate = "i18nscan-report.%s"

// applyFlagOverrides copies explicitly set flags and positional directories
// over the configured scan values.
func applyFlagOverrides(flags *pflag.FlagSet, scanConfig *config.Scan, options *RunOptionsScan, args []string) {
	if len(args) > 0 {
		scanConfig.Roots = args
	}
	if flags.Changed("ext") {
		scanConfig.Extensions = options.Extensions
	}
	if flags.Changed("exclude") {
		scanConfig.Exclusions = options.Exclusions
	}
	if flags.Changed("format") {
		scanConfig.Format = options.ReportFormat
	}
	if flags.Changed("output") {
		scanConfig.Output = options.OutputPath
	}
	if flags.Changed("threads") {
		scanConfig.Threads = options.Threads
	}
	if flags.Changed("fail-on-findings") {
		scanConfig.FailOnFindings = options.FailOnFindings
	}
	if flags.Changed("changed") {
		scanConfig.ChangedOnly = options.ChangedOnly
	}
}

// reportExtension maps a report format onto a file extension.
func reportExtension(format string) string {
	switch format {
	case report.FormatJSON:
		return "json"
	case report.FormatSarif:
		return "sarif"
	default:
		return "txt"
	}
}

// writeReport renders the findings to stdout, or to the configured output path.
func writeReport(stdout io.Writer, scanConfig *config.Scan, result findings.Collection, catalog *patterns.Catalog, logger hclog.Logger) error {
	if scanConfig.Output == "" {
		return report.Render(stdout, scanConfig.Format, result, catalog)
	}

	outputFile, _, err := files.DetermineFileFullPath(scanConfig.Output, fmt.Sprintf(reportNameTemplate, reportExtension(scanConfig.Format)))
	if err != nil {
		return fmt.Errorf("failed to determine report path: %w", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, scanConfig.Format, result, catalog); err != nil {
		return err
	}
	if err := files.WriteReportFile(outputFile, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report %q: %w", outputFile, err)
	}

	logger.Info("report written", "path", outputFile, "format", scanConfig.Format, "findings", len(result))
	return nil
}
