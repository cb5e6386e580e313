package scan

import (
	"fmt"

	"github.com/scan-io-git/i18nscan/internal/report"
	"github.com/scan-io-git/i18nscan/pkg/shared/config"
)

// validateScanArgs validates the effective scan configuration.
func validateScanArgs(scanConfig *config.Scan) error {
	if err := config.ValidateScanConfig(scanConfig); err != nil {
		return err
	}

	for _, format := range report.Formats {
		if scanConfig.Format == format {
			return nil
		}
	}
	return fmt.Errorf("the 'format' flag must be one of %v, got %q", report.Formats, scanConfig.Format)
}
