package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateScanConfig(&cfg.Scan); err != nil {
		return fmt.Errorf("YAML global config: scan directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks that the log level is one hclog understands.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	switch strings.ToUpper(loggerConfig.Level) {
	case "", "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", loggerConfig.Level)
	}
}

// ValidateScanConfig checks if the scan configurations have valid values.
func ValidateScanConfig(scanConfig *Scan) error {
	if scanConfig == nil {
		return fmt.Errorf("scan configuration is nil")
	}
	if len(scanConfig.Roots) == 0 {
		return fmt.Errorf("at least one root directory must be specified")
	}
	if err := validateExtensions(scanConfig.Extensions); err != nil {
		return err
	}
	for _, exclusion := range scanConfig.Exclusions {
		if exclusion == "" {
			return fmt.Errorf("exclusions must not contain empty values")
		}
	}
	if scanConfig.Threads <= 0 {
		return fmt.Errorf("threads must be a positive integer: %d", scanConfig.Threads)
	}
	return nil
}

// validateExtensions checks that every extension is a non-empty dotted suffix.
func validateExtensions(extensions []string) error {
	if len(extensions) == 0 {
		return fmt.Errorf("at least one file extension must be specified")
	}
	for _, ext := range extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid file extension %q: must start with '.'", ext)
		}
	}
	return nil
}
