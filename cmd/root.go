package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/i18nscan/cmd/rules"
	"github.com/scan-io-git/i18nscan/cmd/scan"
	"github.com/scan-io-git/i18nscan/cmd/version"
	"github.com/scan-io-git/i18nscan/pkg/shared/config"
	"github.com/scan-io-git/i18nscan/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "i18nscan [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "i18nscan finds user-facing text that bypasses translation.",
		Long: `i18nscan scans UI source trees for literal, user-facing strings that should be
routed through an internationalization library. The results are heuristic and
meant for a human to triage.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional YAML config file (default is $"+config.ConfigEnv+" or built-in values).")
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(rules.NewRulesCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		return errors.ExitCodeError
	}
	return errors.ExitCodeOK
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scan.Init(AppConfig)
}
