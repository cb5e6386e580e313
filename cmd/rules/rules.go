package rules

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/i18nscan/internal/patterns"
)

// NewRulesCmd creates a new cobra.Command listing the rule catalog.
func NewRulesCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:                   "rules [--verbose/-v]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "List the rules used to detect untranslated text",
		Long: `List the rules used to detect untranslated text, in the order they are applied.

Note that translation_keys flags inline text shaped like a translation key
(for example >user.name<). It does not mark correct t() usage; it points at a key
that is rendered as literal text instead of being passed through the translator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRules(cmd.OutOrStdout(), patterns.Default(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the regular expression of every rule.")
	return cmd
}

// printRules writes one line per rule, optionally followed by its expression.
func printRules(w io.Writer, catalog *patterns.Catalog, verbose bool) error {
	for _, rule := range catalog.Rules() {
		caseMode := "case-sensitive"
		if rule.IgnoreCase {
			caseMode = "case-insensitive"
		}
		if _, err := fmt.Fprintf(w, "%-18s %-17s %s\n", rule.Name, caseMode, rule.Description); err != nil {
			return err
		}
		if verbose {
			if _, err := fmt.Fprintf(w, "  pattern: %s\n", rule.Pattern.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
