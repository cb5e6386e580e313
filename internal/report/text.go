package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/scan-io-git/i18nscan/internal/findings"
)

const (
	// NoIssuesMessage is the whole text report for an empty collection.
	NoIssuesMessage = "No untranslated strings found!"

	maxPerFile     = 5
	maxFullLineLen = 100
	topFilesLimit  = 10
)

// RenderText writes the human-readable report: findings grouped by rule and
// file, a grand total and a ranking of the files with most findings.
func RenderText(w io.Writer, c findings.Collection) error {
	var b strings.Builder

	if len(c) == 0 {
		b.WriteString(NoIssuesMessage + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("=== Untranslated Strings Found ===\n\n")
	for _, byType := range c.GroupByType() {
		fmt.Fprintf(&b, "\n%s (%d found):\n", strings.ToUpper(byType.Key), len(byType.Findings))
		b.WriteString(strings.Repeat("-", 80) + "\n")

		for _, byFile := range byType.Findings.GroupByFile() {
			fmt.Fprintf(&b, "\n%s:\n", byFile.Key)
			for i, f := range byFile.Findings {
				if i == maxPerFile {
					break
				}
				fmt.Fprintf(&b, "  Line %d: \"%s\"\n", f.Line, f.Text)
				if len([]rune(f.FullLine)) < maxFullLineLen {
					fmt.Fprintf(&b, "    Full line: %s\n", f.FullLine)
				}
			}
			if extra := len(byFile.Findings) - maxPerFile; extra > 0 {
				fmt.Fprintf(&b, "  ... and %d more\n", extra)
			}
		}
	}

	fmt.Fprintf(&b, "\n\nTotal issues found: %d\n", len(c))

	b.WriteString("\nFiles with most issues:\n")
	for _, fc := range TopFiles(c, topFilesLimit) {
		fmt.Fprintf(&b, "  %3d issues: %s\n", fc.Count, fc.FilePath)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// TopFiles ranks files by finding count, descending. Ties keep first-seen order.
func TopFiles(c findings.Collection, limit int) []findings.FileCount {
	counts := c.CountByFile()
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
