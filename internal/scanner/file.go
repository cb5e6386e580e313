package scanner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
)

// importMarker marks a module import line; such lines are skipped wholesale.
const importMarker = "import"

// Comment openers checked against the trimmed start of a line.
var commentOpeners = []string{"//", "/*"}

// ScanFile reads path and classifies its lines. A read failure is logged and
// yields an empty collection so that one unreadable file never stops a run.
func ScanFile(path string, catalog *patterns.Catalog, logger hclog.Logger) findings.Collection {
	content, err := readFile(path)
	if err != nil {
		logger.Error("error reading file", "path", path, "error", err)
		return nil
	}
	return ScanContent(path, content, catalog)
}

// ScanContent classifies already loaded file content.
func ScanContent(path, content string, catalog *patterns.Catalog) findings.Collection {
	var result findings.Collection
	for i, line := range splitLines(content) {
		if skipLine(line) {
			continue
		}
		for _, m := range catalog.Classify(line) {
			result = append(result, findings.Finding{
				FilePath: path,
				Line:     i + 1,
				Type:     m.Rule,
				Text:     m.Text,
				FullLine: strings.TrimSpace(line),
			})
		}
	}
	return result
}

// readFile loads the whole file as UTF-8 text.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, path)
	}
	return string(data), nil
}

// splitLines normalizes CRLF and CR endings to LF before splitting.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// skipLine is line-local: interior lines of a block comment are not skipped
// unless they open with a comment marker themselves.
func skipLine(line string) bool {
	if strings.Contains(line, importMarker) {
		return true
	}
	trimmed := strings.TrimSpace(line)
	for _, opener := range commentOpeners {
		if strings.HasPrefix(trimmed, opener) {
			return true
		}
	}
	return false
}
