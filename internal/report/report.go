package report

import (
	"fmt"
	"io"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
)

// Supported output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSarif = "sarif"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatSarif}

// Render writes c to w in the requested format.
func Render(w io.Writer, format string, c findings.Collection, catalog *patterns.Catalog) error {
	switch format {
	case FormatText, "":
		return RenderText(w, c)
	case FormatJSON:
		return RenderJSON(w, c)
	case FormatSarif:
		return RenderSarif(w, c, catalog)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
