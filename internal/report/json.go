package report

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/scan-io-git/i18nscan/internal/findings"
)

// JSONReport is the machine-readable form of a scan.
type JSONReport struct {
	ScanID   string               `json:"scan_id"`
	Total    int                  `json:"total"`
	Findings findings.Collection  `json:"findings"`
	TopFiles []findings.FileCount `json:"top_files"`
}

// NewJSONReport builds a JSONReport with a fresh scan id.
func NewJSONReport(c findings.Collection) JSONReport {
	if c == nil {
		c = findings.Collection{}
	}
	return JSONReport{
		ScanID:   uuid.NewString(),
		Total:    len(c),
		Findings: c,
		TopFiles: TopFiles(c, topFilesLimit),
	}
}

// RenderJSON writes the collection as indented JSON.
func RenderJSON(w io.Writer, c findings.Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(c))
}
