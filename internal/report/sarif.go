package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
)

const (
	toolName           = "i18nscan"
	toolInformationURI = "https://github.com/scan-io-git/i18nscan"
	resultLevel        = "warning"
)

// NewSarifReport converts findings into a SARIF 2.1.0 log with a single run.
// Every rule that produced a finding is registered with its catalog description.
func NewSarifReport(c findings.Collection, catalog *patterns.Catalog) (*sarif.Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	for _, f := range c {
		rule := run.AddRule(f.Type).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: resultLevel})
		if r, ok := catalog.Lookup(f.Type); ok {
			rule.WithDescription(r.Description)
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.FilePath)).
				WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(fmt.Sprintf("Possible untranslated text %q", f.Text))).
			WithLevel(resultLevel).
			WithLocations([]*sarif.Location{location})
		result.Properties = sarif.Properties{
			"text":     f.Text,
			"fullLine": f.FullLine,
		}
		run.AddResult(result)
	}
	reportSarif.AddRun(run)
	return reportSarif, nil
}

// RenderSarif writes the collection as pretty-printed SARIF.
func RenderSarif(w io.Writer, c findings.Collection, catalog *patterns.Catalog) error {
	reportSarif, err := NewSarifReport(c, catalog)
	if err != nil {
		return err
	}
	return reportSarif.PrettyWrite(w)
}
