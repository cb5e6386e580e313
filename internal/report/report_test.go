package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/i18nscan/internal/findings"
	"github.com/scan-io-git/i18nscan/internal/patterns"
)

func sampleFindings() findings.Collection {
	return findings.Collection{
		{FilePath: "src/app/page.tsx", Line: 4, Type: patterns.RuleTextInJSX, Text: "Save", FullLine: "<button>Save</button>"},
		{FilePath: "src/app/page.tsx", Line: 4, Type: patterns.RuleButtonText, Text: "Save", FullLine: "<button>Save</button>"},
		{FilePath: "src/components/a.tsx", Line: 9, Type: patterns.RuleTextInJSX, Text: "Hello", FullLine: "<h1>Hello</h1>"},
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleFindings(), patterns.Default()))

	var got JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	_, err := uuid.Parse(got.ScanID)
	assert.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, sampleFindings(), got.Findings)
	assert.Equal(t, []findings.FileCount{
		{FilePath: "src/app/page.tsx", Count: 2},
		{FilePath: "src/components/a.tsx", Count: 1},
	}, got.TopFiles)
	assert.Contains(t, buf.String(), `"top_files": [`)
}

func TestRenderJSONEmptyHasEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, nil))
	assert.Contains(t, buf.String(), `"findings": []`)
}

func TestNewSarifReport(t *testing.T) {
	got, err := NewSarifReport(sampleFindings(), patterns.Default())
	require.NoError(t, err)

	require.Len(t, got.Runs, 1)
	run := got.Runs[0]
	assert.Equal(t, toolName, run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, patterns.RuleTextInJSX, run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, patterns.RuleButtonText, run.Tool.Driver.Rules[1].ID)

	require.Len(t, run.Results, 3)
	first := run.Results[0]
	require.NotNil(t, first.RuleID)
	assert.Equal(t, patterns.RuleTextInJSX, *first.RuleID)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "src/app/page.tsx", *first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 4, *first.Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "Save", first.Properties["text"])
}

func TestRenderSarifIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatSarif, sampleFindings(), patterns.Default()))

	var decoded sarif.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, string(sarif.Version210), decoded.Version)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "xml", nil, patterns.Default())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
