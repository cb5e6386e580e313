package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFileFullPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "report.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	tests := []struct {
		name         string
		inputPath    string
		expectFile   string
		expectFolder string
	}{
		{
			name:         "existing directory",
			inputPath:    tmpDir,
			expectFile:   filepath.Join(tmpDir, "i18nscan-report.txt"),
			expectFolder: tmpDir,
		},
		{
			name:         "existing file",
			inputPath:    existing,
			expectFile:   existing,
			expectFolder: tmpDir,
		},
		{
			name:         "missing path without extension",
			inputPath:    filepath.Join(tmpDir, "reports"),
			expectFile:   filepath.Join(tmpDir, "reports", "i18nscan-report.txt"),
			expectFolder: filepath.Join(tmpDir, "reports"),
		},
		{
			name:         "missing file with extension",
			inputPath:    filepath.Join(tmpDir, "out", "scan.sarif"),
			expectFile:   filepath.Join(tmpDir, "out", "scan.sarif"),
			expectFolder: filepath.Join(tmpDir, "out"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath, folderPath, err := DetermineFileFullPath(tt.inputPath, "i18nscan-report.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.expectFile, filePath)
			assert.Equal(t, tt.expectFolder, folderPath)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/reports")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "reports"), got)

	got, err = ExpandPath("relative/path")
	require.NoError(t, err)
	assert.Equal(t, "relative/path", got)
}

func TestWriteReportFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "report.txt")

	require.NoError(t, WriteReportFile(target, []byte("first run, longer content")))
	require.NoError(t, WriteReportFile(target, []byte("second")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
