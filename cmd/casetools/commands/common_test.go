package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "text", format: FormatText, wantErr: false},
		{name: "json", format: FormatJSON, wantErr: false},
		{name: "yaml", format: FormatYAML, wantErr: false},
		{name: "invalid", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStyle(t *testing.T) {
	assert.NoError(t, ValidateStyle("camel"))
	assert.NoError(t, ValidateStyle("dot"))
	assert.NoError(t, ValidateStyle(""), "empty style is validated elsewhere")
	assert.Error(t, ValidateStyle("snake"))
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "config.yaml", FormatInputPath("config.yaml"))
}

func TestValidateOutputPath_RejectsInputOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(input, []byte("a: 1\n"), 0600))

	err := ValidateOutputPath(input, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestValidateOutputPath_StdinInputIgnored(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.yaml")

	assert.NoError(t, ValidateOutputPath(output, []string{StdinFilePath}))
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0600))

	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")

	// Regular files and missing files are fine.
	assert.NoError(t, RejectSymlinkOutput(target))
	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.yaml")))
}

func TestWriteOutput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, WriteOutput(path, []byte("hello\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
