package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRewriteFlags(t *testing.T) {
	fs, flags := SetupRewriteFlags()

	require.NoError(t, fs.Parse([]string{"-s", "camel", "-o", "out.yaml", "-q", "config.yaml"}))
	assert.Equal(t, "camel", flags.Style)
	assert.Equal(t, "out.yaml", flags.Output)
	assert.True(t, flags.Quiet)
	assert.Equal(t, []string{"config.yaml"}, fs.Args())
}

func TestHandleRewrite_RequiresStyle(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(input, []byte("a_b: 1\n"), 0600))

	err := HandleRewrite([]string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "style is required")
}

func TestHandleRewrite_RequiresOneArg(t *testing.T) {
	err := HandleRewrite([]string{"-s", "camel"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one file path")
}

func TestHandleRewrite_InvalidStyle(t *testing.T) {
	err := HandleRewrite([]string{"-s", "snake", "config.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid style")
}

func TestHandleRewrite_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "config.yaml")
	output := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(input, []byte("server_port: 8080\n"), 0600))

	err := HandleRewrite([]string{"-q", "-s", "camel", "-o", output, input})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "serverPort: 8080")
}

func TestHandleRewrite_MissingInputFile(t *testing.T) {
	err := HandleRewrite([]string{"-s", "camel", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file")
}
