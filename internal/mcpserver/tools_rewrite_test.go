package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRewriteKeys(t *testing.T) {
	content := "server_port: 8080\nhttp-timeout: 30s\n"

	result, output, err := handleRewriteKeys(context.Background(), nil, rewriteKeysInput{
		Content: content,
		Style:   "camel",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "camel", output.Style)
	assert.Equal(t, 2, output.Rewritten)
	assert.True(t, strings.Contains(output.Document, "serverPort: 8080"))
	assert.True(t, strings.Contains(output.Document, "httpTimeout: 30s"))
	assert.Empty(t, output.Skipped)
}

func TestHandleRewriteKeys_ReportsSkipped(t *testing.T) {
	content := "\"@@@\": 1\ngood_key: 2\n"

	result, output, err := handleRewriteKeys(context.Background(), nil, rewriteKeysInput{
		Content: content,
		Style:   "camel",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 1, output.Rewritten)
	require.Len(t, output.Skipped, 1)
	assert.Equal(t, "@@@", output.Skipped[0].Key)
	assert.Equal(t, 1, output.Skipped[0].Line)
}

func TestHandleRewriteKeys_MissingContent(t *testing.T) {
	result, _, err := handleRewriteKeys(context.Background(), nil, rewriteKeysInput{Style: "camel"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleRewriteKeys_SizeLimit(t *testing.T) {
	withTestConfig(t, &serverConfig{BatchLimit: 100, MaxInputSize: 8})

	result, _, err := handleRewriteKeys(context.Background(), nil, rewriteKeysInput{
		Content: "server_port: 8080\n",
		Style:   "camel",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleRewriteKeys_InvalidYAML(t *testing.T) {
	result, _, err := handleRewriteKeys(context.Background(), nil, rewriteKeysInput{
		Content: "key: [unclosed\n",
		Style:   "camel",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
