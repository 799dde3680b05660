package rewriter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/caseerrors"
)

func decodeDoc(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}

func TestRewriteYAML_Camel(t *testing.T) {
	input := []byte(`server_port: 8080
http-timeout: 30s
nested_map:
  inner_key: value
list_items:
  - item_one: 1
  - item_two: 2
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	doc := decodeDoc(t, result.Document)
	assert.Equal(t, 8080, doc["serverPort"])
	assert.Equal(t, "30s", doc["httpTimeout"])

	nested, ok := doc["nestedMap"].(map[string]any)
	require.True(t, ok, "nestedMap should survive as a mapping")
	assert.Equal(t, "value", nested["innerKey"])

	items, ok := doc["listItems"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, first["itemOne"])

	assert.Equal(t, 7, result.Rewritten)
	assert.Empty(t, result.Skipped)
}

func TestRewriteYAML_Dot(t *testing.T) {
	input := []byte(`server_port: 8080
Request_Timeout: 30
`)

	result, err := RewriteYAML(input, caseconv.StyleDot)
	require.NoError(t, err)

	doc := decodeDoc(t, result.Document)
	assert.Equal(t, 8080, doc["server.port"])
	// dot.case preserves the casing of each word.
	assert.Equal(t, 30, doc["Request.Timeout"])
	assert.Equal(t, 2, result.Rewritten)
}

func TestRewriteYAML_ValuesUntouched(t *testing.T) {
	input := []byte(`some_key: keep_this-value untouched
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	doc := decodeDoc(t, result.Document)
	assert.Equal(t, "keep_this-value untouched", doc["someKey"])
}

func TestRewriteYAML_SkipsUnconvertibleKeys(t *testing.T) {
	input := []byte(`"@@@": 1
good_key: 2
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	doc := decodeDoc(t, result.Document)
	assert.Equal(t, 1, doc["@@@"], "unconvertible key should be preserved")
	assert.Equal(t, 2, doc["goodKey"])

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "@@@", result.Skipped[0].Key)
	assert.Equal(t, 1, result.Skipped[0].Line)
	assert.Equal(t, "Input must contain at least one letter or number", result.Skipped[0].Reason)
}

func TestRewriteYAML_SkipsNonStringKeys(t *testing.T) {
	input := []byte(`5: five
true: yes
str_key: ok
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	require.Len(t, result.Skipped, 2)
	for _, s := range result.Skipped {
		assert.Equal(t, "non-string key", s.Reason)
	}
	assert.Equal(t, 1, result.Rewritten)
}

func TestRewriteYAML_SkipsCollidingKeys(t *testing.T) {
	input := []byte(`foo_bar: 1
foo-bar: 2
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	// First key wins the rewritten name; the second is left alone.
	doc := decodeDoc(t, result.Document)
	assert.Equal(t, 1, doc["fooBar"])
	assert.Equal(t, 2, doc["foo-bar"])

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "foo-bar", result.Skipped[0].Key)
	assert.Contains(t, result.Skipped[0].Reason, `collides with sibling key "fooBar"`)
}

func TestRewriteYAML_MultiDocument(t *testing.T) {
	input := []byte(`first_doc: 1
---
second_doc: 2
`)

	result, err := RewriteYAML(input, caseconv.StyleCamel)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Rewritten)
	// Both documents survive the round trip.
	assert.Contains(t, string(result.Document), "firstDoc: 1")
	assert.Contains(t, string(result.Document), "secondDoc: 2")
	assert.Contains(t, string(result.Document), "---")
}

func TestRewriteYAML_EmptyInput(t *testing.T) {
	result, err := RewriteYAML(nil, caseconv.StyleCamel)
	require.NoError(t, err)
	assert.Empty(t, result.Document)
	assert.Zero(t, result.Rewritten)
}

func TestRewriteYAML_InvalidStyle(t *testing.T) {
	_, err := RewriteYAML([]byte("a: 1\n"), caseconv.Style("snake"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, caseerrors.ErrConfig))
}

func TestRewriteYAML_ParseError(t *testing.T) {
	_, err := RewriteYAML([]byte("key: [unclosed\n"), caseconv.StyleCamel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestRewriter_KeysAlreadyConverted(t *testing.T) {
	input := []byte(`serverPort: 8080
`)

	result, err := New(caseconv.StyleCamel).Rewrite(input)
	require.NoError(t, err)

	// Unchanged keys are not counted as rewritten.
	assert.Zero(t, result.Rewritten)
	assert.True(t, strings.Contains(string(result.Document), "serverPort: 8080"))
}
