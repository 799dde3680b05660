package rewriter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/caseerrors"
)

// SkippedKey records a mapping key that was left unchanged.
type SkippedKey struct {
	// Key is the original key text
	Key string
	// Line is the 1-based line number of the key in the source document
	Line int
	// Reason describes why the key was not rewritten
	Reason string
}

// RewriteResult contains the outcome of rewriting a YAML document's keys.
type RewriteResult struct {
	// Document is the re-encoded YAML with rewritten keys
	Document []byte
	// Rewritten is the number of keys whose text changed
	Rewritten int
	// Skipped lists keys that could not be rewritten, with reasons
	Skipped []SkippedKey
}

// Rewriter rewrites YAML mapping keys to a target case style.
type Rewriter struct {
	// Style is the output style applied to every string mapping key
	Style caseconv.Style
	// Indent is the number of spaces per indentation level in the output.
	// Defaults to 2 when zero.
	Indent int
}

// New creates a Rewriter for the given style.
func New(style caseconv.Style) *Rewriter {
	return &Rewriter{Style: style, Indent: 2}
}

// RewriteYAML is a convenience function that rewrites all mapping keys in a
// YAML document to the given style. Equivalent to New(style).Rewrite(data).
func RewriteYAML(data []byte, style caseconv.Style) (*RewriteResult, error) {
	return New(style).Rewrite(data)
}

// Rewrite parses data as YAML (one or more documents), converts every string
// mapping key to the configured style, and re-encodes the result.
//
// Keys that fail conversion validation (for example punctuation-only keys),
// non-string keys, and keys whose rewrite would collide with a sibling key
// are left unchanged and reported in RewriteResult.Skipped. Values are never
// touched.
func (r *Rewriter) Rewrite(data []byte) (*RewriteResult, error) {
	if !caseconv.IsValidStyle(string(r.Style)) {
		return nil, &caseerrors.ConfigError{
			Option:  "style",
			Value:   string(r.Style),
			Message: "unsupported style",
		}
	}

	var docs []*yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		docs = append(docs, &doc)
	}

	result := &RewriteResult{}
	for _, doc := range docs {
		r.rewriteNode(doc, result)
	}

	if len(docs) == 0 {
		// Empty input round-trips to empty output.
		return result, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := r.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding YAML: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	result.Document = buf.Bytes()
	return result, nil
}

// rewriteNode walks the node tree, rewriting the keys of every mapping.
func (r *Rewriter) rewriteNode(n *yaml.Node, result *RewriteResult) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			r.rewriteNode(child, result)
		}
	case yaml.MappingNode:
		// Content alternates key, value, key, value, ...
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			r.rewriteKey(key, seen, result)
			r.rewriteNode(value, result)
		}
	}
	// Scalars and aliases carry no keys. Alias targets are rewritten when
	// their anchor node is visited.
}

// rewriteKey converts a single mapping key in place, recording skips.
func (r *Rewriter) rewriteKey(key *yaml.Node, seen map[string]bool, result *RewriteResult) {
	if key.Kind != yaml.ScalarNode || key.Tag != "!!str" {
		// Numeric, boolean, null, and complex keys pass through untouched.
		if key.Kind == yaml.MappingNode || key.Kind == yaml.SequenceNode {
			r.rewriteNode(key, result)
			return
		}
		result.Skipped = append(result.Skipped, SkippedKey{
			Key:    key.Value,
			Line:   key.Line,
			Reason: "non-string key",
		})
		return
	}

	converted, err := caseconv.Convert(key.Value, r.Style)
	if err != nil {
		result.Skipped = append(result.Skipped, SkippedKey{
			Key:    key.Value,
			Line:   key.Line,
			Reason: err.Error(),
		})
		seen[key.Value] = true
		return
	}

	if seen[converted] {
		result.Skipped = append(result.Skipped, SkippedKey{
			Key:    key.Value,
			Line:   key.Line,
			Reason: fmt.Sprintf("rewrite collides with sibling key %q", converted),
		})
		seen[key.Value] = true
		return
	}
	seen[converted] = true

	if converted != key.Value {
		key.Value = converted
		result.Rewritten++
	}
}
