package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/rewriter"
)

type rewriteKeysInput struct {
	Content string `json:"content"         jsonschema:"Inline YAML document content"`
	Style   string `json:"style,omitempty" jsonschema:"Target key style: camel or dot. Falls back to CASETOOLS_DEFAULT_STYLE when omitted."`
}

type skippedKey struct {
	Key    string `json:"key"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type rewriteKeysOutput struct {
	Style     string       `json:"style"`
	Document  string       `json:"document"`
	Rewritten int          `json:"rewritten"`
	Skipped   []skippedKey `json:"skipped,omitempty"`
}

func handleRewriteKeys(_ context.Context, _ *mcp.CallToolRequest, input rewriteKeysInput) (*mcp.CallToolResult, rewriteKeysOutput, error) {
	style, err := resolveStyle(input.Style)
	if err != nil {
		return errResult(err), rewriteKeysOutput{}, nil
	}

	if input.Content == "" {
		return errResult(fmt.Errorf("content is required")), rewriteKeysOutput{}, nil
	}
	if int64(len(input.Content)) > cfg.MaxInputSize {
		return errResult(fmt.Errorf("content size %d bytes exceeds maximum %d bytes; set CASETOOLS_MAX_INPUT_SIZE to increase",
			len(input.Content), cfg.MaxInputSize)), rewriteKeysOutput{}, nil
	}

	result, err := rewriter.RewriteYAML([]byte(input.Content), style)
	if err != nil {
		return errResult(err), rewriteKeysOutput{}, nil
	}

	output := rewriteKeysOutput{
		Style:     string(style),
		Document:  string(result.Document),
		Rewritten: result.Rewritten,
	}
	output.Skipped = makeSlice[skippedKey](len(result.Skipped))
	for _, s := range result.Skipped {
		output.Skipped = append(output.Skipped, skippedKey{Key: s.Key, Line: s.Line, Reason: s.Reason})
	}

	return nil, output, nil
}
