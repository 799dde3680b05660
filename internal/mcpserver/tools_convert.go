package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caseconv"
)

type convertInput struct {
	Text  string   `json:"text,omitempty"  jsonschema:"A single string to convert"`
	Texts []string `json:"texts,omitempty" jsonschema:"Multiple strings to convert in one call"`
	Style string   `json:"style,omitempty" jsonschema:"Output style: camel or dot. Falls back to CASETOOLS_DEFAULT_STYLE when omitted."`
}

type convertItem struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Words  int    `json:"words,omitempty"`
	Error  string `json:"error,omitempty"`
}

type convertOutput struct {
	Style      string        `json:"style"`
	Results    []convertItem `json:"results"`
	ErrorCount int           `json:"error_count"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	style, err := resolveStyle(input.Style)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	inputs, err := resolveTexts(input)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{Style: string(style)}
	output.Results = makeSlice[convertItem](len(inputs))
	for _, text := range inputs {
		item := convertItem{Input: text}
		result, err := caseconv.ConvertDetailed(text, style)
		if err != nil {
			item.Error = err.Error()
			output.ErrorCount++
		} else {
			item.Output = result.Output
			item.Words = len(result.Words)
		}
		output.Results = append(output.Results, item)
	}

	return nil, output, nil
}

// resolveStyle maps the style field (or the configured default) to a Style.
func resolveStyle(style string) (caseconv.Style, error) {
	if style == "" {
		style = cfg.DefaultStyle
	}
	if style == "" {
		return "", fmt.Errorf("style is required (camel or dot)")
	}
	if !caseconv.IsValidStyle(style) {
		return "", fmt.Errorf("invalid style %q; valid styles: %v", style, caseconv.ValidStyles())
	}
	return caseconv.Style(style), nil
}

// resolveTexts collects the inputs from whichever field was provided and
// enforces the batch limit.
func resolveTexts(input convertInput) ([]string, error) {
	switch {
	case input.Text != "" && len(input.Texts) > 0:
		return nil, fmt.Errorf("provide either text or texts, not both")
	case input.Text != "":
		return []string{input.Text}, nil
	case len(input.Texts) > 0:
		if len(input.Texts) > cfg.BatchLimit {
			return nil, fmt.Errorf("batch size %d exceeds limit %d; split the request or raise CASETOOLS_BATCH_LIMIT",
				len(input.Texts), cfg.BatchLimit)
		}
		return input.Texts, nil
	default:
		return nil, fmt.Errorf("one of text or texts must be provided")
	}
}
