package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/generator"
)

type generateConstantsInput struct {
	Names    []string `json:"names"              jsonschema:"Raw names to generate constants from"`
	Package  string   `json:"package"            jsonschema:"Package name for the generated file"`
	Prefix   string   `json:"prefix,omitempty"   jsonschema:"Prefix for generated constant identifiers"`
	Exported bool     `json:"exported,omitempty" jsonschema:"Export generated constants (uppercase first letter)"`
}

type generatedConstant struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

type generateIssue struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type generateConstantsOutput struct {
	Source    string              `json:"source"`
	Constants []generatedConstant `json:"constants"`
	Issues    []generateIssue     `json:"issues,omitempty"`
}

func handleGenerateConstants(_ context.Context, _ *mcp.CallToolRequest, input generateConstantsInput) (*mcp.CallToolResult, generateConstantsOutput, error) {
	if len(input.Names) > cfg.BatchLimit {
		return errResult(fmt.Errorf("batch size %d exceeds limit %d; split the request or raise CASETOOLS_BATCH_LIMIT",
			len(input.Names), cfg.BatchLimit)), generateConstantsOutput{}, nil
	}

	result, err := generator.Generate(
		generator.WithPackageName(input.Package),
		generator.WithNames(input.Names...),
		generator.WithConstPrefix(input.Prefix),
		generator.WithExported(input.Exported),
	)
	if err != nil {
		return errResult(err), generateConstantsOutput{}, nil
	}

	output := generateConstantsOutput{Source: string(result.Source)}
	output.Constants = makeSlice[generatedConstant](len(result.Constants))
	for _, c := range result.Constants {
		output.Constants = append(output.Constants, generatedConstant{Name: c.Name, Value: c.Value, Raw: c.Raw})
	}
	output.Issues = makeSlice[generateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, generateIssue{Name: issue.Name, Message: issue.Message})
	}

	return nil, output, nil
}
