// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	casetools "github.com/erraggy/casetools"
)

const serverInstructions = `casetools MCP server — converts strings to camelCase and dot.case, rewrites YAML config keys, and generates Go constant files.

Styles: "camel" (digits expand to English words, e.g. hello-123-world -> helloOnetwothreeWorld) and "dot" (casing preserved, digits unchanged, e.g. Hello_World -> Hello.World).

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_BATCH_LIMIT (default: 100) — max texts per convert call
- CASETOOLS_MAX_INPUT_SIZE (default: 1048576) — max inline content bytes for rewrite_keys
- CASETOOLS_DEFAULT_STYLE — style used when a tool call omits one`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one or more strings to camelCase or dot.case. Provide either text (single string) or texts (batch). Invalid inputs are reported per item, not as a tool error. Batch size is limited by CASETOOLS_BATCH_LIMIT (default 100).",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rewrite_keys",
		Description: "Rewrite every YAML mapping key in a document to camelCase or dot.case. Values are never modified. Keys that cannot be converted (punctuation-only, non-string, or colliding after rewrite) are left unchanged and listed in the skipped output. Content size is limited by CASETOOLS_MAX_INPUT_SIZE.",
	}, handleRewriteKeys)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_constants",
		Description: "Generate a Go source file of string constants from raw names. Identifiers are the camelCase conversion (always valid Go identifiers since digits expand to words); values are the dot.case conversion. Rejected names are reported per item in issues.",
	}, handleGenerateConstants)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
