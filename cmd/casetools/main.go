package main

import (
	"fmt"
	"os"

	casetools "github.com/erraggy/casetools"
	"github.com/erraggy/casetools/cmd/casetools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
		fmt.Println(casetools.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "camel":
		if err := commands.HandleCamel(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "dot":
		if err := commands.HandleDot(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "rewrite":
		if err := commands.HandleRewrite(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every dispatchable command name for typo suggestions.
var knownCommands = []string{"camel", "dot", "rewrite", "generate", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`casetools - String Case Conversion Tools

Usage:
  casetools <command> [options]

Commands:
  camel       Convert text to camelCase (digits expand to English words)
  dot         Convert text to dot.case (casing preserved)
  rewrite     Rewrite YAML config keys to a target case style
  generate    Generate a Go constants file from raw names
  mcp         Run a Model Context Protocol server over stdio
  version     Show version information
  help        Show this help message

Examples:
  casetools camel hello-world
  casetools camel hello-123-world
  casetools dot Hello_World
  casetools rewrite -s camel config.yaml
  casetools generate -pkg keys server-port http_timeout
  cat names.txt | casetools camel -

Run 'casetools <command> --help' for more information on a command.`)
}
