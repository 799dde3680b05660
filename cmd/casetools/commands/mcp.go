package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdio, exposing the\n")
		cliutil.Writef(fs.Output(), "casetools operations as MCP tools (convert, rewrite_keys,\n")
		cliutil.Writef(fs.Output(), "generate_constants).\n\n")
		cliutil.Writef(fs.Output(), "Configuration is via CASETOOLS_* environment variables:\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_BATCH_LIMIT       max texts per convert call (default: 100)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_MAX_INPUT_SIZE    max inline content bytes (default: 1048576)\n")
		cliutil.Writef(fs.Output(), "  CASETOOLS_DEFAULT_STYLE     style used when a tool call omits one\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
