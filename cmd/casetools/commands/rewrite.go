package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	casetools "github.com/erraggy/casetools"
	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/internal/cliutil"
	"github.com/erraggy/casetools/rewriter"
)

// RewriteFlags contains flags for the rewrite command
type RewriteFlags struct {
	Style  string
	Output string
	Quiet  bool
}

// SetupRewriteFlags creates and configures a FlagSet for the rewrite command.
// Returns the FlagSet and a RewriteFlags struct with bound flag variables.
func SetupRewriteFlags() (*flag.FlagSet, *RewriteFlags) {
	fs := flag.NewFlagSet("rewrite", flag.ContinueOnError)
	flags := &RewriteFlags{}

	fs.StringVar(&flags.Style, "s", "", "target key style: camel or dot (required)")
	fs.StringVar(&flags.Style, "style", "", "target key style: camel or dot (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools rewrite [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rewrite all YAML mapping keys in a config file to a target case style.\n")
		cliutil.Writef(fs.Output(), "Values are never modified. Keys that cannot be converted are left\n")
		cliutil.Writef(fs.Output(), "unchanged and reported to stderr.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools rewrite -s camel config.yaml\n")
		cliutil.Writef(fs.Output(), "  casetools rewrite -s dot config.yaml -o config.dot.yaml\n")
		cliutil.Writef(fs.Output(), "  cat config.yaml | casetools rewrite -q -s camel - > out.yaml\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Rewrite successful\n")
		cliutil.Writef(fs.Output(), "  1    Rewrite failed\n")
	}

	return fs, flags
}

// HandleRewrite executes the rewrite command
func HandleRewrite(args []string) error {
	fs, flags := SetupRewriteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rewrite command requires exactly one file path or '-' for stdin")
	}

	inputPath := fs.Arg(0)

	if flags.Style == "" {
		fs.Usage()
		return fmt.Errorf("style is required (use -s or --style)")
	}
	if err := ValidateStyle(flags.Style); err != nil {
		return err
	}

	var data []byte
	var err error
	if inputPath == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
			return err
		}
	}

	result, err := rewriter.RewriteYAML(data, caseconv.Style(flags.Style))
	if err != nil {
		return fmt.Errorf("rewriting keys: %w", err)
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "casetools version: %s\n", casetools.Version())
		cliutil.Writef(os.Stderr, "Input: %s\n", FormatInputPath(inputPath))
		cliutil.Writef(os.Stderr, "Style: %s\n", flags.Style)
		cliutil.Writef(os.Stderr, "Keys rewritten: %d\n", result.Rewritten)
		if len(result.Skipped) > 0 {
			cliutil.Writef(os.Stderr, "Keys skipped (%d):\n", len(result.Skipped))
			for _, s := range result.Skipped {
				cliutil.Writef(os.Stderr, "  line %d: %q: %s\n", s.Line, s.Key, s.Reason)
			}
		}
	}

	if err := WriteOutput(flags.Output, result.Document); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
	}

	return nil
}
