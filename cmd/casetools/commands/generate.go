package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casetools/generator"
	"github.com/erraggy/casetools/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Package  string
	Prefix   string
	Exported bool
	Output   string
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Package, "pkg", "", "package name for the generated file (required)")
	fs.StringVar(&flags.Prefix, "prefix", "", "prefix for generated constant identifiers")
	fs.BoolVar(&flags.Exported, "exported", false, "export generated constants (uppercase first letter)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools generate [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Generate a Go constants file from raw names. Identifiers are the\n")
		cliutil.Writef(fs.Output(), "camelCase conversion of each name; values are the dot.case conversion.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools generate -pkg keys server-port http_timeout\n")
		cliutil.Writef(fs.Output(), "  casetools generate -pkg keys -exported -o keys.go server-port\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | casetools generate -pkg keys -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Generation successful\n")
		cliutil.Writef(fs.Output(), "  1    Generation failed or no valid names\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Package == "" {
		fs.Usage()
		return fmt.Errorf("package name is required (use -pkg)")
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("generate command requires at least one name, or '-' for stdin")
	}

	names := fs.Args()
	if len(names) == 1 && names[0] == StdinFilePath {
		var err error
		names, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, nil); err != nil {
			return err
		}
	}

	result, err := generator.Generate(
		generator.WithPackageName(flags.Package),
		generator.WithNames(names...),
		generator.WithConstPrefix(flags.Prefix),
		generator.WithExported(flags.Exported),
	)
	if err != nil {
		return fmt.Errorf("generating constants: %w", err)
	}

	for _, issue := range result.Issues {
		cliutil.Writef(os.Stderr, "Warning: skipped %q: %s\n", issue.Name, issue.Message)
	}

	return WriteOutput(flags.Output, result.Source)
}
