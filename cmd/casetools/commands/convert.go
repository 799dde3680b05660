package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/internal/cliutil"
)

// ConvertFlags contains flags for the camel and dot commands
type ConvertFlags struct {
	Format string
}

// conversionRecord is one input/output pair for structured output.
type conversionRecord struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Words  int    `json:"words" yaml:"words"`
}

// SetupConvertFlags creates and configures a FlagSet for the camel or dot command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags(style caseconv.Style) (*flag.FlagSet, *ConvertFlags) {
	name := string(style)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casetools %s [flags] <text>... | -\n\n", name)
		switch style {
		case caseconv.StyleCamel:
			cliutil.Writef(fs.Output(), "Convert text to camelCase. Digits are expanded to English words.\n\n")
		default:
			cliutil.Writef(fs.Output(), "Convert text to dot.case. Word casing is preserved.\n\n")
		}
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casetools %s hello-world\n", name)
		cliutil.Writef(fs.Output(), "  casetools %s -f json \"hello world\" \"foo_bar\"\n", name)
		cliutil.Writef(fs.Output(), "  cat names.txt | casetools %s -\n", name)
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the only argument to read one input per line from stdin\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid input or flags\n")
	}

	return fs, flags
}

// HandleCamel executes the camel command
func HandleCamel(args []string) error {
	return handleConvert(caseconv.StyleCamel, args)
}

// HandleDot executes the dot command
func HandleDot(args []string) error {
	return handleConvert(caseconv.StyleDot, args)
}

func handleConvert(style caseconv.Style, args []string) error {
	fs, flags := SetupConvertFlags(style)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one text argument, or '-' for stdin", style)
	}

	inputs := fs.Args()
	if len(inputs) == 1 && inputs[0] == StdinFilePath {
		var err error
		inputs, err = readLines(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	records, err := convertInputs(inputs, style)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		for _, r := range records {
			cliutil.Writeln(os.Stdout, r.Output)
		}
		return nil
	}
	return OutputStructured(records, flags.Format)
}

// convertInputs converts each input to the given style, failing on the first
// invalid input. No partial results are returned.
func convertInputs(inputs []string, style caseconv.Style) ([]conversionRecord, error) {
	records := make([]conversionRecord, 0, len(inputs))
	for _, input := range inputs {
		result, err := caseconv.ConvertDetailed(input, style)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", input, err)
		}
		records = append(records, conversionRecord{
			Input:  input,
			Output: result.Output,
			Words:  len(result.Words),
		})
	}
	return records, nil
}

// readLines reads one input per line, skipping blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
