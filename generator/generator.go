package generator

import (
	"bytes"
	"fmt"
	"go/token"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/erraggy/casetools/caseconv"
	"github.com/erraggy/casetools/caseerrors"
)

// Constant describes one generated constant declaration.
type Constant struct {
	// Name is the Go identifier of the constant
	Name string
	// Value is the dot.case string value of the constant
	Value string
	// Raw is the original input name
	Raw string
}

// Issue describes an input name that did not produce a constant.
type Issue struct {
	// Name is the original input name
	Name string
	// Message describes why the name was rejected
	Message string
}

// GenerateResult contains the generated source and its manifest.
type GenerateResult struct {
	// Source is the formatted Go source file
	Source []byte
	// Constants lists the declarations in Source, in input order
	Constants []Constant
	// Issues lists input names that were rejected, in input order
	Issues []Issue
}

// config holds the assembled generation settings.
type config struct {
	names       []string
	packageName string
	prefix      string
	exported    bool
}

// Option configures constant generation.
type Option func(*config)

// WithNames sets the raw names to generate constants from.
func WithNames(names ...string) Option {
	return func(c *config) {
		c.names = append(c.names, names...)
	}
}

// WithPackageName sets the package name of the generated file (required).
func WithPackageName(name string) Option {
	return func(c *config) {
		c.packageName = name
	}
}

// WithConstPrefix prepends a prefix to every generated identifier.
func WithConstPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithExported uppercases the first letter of each identifier so the
// generated constants are exported.
func WithExported(exported bool) Option {
	return func(c *config) {
		c.exported = exported
	}
}

// fileTemplate renders the generated constants file. The output is passed
// through goimports-equivalent formatting afterwards, so spacing here only
// needs to be syntactically valid.
var fileTemplate = template.Must(template.New("constants").Parse(`// Code generated by casetools. DO NOT EDIT.

package {{.Package}}

const (
{{- range .Constants}}
	// {{.Name}} is the config key for {{printf "%q" .Raw}}.
	{{.Name}} = {{printf "%q" .Value}}
{{- end}}
)
`))

// Generate produces a Go source file declaring one string constant per input
// name. Identifiers are the camelCase conversion of the name (digit
// expansion keeps them from starting with a numeral); values are the
// dot.case conversion.
//
// Names that fail conversion validation, whose identifier is not a valid Go
// identifier (for example a Go keyword), or whose identifier collides with
// an earlier one, are reported in GenerateResult.Issues rather than failing
// the whole generation. Generation fails only when no name survives or the
// configuration itself is invalid.
func Generate(opts ...Option) (*GenerateResult, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.packageName == "" {
		return nil, &caseerrors.ConfigError{
			Option:  "package",
			Message: "package name is required",
		}
	}
	if len(cfg.names) == 0 {
		return nil, &caseerrors.ConfigError{
			Option:  "names",
			Message: "at least one name is required",
		}
	}

	result := &GenerateResult{}
	seen := make(map[string]bool, len(cfg.names))
	for _, raw := range cfg.names {
		c, err := buildConstant(raw, &cfg)
		if err != nil {
			result.Issues = append(result.Issues, Issue{Name: raw, Message: err.Error()})
			continue
		}
		if seen[c.Name] {
			result.Issues = append(result.Issues, Issue{
				Name:    raw,
				Message: fmt.Sprintf("identifier %s collides with an earlier name", c.Name),
			})
			continue
		}
		seen[c.Name] = true
		result.Constants = append(result.Constants, c)
	}

	if len(result.Constants) == 0 {
		return nil, &caseerrors.ConfigError{
			Option:  "names",
			Message: "no valid constants could be generated",
			Cause:   fmt.Errorf("%d name(s) rejected", len(result.Issues)),
		}
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, map[string]any{
		"Package":   cfg.packageName,
		"Constants": result.Constants,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering constants file: %w", err)
	}

	// Format and fix imports so the generated file is immediately
	// compilable, the same guarantee gofmt'd hand-written code gives.
	formatted, err := imports.Process(cfg.packageName+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	result.Source = formatted
	return result, nil
}

// buildConstant converts one raw name into a constant declaration.
func buildConstant(raw string, cfg *config) (Constant, error) {
	ident, err := caseconv.ToCamelCaseString(raw)
	if err != nil {
		return Constant{}, err
	}
	value, err := caseconv.ToDotCaseString(raw)
	if err != nil {
		return Constant{}, err
	}

	if cfg.exported {
		ident = exportIdent(ident)
	}
	ident = cfg.prefix + ident

	// Conversion can land on a Go keyword ("type", "range"), and a
	// user-supplied prefix can break the identifier outright.
	if !token.IsIdentifier(ident) {
		return Constant{}, fmt.Errorf("identifier %s is not a valid Go identifier", ident)
	}

	return Constant{Name: ident, Value: value, Raw: raw}, nil
}

// exportIdent uppercases the first byte of a camelCase identifier.
// Conversion output is ASCII-only, so byte arithmetic is safe here.
func exportIdent(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-32) + s[1:]
}
