package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/itchyny/gojq"
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	// FormatYAML outputs as YAML (default for terminal use).
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON (for piping).
	FormatJSON OutputFormat = "json"
	// FormatRaw outputs string/byte data verbatim.
	FormatRaw OutputFormat = "raw"
)

// OutputOptions configures output behavior.
type OutputOptions struct {
	// Format is the output format.
	Format OutputFormat

	// File is the output file path (empty for stdout).
	File string

	// JQ is an optional jq filter applied to the result before rendering.
	JQ string

	// Writer is an optional custom writer (overrides File).
	Writer io.Writer
}

// Output renders the result to the configured destination.
func Output(result any, opts OutputOptions) error {
	var w io.Writer = os.Stdout

	if opts.Writer != nil {
		w = opts.Writer
	} else if opts.File != "" {
		f, err := os.Create(opts.File)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if opts.JQ != "" {
		filtered, err := applyJQ(result, opts.JQ)
		if err != nil {
			return err
		}
		result = filtered
	}

	switch opts.Format {
	case FormatJSON:
		return outputJSON(w, result)
	case FormatYAML, "":
		return outputYAML(w, result)
	case FormatRaw:
		return outputRaw(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// applyJQ runs a jq expression over the JSON shape of result. A filter that
// yields a single value returns that value; multiple values come back as a
// slice.
func applyJQ(result any, expr string) (any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	// Round-trip through JSON so gojq sees plain maps and slices.
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result for jq: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("failed to decode result for jq: %w", err)
	}

	var out []any
	iter := query.Run(plain)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("jq: %w", err)
		}
		out = append(out, v)
	}

	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}

func outputJSON(w io.Writer, result any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func outputYAML(w io.Writer, result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func outputRaw(w io.Writer, result any) error {
	switch v := result.(type) {
	case []byte:
		_, err := w.Write(v)
		return err
	case string:
		_, err := io.WriteString(w, v)
		return err
	default:
		return outputYAML(w, result)
	}
}

// Terminal message styles.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f87"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf00"))
)

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// PrintInfo prints an info message.
func PrintInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...any) {
	fmt.Println(warnStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintVerbose prints to stderr when verbose is enabled.
func PrintVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintln(os.Stderr, infoStyle.Render("[verbose] "+fmt.Sprintf(format, args...)))
	}
}
