package cli

import "fmt"

// InputFormat selects the description frontend
type InputFormat string

const (
	// FormatDSL parses the protocol-shaped description grammar
	FormatDSL InputFormat = "dsl"
	// FormatJSON decodes the JSON encoding of descriptions
	FormatJSON InputFormat = "json"
)

// ParseInputFormat converts a flag value into an InputFormat
func ParseInputFormat(s string) (InputFormat, error) {
	switch InputFormat(s) {
	case FormatDSL:
		return FormatDSL, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected %q or %q)", s, FormatDSL, FormatJSON)
	}
}

// Config holds the configuration for one generator run
type Config struct {
	// InputPath is the description file to read; "-" reads standard input
	InputPath string

	// OutputPath is the file to write; empty writes to standard output
	OutputPath string

	// Format selects the description frontend
	Format InputFormat

	// CheckOnly validates the input without emitting anything
	CheckOnly bool

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet restricts output to errors and the emitted source
	Quiet bool
}
