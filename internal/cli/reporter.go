package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pawel-sp/Catchable/internal/errors"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporterTo creates a reporter writing to an explicit stream
func NewDiagnosticReporterTo(verbose bool, out io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Wrapper Generation Failed\n")
	fmt.Fprintf(r.out, "================================\n\n")

	if genErr, ok := findGeneratorError(err); ok {
		r.reportGeneratorError(genErr)
	} else {
		r.reportBasicError(err)
	}

	fmt.Fprintf(r.out, "\n")
}

// reportGeneratorError reports a generator error with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr errors.CatchableError) {
	r.printErrorHeader(genErr.ErrorCode())

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Error())

	if r.verbose && genErr.Unwrap() != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", genErr.Unwrap().Error())
	}

	if loc := genErr.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if validation, ok := errors.AsValidation(genErr); ok {
		fmt.Fprintf(r.out, "Declaration: %s\n", validation.Declaration)
		if validation.Member != "" {
			fmt.Fprintf(r.out, "Member: %s\n", validation.Member)
		}
		fmt.Fprintf(r.out, "\n")
	}

	if context := genErr.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := genErr.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	r.printAdditionalHelp(genErr.ErrorCode())

	if r.verbose {
		r.printVerboseDebuggingInfo(genErr)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	r.printErrorHeader(errors.UnknownErrorCode)
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
}

// printErrorHeader prints a formatted error header based on the error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var codeStr string

	switch code {
	case errors.SyntaxErrorCode:
		codeStr = "Description Syntax Error"
	case errors.NotAnInterfaceCode:
		codeStr = "Validation Error: NotAnInterface"
	case errors.CustomInitNotAllowedCode:
		codeStr = "Validation Error: CustomInitNotAllowed"
	case errors.SetterNotAllowedCode:
		codeStr = "Validation Error: SetterNotAllowed"
	case errors.TemplateErrorCode:
		codeStr = "Template Error"
	case errors.FileSystemErrorCode:
		codeStr = "File System Error"
	default:
		codeStr = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", codeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(codeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")
	for key, value := range context {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), value)
	}
	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case context keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

// printAdditionalHelp prints additional help based on the error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.NotAnInterfaceCode:
		fmt.Fprintf(r.out, "Wrappable Declaration Requirements:\n")
		fmt.Fprintf(r.out, "  - Only protocol declarations can be wrapped\n")
		fmt.Fprintf(r.out, "  - struct, class, enum and actor declarations have no capability contract to forward\n\n")

	case errors.CustomInitNotAllowedCode:
		fmt.Fprintf(r.out, "Initializer Requirements:\n")
		fmt.Fprintf(r.out, "  - A forwarding wrapper holds an existing instance and cannot honor constructor contracts\n")
		fmt.Fprintf(r.out, "  - Construct instances before wrapping them with catchable(errorProcessor:)\n\n")

	case errors.SetterNotAllowedCode:
		fmt.Fprintf(r.out, "Property Requirements:\n")
		fmt.Fprintf(r.out, "  - Properties must be read-only: { get } or { get async }\n")
		fmt.Fprintf(r.out, "  - Forwarding a setter through failure translation has no sound semantics\n\n")

	case errors.SyntaxErrorCode:
		fmt.Fprintf(r.out, "Description Syntax Help:\n")
		fmt.Fprintf(r.out, "  - Check the description against the documented grammar\n")
		fmt.Fprintf(r.out, "  - Member names must be unique within a declaration\n\n")
	}

	fmt.Fprintf(r.out, "For more help:\n")
	fmt.Fprintf(r.out, "  - Run with -verbose for more detailed output\n")
	fmt.Fprintf(r.out, "  - Review the description files in the examples/ directory\n")
}

// findGeneratorError searches the error chain for a rich generator error
func findGeneratorError(err error) (errors.CatchableError, bool) {
	for err != nil {
		if genErr, ok := err.(errors.CatchableError); ok {
			return genErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// printVerboseDebuggingInfo prints additional debugging information in verbose mode
func (r *DiagnosticReporter) printVerboseDebuggingInfo(genErr errors.CatchableError) {
	fmt.Fprintf(r.out, "Verbose Debug Information:\n")
	fmt.Fprintf(r.out, "  Error Code: %d (%s)\n", int(genErr.ErrorCode()), genErr.ErrorCode())

	if cause := genErr.Unwrap(); cause != nil {
		fmt.Fprintf(r.out, "  Error Chain:\n")
		level := 1
		for err := cause; err != nil; {
			fmt.Fprintf(r.out, "    %d. %s\n", level, err.Error())
			unwrapper, ok := err.(interface{ Unwrap() error })
			if !ok {
				break
			}
			err = unwrapper.Unwrap()
			level++
		}
	}

	fmt.Fprintf(r.out, "\n")
}

// ReportSuccess reports a completed run with summary information
func (r *DiagnosticReporter) ReportSuccess(summary Summary) {
	if summary.CheckOnly {
		fmt.Fprintf(r.out, "Validated %d declaration(s), nothing emitted\n", summary.DeclarationsProcessed)
		return
	}

	fmt.Fprintf(r.out, "Emitted %d wrapper(s) from %d declaration(s)\n", summary.WrappersEmitted, summary.DeclarationsProcessed)
}
