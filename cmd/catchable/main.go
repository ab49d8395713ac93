package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pawel-sp/Catchable/internal/cli"
	"github.com/pawel-sp/Catchable/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the real entry point, extracted so tests can drive it in-process
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("catchable", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		outputFlag  = flags.String("o", "", "Write the generated file to this path (defaults to stdout)")
		formatFlag  = flags.String("format", "dsl", "Description input format: dsl or json")
		checkFlag   = flags.Bool("check", false, "Validate the description without emitting anything")
		verboseFlag = flags.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flags.Bool("quiet", false, "Only show errors and the emitted source")
		helpFlag    = flags.Bool("help", false, "Show help information")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: catchable [options] <description-file>\n\n")
		fmt.Fprintf(stderr, "Catchable Wrapper Generator\n")
		fmt.Fprintf(stderr, "Reads an interface description and emits a forwarding wrapper that translates\n")
		fmt.Fprintf(stderr, "every failure through a user-supplied function before re-signaling it.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nArguments:\n")
		fmt.Fprintf(stderr, "  description-file   Path to the interface description, or '-' for stdin\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  catchable gateway.protocol                   # Emit the wrapper to stdout\n")
		fmt.Fprintf(stderr, "  catchable -o Gateway+Catchable.swift gateway.protocol\n")
		fmt.Fprintf(stderr, "  catchable -format json gateway.json          # JSON-encoded description\n")
		fmt.Fprintf(stderr, "  catchable -check gateway.protocol            # Validate only\n")
		fmt.Fprintf(stderr, "  cat gateway.protocol | catchable -           # Read from stdin\n")
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	rest := flags.Args()
	if len(rest) != 1 {
		fmt.Fprintf(stderr, "Error: exactly one description file is required\n\n")
		flags.Usage()
		return 1
	}

	format, err := cli.ParseInputFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	config := cli.Config{
		InputPath:  rest[0],
		OutputPath: *outputFlag,
		Format:     format,
		CheckOnly:  *checkFlag,
		Verbose:    *verboseFlag,
		Quiet:      *quietFlag,
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	diagnostics.SetOutput(stderr)

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Input: %s", config.InputPath)
		if config.OutputPath != "" {
			diagnostics.List("Output: %s", config.OutputPath)
		}
		diagnostics.List("Format: %s", config.Format)
	}

	runner := cli.NewRunnerWithDiagnostics(config, diagnostics)
	runner.Stdin = stdin
	runner.Stdout = stdout

	summary, err := runner.Run()
	if err != nil {
		cli.NewDiagnosticReporterTo(*verboseFlag, stderr).ReportError(err)
		return 1
	}

	if !*quietFlag && (config.CheckOnly || config.OutputPath != "") {
		cli.NewDiagnosticReporterTo(*verboseFlag, stderr).ReportSuccess(summary)
	}
	return 0
}
