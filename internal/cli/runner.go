package cli

import (
	"io"
	"os"

	"github.com/pawel-sp/Catchable/internal/errors"
	"github.com/pawel-sp/Catchable/internal/generator"
	"github.com/pawel-sp/Catchable/internal/models"
	"github.com/pawel-sp/Catchable/internal/parser"
	"github.com/pawel-sp/Catchable/internal/utils"
)

// Runner drives one generation run: read the description, parse it with the
// configured frontend, validate every declaration, emit the wrapper file and
// write it out. Any failure before emission aborts the run with no partial
// output.
type Runner struct {
	config      Config
	diagnostics *utils.DiagnosticSystem
	builder     *parser.Builder
	emitter     *generator.Emitter
	writer      *OutputWriter

	// Stdin and Stdout are swappable for in-process tests
	Stdin  io.Reader
	Stdout io.Writer
}

// NewRunner creates a runner for the given configuration
func NewRunner(config Config) *Runner {
	return NewRunnerWithDiagnostics(config, diagnosticsFor(config))
}

// NewRunnerWithDiagnostics creates a runner with an explicit diagnostic system
func NewRunnerWithDiagnostics(config Config, diagnostics *utils.DiagnosticSystem) *Runner {
	return &Runner{
		config:      config,
		diagnostics: diagnostics,
		builder:     parser.NewBuilder(),
		emitter:     generator.NewEmitter(),
		writer:      NewOutputWriter(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	}
}

func diagnosticsFor(config Config) *utils.DiagnosticSystem {
	if config.Quiet {
		return utils.NewQuietDiagnostics()
	}
	if config.Verbose {
		return utils.NewVerboseDiagnostics()
	}
	return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
}

// Summary describes a completed run
type Summary struct {
	DeclarationsProcessed int
	WrappersEmitted       int
	OutputPath            string // empty when the result went to stdout
	CheckOnly             bool
}

// Run executes the pipeline and returns a summary of what was produced
func (r *Runner) Run() (Summary, error) {
	source, inputName, err := r.readInput()
	if err != nil {
		return Summary{}, err
	}
	r.diagnostics.Verbose("read %d bytes from %s", len(source), inputName)

	raws, err := r.parse(inputName, source)
	if err != nil {
		return Summary{}, err
	}
	r.diagnostics.Verbose("parsed %d declaration(s)", len(raws))

	descriptions, err := r.builder.BuildAll(raws)
	if err != nil {
		return Summary{}, err
	}
	for _, desc := range descriptions {
		r.diagnostics.Verbose("validated %s (%d member(s))", desc.Name, len(desc.Members))
	}

	summary := Summary{
		DeclarationsProcessed: len(descriptions),
		CheckOnly:             r.config.CheckOnly,
	}
	if r.config.CheckOnly {
		return summary, nil
	}

	file := r.emitter.EmitFile(descriptions)
	file.Path = r.config.OutputPath
	summary.WrappersEmitted = len(file.Sources)

	if r.config.OutputPath == "" {
		if _, err := io.WriteString(r.Stdout, file.Content); err != nil {
			return Summary{}, errors.WrapFileSystemError("write", "stdout", err)
		}
		return summary, nil
	}

	if err := r.writer.Write(r.config.OutputPath, file.Content); err != nil {
		return Summary{}, err
	}
	r.diagnostics.Progress("wrote %s", r.config.OutputPath)
	summary.OutputPath = r.config.OutputPath
	return summary, nil
}

// readInput loads the description source from the configured path or stdin
func (r *Runner) readInput() ([]byte, string, error) {
	if r.config.InputPath == "" || r.config.InputPath == "-" {
		source, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, "", errors.WrapFileSystemError("read", "stdin", err)
		}
		return source, "<stdin>", nil
	}

	source, err := os.ReadFile(r.config.InputPath)
	if err != nil {
		return nil, "", errors.WrapFileSystemError("read", r.config.InputPath, err)
	}
	return source, r.config.InputPath, nil
}

// parse dispatches to the configured frontend. Both produce the same raw
// declaration layer, so everything after this point is frontend-agnostic.
func (r *Runner) parse(inputName string, source []byte) ([]*parser.RawDeclaration, error) {
	switch r.config.Format {
	case FormatJSON:
		return parser.NewJSONParser().Parse(inputName, source)
	default:
		return parser.NewDSLParser().Parse(inputName, source)
	}
}

// Descriptions parses and validates without emitting, for callers that want
// the model itself
func (r *Runner) Descriptions() ([]*models.InterfaceDescription, error) {
	source, inputName, err := r.readInput()
	if err != nil {
		return nil, err
	}
	raws, err := r.parse(inputName, source)
	if err != nil {
		return nil, err
	}
	return r.builder.BuildAll(raws)
}
