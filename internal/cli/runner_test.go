package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawel-sp/Catchable/internal/errors"
	"github.com/pawel-sp/Catchable/internal/utils"
)

const gatewayDSL = `public protocol Gateway {
	func pay(amount: Int) throws -> Receipt
}`

func newTestRunner(config Config) (*Runner, *bytes.Buffer) {
	runner := NewRunnerWithDiagnostics(config, utils.NewQuietDiagnostics())
	stdout := &bytes.Buffer{}
	runner.Stdout = stdout
	return runner, stdout
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunnerEmitsToStdout(t *testing.T) {
	input := writeInput(t, "gateway.protocol", gatewayDSL)
	runner, stdout := newTestRunner(Config{InputPath: input, Format: FormatDSL})

	summary, err := runner.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.DeclarationsProcessed)
	assert.Equal(t, 1, summary.WrappersEmitted)
	assert.Empty(t, summary.OutputPath)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "// Code generated by catchable. DO NOT EDIT."))
	assert.Contains(t, out, "public final class CatchableGateway: Gateway {")
	assert.Contains(t, out, "throw catchError(error)")
}

func TestRunnerWritesOutputFile(t *testing.T) {
	input := writeInput(t, "gateway.protocol", gatewayDSL)
	output := filepath.Join(t.TempDir(), "generated", "Gateway+Catchable.swift")
	runner, stdout := newTestRunner(Config{InputPath: input, OutputPath: output, Format: FormatDSL})

	summary, err := runner.Run()
	require.NoError(t, err)
	assert.Equal(t, output, summary.OutputPath)
	assert.Empty(t, stdout.String())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CatchableGateway")

	// No temp files left behind by the atomic write.
	entries, err := os.ReadDir(filepath.Dir(output))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRunnerReadsStdin(t *testing.T) {
	runner, stdout := newTestRunner(Config{InputPath: "-", Format: FormatDSL})
	runner.Stdin = strings.NewReader(gatewayDSL)

	_, err := runner.Run()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "CatchableGateway")
}

func TestRunnerJSONFormat(t *testing.T) {
	input := writeInput(t, "gateway.json", `{
		"keyword": "protocol",
		"name": "Gateway",
		"members": [{"kind": "method", "name": "pay", "effects": ["throws"]}]
	}`)
	runner, stdout := newTestRunner(Config{InputPath: input, Format: FormatJSON})

	_, err := runner.Run()
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "func pay() throws {")
}

func TestRunnerCheckOnlyEmitsNothing(t *testing.T) {
	input := writeInput(t, "gateway.protocol", gatewayDSL)
	runner, stdout := newTestRunner(Config{InputPath: input, Format: FormatDSL, CheckOnly: true})

	summary, err := runner.Run()
	require.NoError(t, err)
	assert.True(t, summary.CheckOnly)
	assert.Equal(t, 1, summary.DeclarationsProcessed)
	assert.Zero(t, summary.WrappersEmitted)
	assert.Empty(t, stdout.String())
}

func TestRunnerValidationFailureProducesNoOutput(t *testing.T) {
	input := writeInput(t, "counter.protocol", `protocol Counter {
	var count: Int { get set }
}`)
	output := filepath.Join(t.TempDir(), "out.swift")
	runner, stdout := newTestRunner(Config{InputPath: input, OutputPath: output, Format: FormatDSL})

	_, err := runner.Run()
	require.Error(t, err)
	assert.Equal(t, errors.SetterNotAllowedCode, errors.CodeOf(err))
	assert.Empty(t, stdout.String())

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no partial output may be written")
}

func TestRunnerFailureInLaterDeclarationAbortsWholeRun(t *testing.T) {
	input := writeInput(t, "mixed.protocol", `protocol Fine {
	func ok()
}

struct Broken {
}`)
	runner, stdout := newTestRunner(Config{InputPath: input, Format: FormatDSL})

	_, err := runner.Run()
	require.Error(t, err)
	assert.Equal(t, errors.NotAnInterfaceCode, errors.CodeOf(err))
	assert.Empty(t, stdout.String(), "a later failure must suppress all output")
}

func TestRunnerMissingInputFile(t *testing.T) {
	runner, _ := newTestRunner(Config{InputPath: filepath.Join(t.TempDir(), "absent.protocol"), Format: FormatDSL})

	_, err := runner.Run()
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestRunnerDescriptions(t *testing.T) {
	input := writeInput(t, "gateway.protocol", gatewayDSL)
	runner, _ := newTestRunner(Config{InputPath: input, Format: FormatDSL})

	descs, err := runner.Descriptions()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "Gateway", descs[0].Name)
}

func TestParseInputFormat(t *testing.T) {
	format, err := ParseInputFormat("dsl")
	require.NoError(t, err)
	assert.Equal(t, FormatDSL, format)

	format, err = ParseInputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseInputFormat("yaml")
	assert.Error(t, err)
}
