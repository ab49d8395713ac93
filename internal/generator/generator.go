package generator

import (
	"strings"

	"github.com/pawel-sp/Catchable/internal/models"
	"github.com/pawel-sp/Catchable/internal/templates"
)

// WrapperNamePrefix is prepended to the interface name to form the name of
// the emitted forwarding type
const WrapperNamePrefix = "Catchable"

// Emitter produces forwarding wrapper source from validated interface
// descriptions. Emission is a pure transform with no failure path: a
// validated model always emits, and structurally equal models emit
// byte-identical output.
type Emitter struct{}

// NewEmitter creates a wrapper emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit produces the wrapper for one interface description: the forwarding
// type with one member per requirement, followed by the catchable factory
// extension
func (e *Emitter) Emit(desc *models.InterfaceDescription) models.WrapperSource {
	wrapperName := WrapperNamePrefix + desc.Name

	var b strings.Builder
	b.WriteString(templates.GenerateWrapperScaffold(desc, wrapperName))
	b.WriteString("\n")

	for _, member := range desc.Members {
		b.WriteString("\n")
		switch m := member.(type) {
		case models.PropertyMember:
			b.WriteString(templates.GeneratePropertyGetter(m, desc.Visibility))
		case models.MethodMember:
			b.WriteString(e.emitMethod(m, desc.Visibility))
		}
		b.WriteString("\n")
	}

	b.WriteString("}\n\n")
	b.WriteString(templates.GenerateFactoryExtension(desc, wrapperName))
	b.WriteString("\n")

	return models.WrapperSource{
		InterfaceName: desc.Name,
		WrapperName:   wrapperName,
		Content:       templates.Normalize(b.String()),
	}
}

// emitMethod builds one forwarding method. Execution-context attributes are
// copied verbatim above the signature; the body is the forwarded call, placed
// inside a do/catch capture region when the method may fail. The await
// suspension point sits inside that region, so a failure raised during
// suspension is still translated before re-signaling.
func (e *Emitter) emitMethod(method models.MethodMember, visibility models.Visibility) string {
	var b strings.Builder

	for _, attribute := range method.Attributes {
		b.WriteString("\t")
		b.WriteString(attribute)
		b.WriteString("\n")
	}

	b.WriteString("\t")
	b.WriteString(templates.FormatMethodSignature(method, visibility))
	b.WriteString(" {\n")

	call := templates.FormatCallExpression(method)
	if method.Returns() {
		call = "return " + call
	}

	if method.Throws {
		b.WriteString("\t\tdo {\n")
		b.WriteString("\t\t\t")
		b.WriteString(call)
		b.WriteString("\n")
		b.WriteString("\t\t} catch {\n")
		b.WriteString("\t\t\tthrow catchError(error)\n")
		b.WriteString("\t\t}\n")
	} else {
		b.WriteString("\t\t")
		b.WriteString(call)
		b.WriteString("\n")
	}

	b.WriteString("\t}")
	return b.String()
}

// EmitFile assembles a complete generated file: the DO NOT EDIT header plus
// every wrapper in declaration order, each separated by a blank line
func (e *Emitter) EmitFile(descs []*models.InterfaceDescription) models.GeneratedFile {
	sources := make([]models.WrapperSource, 0, len(descs))

	var b strings.Builder
	b.WriteString(templates.GenerateFileHeader())
	b.WriteString("\n")

	for _, desc := range descs {
		source := e.Emit(desc)
		sources = append(sources, source)
		b.WriteString("\n")
		b.WriteString(source.Content)
	}

	return models.GeneratedFile{
		Content: templates.Normalize(b.String()),
		Sources: sources,
	}
}
