package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pawel-sp/Catchable/internal/models"
)

// WrapperScaffoldData feeds the wrapper-class template
type WrapperScaffoldData struct {
	Attributes    []string // declaration-level tags, verbatim, one per line
	Modifier      string   // visibility prefix including trailing space, may be empty
	WrapperName   string   // name of the forwarding type
	InterfaceName string   // name of the wrapped interface
}

// PropertyData feeds the property accessor templates
type PropertyData struct {
	Modifier string
	Name     string
	Type     string
}

// FactoryData feeds the factory-extension template
type FactoryData struct {
	Modifier      string
	InterfaceName string
	WrapperName   string
}

// GenerateFileHeader renders the DO NOT EDIT header for generated files
func GenerateFileHeader() string {
	return DefaultTemplateRegistry.MustGet("file-header")
}

// GenerateWrapperScaffold renders the forwarding type declaration with its
// stored fields and initializer, left open for member bodies
func GenerateWrapperScaffold(desc *models.InterfaceDescription, wrapperName string) string {
	return DefaultTemplateRegistry.Render("wrapper-class", WrapperScaffoldData{
		Attributes:    desc.Attributes,
		Modifier:      desc.Visibility.Modifier(),
		WrapperName:   wrapperName,
		InterfaceName: desc.Name,
	})
}

// GeneratePropertyGetter renders a forwarding accessor for a read-only
// property, reproducing the suspension point when the wrapped getter has one
func GeneratePropertyGetter(property models.PropertyMember, visibility models.Visibility) string {
	data := PropertyData{
		Modifier: visibility.Modifier(),
		Name:     property.Name,
		Type:     property.ValueType,
	}
	if property.AsyncGetter {
		return DefaultTemplateRegistry.Render("property-getter-async", data)
	}
	return DefaultTemplateRegistry.Render("property-getter", data)
}

// GenerateFactoryExtension renders the catchable factory on the wrapped
// interface, visibility matching the interface's declared visibility
func GenerateFactoryExtension(desc *models.InterfaceDescription, wrapperName string) string {
	return DefaultTemplateRegistry.Render("factory-extension", FactoryData{
		Modifier:      desc.Visibility.Modifier(),
		InterfaceName: desc.Name,
		WrapperName:   wrapperName,
	})
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
