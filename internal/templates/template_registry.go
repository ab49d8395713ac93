package templates

import (
	"github.com/pawel-sp/Catchable/internal/errors"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerHeaderTemplates()
	registry.registerWrapperTemplates()
	registry.registerPropertyTemplates()
	registry.registerFactoryTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Render executes a registry template with the given data. The registry is
// static and every data shape is fixed at compile time, so a render failure
// is a programming error and emission keeps its no-failure-path contract by
// panicking instead of returning an error.
func (tr *TemplateRegistry) Render(name string, data interface{}) string {
	rendered, err := executeTemplate(name, tr.MustGet(name), data)
	if err != nil {
		panic(errors.WrapTemplateError(name, "execute", err))
	}
	return rendered
}

// registerHeaderTemplates registers generated-file header templates
func (tr *TemplateRegistry) registerHeaderTemplates() {
	tr.templates["file-header"] = `// Code generated by catchable. DO NOT EDIT.
// Forwarding wrappers that translate failures through a user-supplied function.`
}

// registerWrapperTemplates registers the forwarding type scaffold: the class
// declaration, its two stored fields and the verbatim two-argument
// initializer. Member bodies are composed by the emitter and appended after
// this scaffold.
func (tr *TemplateRegistry) registerWrapperTemplates() {
	tr.templates["wrapper-class"] = `{{range .Attributes}}{{.}}
{{end}}{{.Modifier}}final class {{.WrapperName}}: {{.InterfaceName}} {
	private let wrapped: any {{.InterfaceName}}
	private let catchError: (Error) -> Error

	{{.Modifier}}init(wrapped: any {{.InterfaceName}}, catchError: @escaping (Error) -> Error) {
		self.wrapped = wrapped
		self.catchError = catchError
	}`
}

// registerPropertyTemplates registers the read-only property accessors.
// Properties never participate in failure translation, so neither form has a
// capture region; the async form reproduces the suspension point of the
// wrapped getter.
func (tr *TemplateRegistry) registerPropertyTemplates() {
	tr.templates["property-getter"] = `	{{.Modifier}}var {{.Name}}: {{.Type}} {
		return wrapped.{{.Name}}
	}`

	tr.templates["property-getter-async"] = `	{{.Modifier}}var {{.Name}}: {{.Type}} {
		get async {
			return await wrapped.{{.Name}}
		}
	}`
}

// registerFactoryTemplates registers the catchable factory extension on the
// wrapped interface
func (tr *TemplateRegistry) registerFactoryTemplates() {
	tr.templates["factory-extension"] = `extension {{.InterfaceName}} {
	{{.Modifier}}func catchable(errorProcessor: @escaping (Error) -> Error) -> any {{.InterfaceName}} {
		return {{.WrapperName}}(wrapped: self, catchError: errorProcessor)
	}
}`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
