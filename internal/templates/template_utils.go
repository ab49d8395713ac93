package templates

import (
	"strings"

	"github.com/pawel-sp/Catchable/internal/models"
)

// FormatParameter renders one parameter of a method signature. The three
// source forms round-trip: a positional parameter prints as `_ name: T`, a
// shared label collapses to `name: T`, and distinct label and binding name
// print as `label name: T`.
func FormatParameter(param models.Parameter) string {
	switch {
	case !param.Labeled():
		return "_ " + param.Name + ": " + param.Type
	case param.Label == param.Name:
		return param.Name + ": " + param.Type
	default:
		return param.Label + " " + param.Name + ": " + param.Type
	}
}

// FormatParameterList renders the parenthesized-interior parameter list of a
// method signature, in declared order
func FormatParameterList(params []models.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, FormatParameter(param))
	}
	return strings.Join(parts, ", ")
}

// FormatArgumentList renders the forwarded call arguments: `label: name` for
// labeled parameters, the bare binding name positionally, declared order, no
// trailing comma
func FormatArgumentList(params []models.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		if param.Labeled() {
			parts = append(parts, param.Label+": "+param.Name)
		} else {
			parts = append(parts, param.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatMethodSignature renders the full member signature line without its
// leading indentation or opening brace
func FormatMethodSignature(method models.MethodMember, visibility models.Visibility) string {
	var b strings.Builder
	b.WriteString(visibility.Modifier())
	b.WriteString("func ")
	b.WriteString(method.Name)
	b.WriteString("(")
	b.WriteString(FormatParameterList(method.Parameters))
	b.WriteString(")")
	if method.Async {
		b.WriteString(" async")
	}
	if method.Throws {
		b.WriteString(" throws")
	}
	if method.Returns() {
		b.WriteString(" -> ")
		b.WriteString(method.ReturnType)
	}
	return b.String()
}

// FormatCallExpression renders the forwarded call on the wrapped instance,
// prefixed with try/await as the effect set requires
func FormatCallExpression(method models.MethodMember) string {
	var b strings.Builder
	if method.Throws {
		b.WriteString("try ")
	}
	if method.Async {
		b.WriteString("await ")
	}
	b.WriteString("wrapped.")
	b.WriteString(method.Name)
	b.WriteString("(")
	b.WriteString(FormatArgumentList(method.Parameters))
	b.WriteString(")")
	return b.String()
}
