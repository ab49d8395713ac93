// Package catchable generates failure-translating forwarding wrappers from
// interface descriptions. It is the importable surface over the same pipeline
// the catchable command runs: parse a description, validate it into an
// immutable model, emit the wrapper source.
package catchable

import (
	"io"

	"github.com/pawel-sp/Catchable/internal/errors"
	"github.com/pawel-sp/Catchable/internal/generator"
	"github.com/pawel-sp/Catchable/internal/models"
	"github.com/pawel-sp/Catchable/internal/parser"
)

// Format selects the description frontend
type Format int

const (
	// FormatDSL parses the protocol-shaped description grammar
	FormatDSL Format = iota
	// FormatJSON decodes the JSON encoding of descriptions
	FormatJSON
)

// Parse parses and validates description source, returning the immutable
// models in declaration order. The name is used in diagnostics only.
func Parse(name string, source []byte, format Format) ([]*models.InterfaceDescription, error) {
	var (
		raws []*parser.RawDeclaration
		err  error
	)
	switch format {
	case FormatJSON:
		raws, err = parser.NewJSONParser().Parse(name, source)
	default:
		raws, err = parser.NewDSLParser().Parse(name, source)
	}
	if err != nil {
		return nil, err
	}
	return parser.NewBuilder().BuildAll(raws)
}

// Validate parses and validates description source without emitting anything
func Validate(name string, source []byte, format Format) error {
	_, err := Parse(name, source, format)
	return err
}

// Generate parses, validates and emits a complete generated file for the
// given description source
func Generate(name string, source []byte, format Format) (string, error) {
	descriptions, err := Parse(name, source, format)
	if err != nil {
		return "", err
	}
	return generator.NewEmitter().EmitFile(descriptions).Content, nil
}

// GenerateTo emits the generated file to w
func GenerateTo(w io.Writer, name string, source []byte, format Format) error {
	content, err := Generate(name, source, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	return err
}

// IsNotAnInterface reports whether err is the NotAnInterface validation error
func IsNotAnInterface(err error) bool {
	return errors.CodeOf(err) == errors.NotAnInterfaceCode
}

// IsCustomInitNotAllowed reports whether err is the CustomInitNotAllowed
// validation error
func IsCustomInitNotAllowed(err error) bool {
	return errors.CodeOf(err) == errors.CustomInitNotAllowedCode
}

// IsSetterNotAllowed reports whether err is the SetterNotAllowed validation
// error
func IsSetterNotAllowed(err error) bool {
	return errors.CodeOf(err) == errors.SetterNotAllowedCode
}

// IsSyntaxError reports whether err is a description syntax error
func IsSyntaxError(err error) bool {
	return errors.CodeOf(err) == errors.SyntaxErrorCode
}

// OffendingMember returns the member name a validation error points at,
// when the failure is member-level
func OffendingMember(err error) (string, bool) {
	validation, ok := errors.AsValidation(err)
	if !ok || validation.Member == "" {
		return "", false
	}
	return validation.Member, true
}
