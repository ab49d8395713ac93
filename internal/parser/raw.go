package parser

import (
	"github.com/pawel-sp/Catchable/internal/errors"
)

// RawDeclaration is the frontend-neutral form of a parsed declaration. Both
// the DSL grammar and the JSON frontend produce it; the Builder consumes it.
// Nothing in a RawDeclaration has been validated yet.
type RawDeclaration struct {
	Keyword    string                `json:"keyword"`              // declaration kind, e.g. "protocol"
	Name       string                `json:"name"`                 // declared name
	Visibility string                `json:"visibility,omitempty"` // declared modifier, empty when absent
	Attributes []string              `json:"attributes,omitempty"` // declaration-level tags, verbatim
	Inherits   []string              `json:"inherits,omitempty"`   // inheritance clause names
	Members    []RawMember           `json:"members"`              // declared order
	Location   errors.SourceLocation `json:"-"`
}

// RawMember is a single unvalidated member. Kind discriminates which fields
// are meaningful: properties use Type and Accessors, methods use Parameters,
// Effects, ReturnType and Attributes, init requirements use Parameters only.
type RawMember struct {
	Kind       string                `json:"kind"`
	Name       string                `json:"name,omitempty"`
	Type       string                `json:"type,omitempty"`
	Accessors  []RawAccessor         `json:"accessors,omitempty"`
	Parameters []RawParameter        `json:"parameters,omitempty"`
	Effects    []string              `json:"effects,omitempty"`
	ReturnType string                `json:"returnType,omitempty"`
	Attributes []string              `json:"attributes,omitempty"`
	Location   errors.SourceLocation `json:"-"`
}

// RawAccessor is a property accessor requirement
type RawAccessor struct {
	Kind  string `json:"kind"`
	Async bool   `json:"async,omitempty"`
}

// RawParameter is an unvalidated method parameter. An empty or "_" label
// means the call site is positional; an empty name falls back to the label
// or to a synthesized binding name.
type RawParameter struct {
	Label string `json:"label,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
}

// RejectDuplicateMembers enforces the unique-member-name invariant at the
// frontend. Overload resolution is out of scope, so a repeated name is a
// syntax-level diagnostic rather than one of the model validation errors.
// Init requirements are skipped: they are not forwardable members and the
// Builder rejects them on its own.
func RejectDuplicateMembers(decl *RawDeclaration) error {
	seen := make(map[string]bool, len(decl.Members))
	for _, member := range decl.Members {
		if member.Kind == MemberKindInit {
			continue
		}
		if seen[member.Name] {
			return errors.NewSyntaxErrorf("duplicate member '%s' in declaration '%s': overloaded names are not supported", member.Name, decl.Name).
				WithLocation(member.Location)
		}
		seen[member.Name] = true
	}
	return nil
}

// HasSetter reports whether any accessor is a set accessor
func (m RawMember) HasSetter() bool {
	for _, a := range m.Accessors {
		if a.Kind == AccessorSet {
			return true
		}
	}
	return false
}

// AsyncGetter reports whether the get accessor is suspend-capable
func (m RawMember) AsyncGetter() bool {
	for _, a := range m.Accessors {
		if a.Kind == AccessorGet && a.Async {
			return true
		}
	}
	return false
}

// HasEffect reports whether the member declares the named effect
func (m RawMember) HasEffect(effect string) bool {
	for _, e := range m.Effects {
		if e == effect {
			return true
		}
	}
	return false
}
