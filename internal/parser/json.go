package parser

import (
	"bytes"
	"encoding/json"

	"github.com/pawel-sp/Catchable/internal/errors"
)

// JSONParser decodes the JSON encoding of interface descriptions. A document
// is either a single declaration object or an array of them; both decode into
// the same raw layer the DSL frontend produces.
type JSONParser struct{}

// NewJSONParser creates a parser for JSON-encoded descriptions
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON description source into raw declarations in document
// order. The filename is used for diagnostic locations only.
func (p *JSONParser) Parse(filename string, source []byte) ([]*RawDeclaration, error) {
	trimmed := bytes.TrimSpace(source)
	if len(trimmed) == 0 {
		return nil, errors.NewSyntaxError("empty description document").
			WithLocation(errors.SourceLocation{File: filename})
	}

	var declarations []*RawDeclaration
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &declarations); err != nil {
			return nil, errors.WrapParseError("JSON description", err).
				WithLocation(errors.SourceLocation{File: filename})
		}
	} else {
		var declaration RawDeclaration
		if err := json.Unmarshal(trimmed, &declaration); err != nil {
			return nil, errors.WrapParseError("JSON description", err).
				WithLocation(errors.SourceLocation{File: filename})
		}
		declarations = []*RawDeclaration{&declaration}
	}

	for _, decl := range declarations {
		if decl == nil {
			return nil, errors.NewSyntaxError("null declaration in description array").
				WithLocation(errors.SourceLocation{File: filename})
		}
		decl.Location = errors.SourceLocation{File: filename}
		for i := range decl.Members {
			decl.Members[i].Location = decl.Location
		}
		if err := p.checkDeclaration(decl); err != nil {
			return nil, err
		}
	}

	return declarations, nil
}

// checkDeclaration enforces the structural constraints the DSL grammar gives
// for free: required fields present, accessor and effect names drawn from the
// known sets, member names unique
func (p *JSONParser) checkDeclaration(decl *RawDeclaration) error {
	if decl.Keyword == "" {
		return errors.NewSyntaxErrorf("declaration '%s' is missing its keyword", decl.Name).
			WithLocation(decl.Location)
	}
	if decl.Name == "" {
		return errors.NewSyntaxError("declaration is missing its name").
			WithLocation(decl.Location)
	}

	for _, member := range decl.Members {
		if err := p.checkMember(decl.Name, member); err != nil {
			return err
		}
	}

	return RejectDuplicateMembers(decl)
}

func (p *JSONParser) checkMember(declaration string, member RawMember) error {
	switch member.Kind {
	case MemberKindProperty:
		if member.Name == "" || member.Type == "" {
			return errors.NewSyntaxErrorf("property member in '%s' requires both name and type", declaration).
				WithLocation(member.Location)
		}
		for _, accessor := range member.Accessors {
			if accessor.Kind != AccessorGet && accessor.Kind != AccessorSet {
				return errors.NewSyntaxErrorf("property '%s' declares unknown accessor '%s'", member.Name, accessor.Kind).
					WithToken(accessor.Kind).
					WithLocation(member.Location)
			}
		}
	case MemberKindMethod:
		if member.Name == "" {
			return errors.NewSyntaxErrorf("method member in '%s' is missing its name", declaration).
				WithLocation(member.Location)
		}
		for _, effect := range member.Effects {
			if effect != EffectAsync && effect != EffectThrows {
				return errors.NewSyntaxErrorf("method '%s' declares unknown effect '%s'", member.Name, effect).
					WithToken(effect).
					WithLocation(member.Location)
			}
		}
		for _, param := range member.Parameters {
			if param.Type == "" {
				return errors.NewSyntaxErrorf("parameter of method '%s' is missing its type", member.Name).
					WithLocation(member.Location)
			}
		}
	case MemberKindInit:
		// Shape is fine as-is: the Builder reports CustomInitNotAllowed.
	default:
		return errors.NewSyntaxErrorf("member '%s' in '%s' has unknown kind '%s'", member.Name, declaration, member.Kind).
			WithToken(member.Kind).
			WithLocation(member.Location)
	}
	return nil
}
