package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/pawel-sp/Catchable/internal/errors"
)

// DSLParser parses protocol-shaped description source into raw declarations.
// The grammar accepts concrete-type keywords, init requirements and set
// accessors so that the Builder, not the lexer, reports the corresponding
// validation errors.
type DSLParser struct {
	grammar *participle.Parser[File]
}

// NewDSLParser creates a parser for the description DSL
func NewDSLParser() *DSLParser {
	return &DSLParser{
		grammar: buildGrammar(),
	}
}

// Parse parses description source into raw declarations in source order.
// The filename is used for diagnostic locations only.
func (p *DSLParser) Parse(filename string, source []byte) ([]*RawDeclaration, error) {
	file, err := p.grammar.ParseBytes(filename, source)
	if err != nil {
		return nil, wrapGrammarError(filename, err)
	}

	declarations := make([]*RawDeclaration, 0, len(file.Declarations))
	for _, decl := range file.Declarations {
		raw, err := p.lowerDeclaration(filename, decl)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, raw)
	}

	return declarations, nil
}

// lowerDeclaration converts one grammar declaration into its raw form
func (p *DSLParser) lowerDeclaration(filename string, decl *Declaration) (*RawDeclaration, error) {
	raw := &RawDeclaration{
		Keyword:    decl.Keyword,
		Name:       decl.Name,
		Visibility: decl.Visibility,
		Attributes: decl.Attributes,
		Inherits:   decl.Inherits,
		Location:   locationOf(filename, decl.Pos),
	}

	for _, member := range decl.Members {
		switch {
		case member.Property != nil:
			raw.Members = append(raw.Members, lowerProperty(filename, member.Property))
		case member.Method != nil:
			raw.Members = append(raw.Members, lowerMethod(filename, member.Method))
		case member.Init != nil:
			raw.Members = append(raw.Members, lowerInit(filename, member.Init))
		}
	}

	if err := RejectDuplicateMembers(raw); err != nil {
		return nil, err
	}

	return raw, nil
}

func lowerProperty(filename string, prop *PropertyDecl) RawMember {
	member := RawMember{
		Kind:     MemberKindProperty,
		Name:     prop.Name,
		Type:     prop.Type.String(),
		Location: locationOf(filename, prop.Pos),
	}
	for _, accessor := range prop.Accessors {
		member.Accessors = append(member.Accessors, RawAccessor{
			Kind:  accessor.Kind,
			Async: accessor.Async,
		})
	}
	return member
}

func lowerMethod(filename string, method *MethodDecl) RawMember {
	member := RawMember{
		Kind:       MemberKindMethod,
		Name:       method.Name,
		Attributes: method.Attributes,
		Location:   locationOf(filename, method.Pos),
	}
	for _, param := range method.Params {
		member.Parameters = append(member.Parameters, lowerParameter(param))
	}
	if method.Async {
		member.Effects = append(member.Effects, EffectAsync)
	}
	if method.Throws {
		member.Effects = append(member.Effects, EffectThrows)
	}
	if method.Return != nil {
		member.ReturnType = method.Return.String()
	}
	return member
}

func lowerInit(filename string, init *InitDecl) RawMember {
	member := RawMember{
		Kind:     MemberKindInit,
		Name:     "init",
		Location: locationOf(filename, init.Pos),
	}
	for _, param := range init.Params {
		member.Parameters = append(member.Parameters, lowerParameter(param))
	}
	return member
}

// lowerParameter maps the two-identifier parameter forms onto label and
// binding name: `name: T` shares one identifier, `label name: T` splits
// them, `_ name: T` declares a positional parameter. A lone `_` is a
// positional parameter with no binding name; the Builder synthesizes one.
func lowerParameter(param *ParamDecl) RawParameter {
	raw := RawParameter{Type: param.Type.String()}
	if param.Second == nil {
		if param.First != PositionalLabel {
			raw.Label = param.First
			raw.Name = param.First
		}
		return raw
	}
	if param.First != PositionalLabel {
		raw.Label = param.First
	}
	raw.Name = *param.Second
	return raw
}

// wrapGrammarError converts a participle error into the syntax error type
// used across the generator, keeping the source position
func wrapGrammarError(filename string, err error) error {
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		return errors.NewSyntaxErrorf("invalid description syntax: %s", perr.Message()).
			WithLocation(errors.SourceLocation{
				File:   filename,
				Line:   pos.Line,
				Column: pos.Column,
			})
	}
	return errors.WrapParseError("description", err).
		WithLocation(errors.SourceLocation{File: filename})
}

func locationOf(filename string, pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{
		File:   filename,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
