package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The description grammar covers protocol-shaped declarations: members,
// accessor blocks, effect keywords, attributes, and a small type language
// (named types with generic arguments, array/dictionary sugar, optional
// suffixes, any/some prefixes). Function and tuple types are not part of the
// grammar; the JSON frontend passes types through verbatim for anything the
// DSL cannot spell.

// descriptionLexer tokenizes interface description source
var descriptionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Attribute", Pattern: `@[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}()\[\]<>:,?!.&]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// File is the root of a parsed description: one or more declarations
type File struct {
	Pos lexer.Position

	Declarations []*Declaration `parser:"@@+"`
}

// Declaration is any type-level declaration the grammar accepts. Keywords
// other than 'protocol' are parsed so validation can report NotAnInterface
// instead of a raw lexer error.
type Declaration struct {
	Pos lexer.Position

	Attributes []string      `parser:"@Attribute*"`
	Visibility string        `parser:"@('public' | 'internal' | 'fileprivate' | 'private')?"`
	Keyword    string        `parser:"@('protocol' | 'struct' | 'class' | 'enum' | 'actor' | 'extension')"`
	Name       string        `parser:"@Ident"`
	Inherits   []string      `parser:"(':' @Ident (',' @Ident)*)?"`
	Members    []*MemberDecl `parser:"'{' @@* '}'"`
}

// MemberDecl is one member requirement inside a declaration body
type MemberDecl struct {
	Pos lexer.Position

	Property *PropertyDecl `parser:"@@"`
	Method   *MethodDecl   `parser:"| @@"`
	Init     *InitDecl     `parser:"| @@"`
}

// PropertyDecl is a property requirement with its accessor block
type PropertyDecl struct {
	Pos lexer.Position

	Name      string          `parser:"'var' @Ident"`
	Type      *TypeExpr       `parser:"':' @@"`
	Accessors []*AccessorDecl `parser:"'{' @@+ '}'"`
}

// AccessorDecl is a single accessor requirement. The grammar has no spelling
// for a throwing accessor: property reads cannot fail.
type AccessorDecl struct {
	Pos lexer.Position

	Kind  string `parser:"@('get' | 'set')"`
	Async bool   `parser:"@'async'?"`
}

// MethodDecl is a method requirement with parameters, effects and an
// optional return type
type MethodDecl struct {
	Pos lexer.Position

	Attributes []string     `parser:"@Attribute*"`
	Name       string       `parser:"'func' @Ident"`
	Params     []*ParamDecl `parser:"'(' (@@ (',' @@)*)? ')'"`
	Async      bool         `parser:"@'async'?"`
	Throws     bool         `parser:"@'throws'?"`
	Return     *TypeExpr    `parser:"('->' @@)?"`
}

// InitDecl is an initializer requirement. It parses so validation can report
// CustomInitNotAllowed on the member rather than failing the whole parse.
type InitDecl struct {
	Pos lexer.Position

	Failable string       `parser:"'init' @('?' | '!')?"`
	Params   []*ParamDecl `parser:"'(' (@@ (',' @@)*)? ')'"`
}

// ParamDecl is one parameter: `name: T`, `label name: T`, `_ name: T` or
// `_: T`
type ParamDecl struct {
	Pos lexer.Position

	First  string    `parser:"@Ident"`
	Second *string   `parser:"@Ident?"`
	Type   *TypeExpr `parser:"':' @@"`
}

// TypeExpr is a parsed type reference
type TypeExpr struct {
	Pos lexer.Position

	Prefix   string       `parser:"@('any' | 'some')?"`
	Bracket  *BracketType `parser:"( @@"`
	Named    *NamedType   `parser:"| @@ )"`
	Suffixes []string     `parser:"@('?' | '!')*"`
}

// BracketType is array `[T]` or dictionary `[K: V]` sugar
type BracketType struct {
	Key   *TypeExpr `parser:"'[' @@"`
	Value *TypeExpr `parser:"(':' @@)? ']'"`
}

// NamedType is a possibly dotted name with optional generic arguments
type NamedType struct {
	Parts []string    `parser:"@Ident ('.' @Ident)*"`
	Args  []*TypeExpr `parser:"('<' @@ (',' @@)* '>')?"`
}

// String renders the canonical source form of the type
func (t *TypeExpr) String() string {
	var b strings.Builder
	if t.Prefix != "" {
		b.WriteString(t.Prefix)
		b.WriteString(" ")
	}
	switch {
	case t.Bracket != nil:
		b.WriteString("[")
		b.WriteString(t.Bracket.Key.String())
		if t.Bracket.Value != nil {
			b.WriteString(": ")
			b.WriteString(t.Bracket.Value.String())
		}
		b.WriteString("]")
	case t.Named != nil:
		b.WriteString(strings.Join(t.Named.Parts, "."))
		if len(t.Named.Args) > 0 {
			b.WriteString("<")
			for i, arg := range t.Named.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(arg.String())
			}
			b.WriteString(">")
		}
	}
	for _, s := range t.Suffixes {
		b.WriteString(s)
	}
	return b.String()
}

// buildGrammar constructs the participle parser for description files
func buildGrammar() *participle.Parser[File] {
	return participle.MustBuild[File](
		participle.Lexer(descriptionLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
}
