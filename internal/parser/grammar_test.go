package parser

import "testing"

func TestTypeExprRendering(t *testing.T) {
	grammar := buildGrammar()

	// Types round-trip through a one-method protocol so the type expression
	// is parsed in its natural position.
	tests := []struct {
		name string
		typ  string
	}{
		{"simple", "Int"},
		{"dotted", "Foundation.Data"},
		{"optional", "String?"},
		{"forced", "String!"},
		{"double optional", "Int??"},
		{"array", "[Int]"},
		{"dictionary", "[String: Int]"},
		{"nested array", "[[Int]]"},
		{"dictionary of arrays", "[String: [Int]]"},
		{"generic", "Result<Int, Error>"},
		{"nested generic", "Array<Dictionary<String, Int>>"},
		{"any prefix", "any Sequence"},
		{"some prefix", "some Collection"},
		{"optional array", "[Int]?"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := "protocol P {\n\tfunc m() -> " + test.typ + "\n}"
			file, err := grammar.ParseString("test", source)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			method := file.Declarations[0].Members[0].Method
			if method == nil {
				t.Fatal("expected a method member")
			}
			if got := method.Return.String(); got != test.typ {
				t.Errorf("type did not round-trip: got %q, want %q", got, test.typ)
			}
		})
	}
}

func TestGrammarAcceptsNonProtocolKeywords(t *testing.T) {
	grammar := buildGrammar()

	// Concrete-type keywords must parse so that validation, not the lexer,
	// reports NotAnInterface.
	for _, keyword := range []string{"struct", "class", "enum", "actor", "extension"} {
		t.Run(keyword, func(t *testing.T) {
			file, err := grammar.ParseString("test", keyword+" Thing {\n}")
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if file.Declarations[0].Keyword != keyword {
				t.Errorf("keyword = %q, want %q", file.Declarations[0].Keyword, keyword)
			}
		})
	}
}

func TestGrammarAcceptsInitAndSetter(t *testing.T) {
	grammar := buildGrammar()

	file, err := grammar.ParseString("test", `protocol Store {
	init(capacity: Int)
	var count: Int { get set }
}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	members := file.Declarations[0].Members
	if members[0].Init == nil {
		t.Error("expected the first member to be an init requirement")
	}
	prop := members[1].Property
	if prop == nil {
		t.Fatal("expected the second member to be a property")
	}
	if len(prop.Accessors) != 2 || prop.Accessors[1].Kind != "set" {
		t.Errorf("expected get and set accessors, got %+v", prop.Accessors)
	}
}

func TestGrammarElidesComments(t *testing.T) {
	grammar := buildGrammar()

	file, err := grammar.ParseString("test", `// a payment surface
protocol Gateway {
	// the only method
	func pay() throws
}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(file.Declarations) != 1 || len(file.Declarations[0].Members) != 1 {
		t.Fatalf("comments leaked into the parse: %+v", file.Declarations)
	}
}

func TestGrammarRejectsGarbage(t *testing.T) {
	grammar := buildGrammar()

	if _, err := grammar.ParseString("test", "protocol {{{"); err == nil {
		t.Error("expected a parse error for malformed input")
	}
	if _, err := grammar.ParseString("test", ""); err == nil {
		t.Error("expected a parse error for empty input")
	}
}
