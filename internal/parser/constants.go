package parser

// Declaration keywords the grammar accepts. Everything except KeywordProtocol
// parses successfully so that validation, not the lexer, reports NotAnInterface.
const (
	KeywordProtocol  = "protocol"
	KeywordStruct    = "struct"
	KeywordClass     = "class"
	KeywordEnum      = "enum"
	KeywordActor     = "actor"
	KeywordExtension = "extension"
)

// Member kinds carried by the raw layer
const (
	MemberKindProperty = "property"
	MemberKindMethod   = "method"
	MemberKindInit     = "init"
)

// Accessor kinds carried by the raw layer
const (
	AccessorGet = "get"
	AccessorSet = "set"
)

// Effect names carried by the raw layer
const (
	EffectAsync  = "async"
	EffectThrows = "throws"
)

// PositionalLabel is the source spelling for a label-less parameter
const PositionalLabel = "_"
