package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawel-sp/Catchable/internal/errors"
	"github.com/pawel-sp/Catchable/internal/models"
)

func TestDSLParserLowersDeclaration(t *testing.T) {
	source := []byte(`@MainActor public protocol PaymentGateway: Sendable {
	var balance: Int { get }
	var history: [Entry] { get async }
	func charge(amount: Int) throws -> Receipt
	func refund(_ id: String, amount: Int) async throws
	@MainActor func sync() async
}`)

	declarations, err := NewDSLParser().Parse("gateway.protocol", source)
	require.NoError(t, err)
	require.Len(t, declarations, 1)

	decl := declarations[0]
	assert.Equal(t, KeywordProtocol, decl.Keyword)
	assert.Equal(t, "PaymentGateway", decl.Name)
	assert.Equal(t, "public", decl.Visibility)
	assert.Equal(t, []string{"@MainActor"}, decl.Attributes)
	assert.Equal(t, []string{"Sendable"}, decl.Inherits)
	assert.Equal(t, "gateway.protocol", decl.Location.File)
	require.Len(t, decl.Members, 5)

	balance := decl.Members[0]
	assert.Equal(t, MemberKindProperty, balance.Kind)
	assert.Equal(t, "balance", balance.Name)
	assert.Equal(t, "Int", balance.Type)
	assert.False(t, balance.AsyncGetter())

	history := decl.Members[1]
	assert.Equal(t, "[Entry]", history.Type)
	assert.True(t, history.AsyncGetter())

	charge := decl.Members[2]
	assert.Equal(t, MemberKindMethod, charge.Kind)
	require.Len(t, charge.Parameters, 1)
	assert.Equal(t, RawParameter{Label: "amount", Name: "amount", Type: "Int"}, charge.Parameters[0])
	assert.True(t, charge.HasEffect(EffectThrows))
	assert.False(t, charge.HasEffect(EffectAsync))
	assert.Equal(t, "Receipt", charge.ReturnType)

	refund := decl.Members[3]
	require.Len(t, refund.Parameters, 2)
	assert.Equal(t, RawParameter{Label: "", Name: "id", Type: "String"}, refund.Parameters[0])
	assert.Equal(t, RawParameter{Label: "amount", Name: "amount", Type: "Int"}, refund.Parameters[1])
	assert.True(t, refund.HasEffect(EffectAsync))
	assert.True(t, refund.HasEffect(EffectThrows))
	assert.Empty(t, refund.ReturnType)

	sync := decl.Members[4]
	assert.Equal(t, []string{"@MainActor"}, sync.Attributes)
	assert.True(t, sync.HasEffect(EffectAsync))
	assert.False(t, sync.HasEffect(EffectThrows))
}

func TestDSLParserDistinctLabelAndName(t *testing.T) {
	declarations, err := NewDSLParser().Parse("t", []byte(`protocol Mailer {
	func send(to recipient: String) throws
}`))
	require.NoError(t, err)

	param := declarations[0].Members[0].Parameters[0]
	assert.Equal(t, RawParameter{Label: "to", Name: "recipient", Type: "String"}, param)
}

func TestDSLParserAnonymousPositionalParameter(t *testing.T) {
	declarations, err := NewDSLParser().Parse("t", []byte(`protocol Box {
	func put(_: Int)
	func move(_: Int, to slot: Int)
}`))
	require.NoError(t, err)

	put := declarations[0].Members[0]
	require.Len(t, put.Parameters, 1)
	assert.Equal(t, RawParameter{Label: "", Name: "", Type: "Int"}, put.Parameters[0])

	move := declarations[0].Members[1]
	require.Len(t, move.Parameters, 2)
	assert.Equal(t, RawParameter{Label: "", Name: "", Type: "Int"}, move.Parameters[0])

	// The Builder synthesizes binding names so the forwarded call never
	// references a bare wildcard.
	descriptions, err := NewBuilder().BuildAll(declarations)
	require.NoError(t, err)
	method := descriptions[0].Members[0].(models.MethodMember)
	assert.Equal(t, "", method.Parameters[0].Label)
	assert.Equal(t, "p0", method.Parameters[0].Name)
}

func TestDSLParserMultipleDeclarations(t *testing.T) {
	declarations, err := NewDSLParser().Parse("t", []byte(`protocol A {
	func a()
}

protocol B {
	func b()
}`))
	require.NoError(t, err)
	require.Len(t, declarations, 2)
	assert.Equal(t, "A", declarations[0].Name)
	assert.Equal(t, "B", declarations[1].Name)
}

func TestDSLParserLowersInitRequirement(t *testing.T) {
	declarations, err := NewDSLParser().Parse("t", []byte(`protocol Store {
	init(capacity: Int)
}`))
	require.NoError(t, err)

	member := declarations[0].Members[0]
	assert.Equal(t, MemberKindInit, member.Kind)
	assert.Equal(t, "init", member.Name)
	require.Len(t, member.Parameters, 1)
}

func TestDSLParserRejectsDuplicateMembers(t *testing.T) {
	_, err := NewDSLParser().Parse("t", []byte(`protocol Clock {
	func now() -> Instant
	func now() -> Tick
}`))
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "now")
}

func TestDSLParserSyntaxErrorCarriesLocation(t *testing.T) {
	_, err := NewDSLParser().Parse("broken.protocol", []byte("protocol ???"))
	require.Error(t, err)

	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))
	genErr, ok := err.(errors.CatchableError)
	require.True(t, ok)
	assert.Equal(t, "broken.protocol", genErr.Location().File)
}
