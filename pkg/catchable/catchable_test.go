package catchable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gatewayDSL = `public protocol Gateway {
	func pay(amount: Int) throws -> Receipt
}`

func TestGenerate(t *testing.T) {
	content, err := Generate("gateway.protocol", []byte(gatewayDSL), FormatDSL)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "// Code generated by catchable. DO NOT EDIT."))
	assert.Contains(t, content, "public final class CatchableGateway: Gateway {")
	assert.Contains(t, content, "return try wrapped.pay(amount: amount)")
	assert.Contains(t, content, "throw catchError(error)")
}

func TestGenerateJSON(t *testing.T) {
	source := []byte(`{"keyword": "protocol", "name": "Clock", "members": [{"kind": "method", "name": "now", "returnType": "Instant"}]}`)

	content, err := Generate("clock.json", source, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, content, "func now() -> Instant {")
}

func TestGenerateTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenerateTo(&buf, "gateway.protocol", []byte(gatewayDSL), FormatDSL))
	assert.Contains(t, buf.String(), "CatchableGateway")
}

func TestParse(t *testing.T) {
	descs, err := Parse("gateway.protocol", []byte(gatewayDSL), FormatDSL)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "Gateway", descs[0].Name)
}

func TestValidateReportsErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		source string
		check  func(error) bool
		member string
	}{
		{
			"not an interface",
			"struct Point {\n}",
			IsNotAnInterface,
			"",
		},
		{
			"custom init",
			"protocol Store {\n\tinit(capacity: Int)\n}",
			IsCustomInitNotAllowed,
			"init",
		},
		{
			"setter",
			"protocol Counter {\n\tvar count: Int { get set }\n}",
			IsSetterNotAllowed,
			"count",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Validate("t.protocol", []byte(test.source), FormatDSL)
			require.Error(t, err)
			assert.True(t, test.check(err))

			member, ok := OffendingMember(err)
			if test.member == "" {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, test.member, member)
			}
		})
	}
}

func TestValidateSyntaxError(t *testing.T) {
	err := Validate("t.protocol", []byte("protocol {{{"), FormatDSL)
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err))
	assert.False(t, IsNotAnInterface(err))
}

func TestGenerateFailsWithoutPartialOutput(t *testing.T) {
	content, err := Generate("t.protocol", []byte("protocol Counter {\n\tvar count: Int { get set }\n}"), FormatDSL)
	require.Error(t, err)
	assert.Empty(t, content)
}
