package parser

import (
	"fmt"

	"github.com/pawel-sp/Catchable/internal/errors"
	"github.com/pawel-sp/Catchable/internal/models"
)

// Builder validates raw declarations into immutable interface descriptions.
// The three validation rules run in order and short-circuit on the first
// violation; a successful build preserves declared member order.
type Builder struct{}

// NewBuilder creates a model builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build validates one raw declaration. Rule order:
//  1. the declaration must be protocol-shaped (NotAnInterface)
//  2. no member may be an init requirement (CustomInitNotAllowed)
//  3. no property may declare a set accessor (SetterNotAllowed)
func (b *Builder) Build(raw *RawDeclaration) (*models.InterfaceDescription, error) {
	if raw.Keyword != KeywordProtocol {
		return nil, errors.NewNotAnInterface(raw.Name, raw.Keyword).
			WithLocation(raw.Location)
	}

	for _, member := range raw.Members {
		if member.Kind == MemberKindInit {
			return nil, errors.NewCustomInitNotAllowed(raw.Name, member.Name).
				WithLocation(member.Location)
		}
	}

	for _, member := range raw.Members {
		if member.Kind == MemberKindProperty && member.HasSetter() {
			return nil, errors.NewSetterNotAllowed(raw.Name, member.Name).
				WithLocation(member.Location)
		}
	}

	visibility, err := models.ParseVisibility(raw.Visibility)
	if err != nil {
		return nil, errors.NewSyntaxErrorf("declaration '%s': %v", raw.Name, err).
			WithLocation(raw.Location)
	}

	description := &models.InterfaceDescription{
		Name:       raw.Name,
		Visibility: visibility,
		Attributes: raw.Attributes,
		Inherits:   raw.Inherits,
	}

	for _, member := range raw.Members {
		description.Members = append(description.Members, buildMember(member))
	}

	return description, nil
}

// BuildAll validates every declaration before any is considered usable, so a
// failure in a later declaration never leaves partial results behind
func (b *Builder) BuildAll(raws []*RawDeclaration) ([]*models.InterfaceDescription, error) {
	descriptions := make([]*models.InterfaceDescription, 0, len(raws))
	for _, raw := range raws {
		description, err := b.Build(raw)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, description)
	}
	return descriptions, nil
}

func buildMember(member RawMember) models.MemberDescription {
	if member.Kind == MemberKindProperty {
		return models.PropertyMember{
			Name:        member.Name,
			ValueType:   member.Type,
			AsyncGetter: member.AsyncGetter(),
		}
	}

	method := models.MethodMember{
		Name:       member.Name,
		ReturnType: member.ReturnType,
		Async:      member.HasEffect(EffectAsync),
		Throws:     member.HasEffect(EffectThrows),
		Attributes: member.Attributes,
	}
	for i, param := range member.Parameters {
		method.Parameters = append(method.Parameters, buildParameter(i, param))
	}
	return method
}

// buildParameter resolves label and binding name. A "_" label means
// positional; a missing binding name falls back to the label, or to a
// synthesized name when the parameter is positional and anonymous.
func buildParameter(index int, param RawParameter) models.Parameter {
	label := param.Label
	if label == PositionalLabel {
		label = ""
	}

	name := param.Name
	if name == "" {
		name = label
	}
	if name == "" {
		name = fmt.Sprintf("p%d", index)
	}

	return models.Parameter{
		Label: label,
		Name:  name,
		Type:  param.Type,
	}
}
