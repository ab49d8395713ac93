package errors

import "fmt"

// ValidationError represents a model validation failure with the offending
// declaration and member identified for diagnostics
type ValidationError struct {
	*BaseError
	Declaration string // name of the declaration being validated
	Member      string // offending member name, empty for declaration-level failures
}

// NewNotAnInterface creates the validation error for rule 1: the declaration
// does not describe an interface-shaped (protocol) type
func NewNotAnInterface(declaration, keyword string) *ValidationError {
	message := fmt.Sprintf("declaration '%s' is not an interface: expected a protocol, got '%s'", declaration, keyword)

	err := &ValidationError{
		BaseError:   New(NotAnInterfaceCode, message),
		Declaration: declaration,
	}
	err.WithContext("keyword", keyword)
	err.WithSuggestion("declare the type as 'protocol' to generate a forwarding wrapper")
	err.WithSuggestion("concrete types cannot be wrapped because their members are not a capability contract")
	return err
}

// NewCustomInitNotAllowed creates the validation error for rule 2: the
// declaration carries an initializer requirement
func NewCustomInitNotAllowed(declaration, member string) *ValidationError {
	message := fmt.Sprintf("protocol '%s' declares initializer requirement '%s': wrappers cannot honor constructor contracts", declaration, member)

	err := &ValidationError{
		BaseError:   New(CustomInitNotAllowedCode, message),
		Declaration: declaration,
		Member:      member,
	}
	err.WithSuggestion("remove the init requirement from the protocol")
	err.WithSuggestion("construct concrete instances outside the protocol and wrap them afterwards")
	return err
}

// NewSetterNotAllowed creates the validation error for rule 3: a property
// member exposes a set accessor
func NewSetterNotAllowed(declaration, property string) *ValidationError {
	message := fmt.Sprintf("property '%s' in protocol '%s' declares a set accessor: only read-only properties can be forwarded", property, declaration)

	err := &ValidationError{
		BaseError:   New(SetterNotAllowedCode, message),
		Declaration: declaration,
		Member:      property,
	}
	err.WithSuggestion(fmt.Sprintf("declare '%s' as '{ get }' or '{ get async }'", property))
	err.WithSuggestion("move mutation behind a throwing method so failures stay translatable")
	return err
}

// WithLocation adds location information to the error
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// SyntaxError represents a description parsing error
type SyntaxError struct {
	*BaseError
	Token string // the token that caused the error, when known
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// NewSyntaxErrorf creates a new syntax error with a formatted message
func NewSyntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return NewSyntaxError(fmt.Sprintf(format, args...))
}

// WithToken records the offending token
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	e.WithContext("token", token)
	return e
}

// WithLocation adds location information to the error
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// AsValidation returns the ValidationError in the chain, if any
func AsValidation(err error) (*ValidationError, bool) {
	for err != nil {
		if ve, ok := err.(*ValidationError); ok {
			return ve, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil, false
}
