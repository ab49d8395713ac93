package models

// InterfaceDescription is the validated, immutable model of an interface
// declaration. Members keep their declared order; emission depends on that
// order for deterministic output.
type InterfaceDescription struct {
	Name       string              // declared interface name
	Visibility Visibility          // declared access modifier, may be empty
	Attributes []string            // declaration-level execution-context tags, verbatim
	Inherits   []string            // inherited protocol names, retained but not emitted
	Members    []MemberDescription // ordered members
}

// MemberDescription is the closed union over the two member variants.
// Only PropertyMember and MethodMember implement it.
type MemberDescription interface {
	// MemberName returns the declared member name
	MemberName() string

	isMember()
}

// PropertyMember is a read-only property requirement. Write accessors never
// survive validation, so the model has no way to express one.
type PropertyMember struct {
	Name        string // property name
	ValueType   string // canonical type text
	AsyncGetter bool   // read is a suspension point
}

// MemberName returns the property name
func (p PropertyMember) MemberName() string { return p.Name }

func (PropertyMember) isMember() {}

// MethodMember is a method requirement with its effect set and optional
// execution-context tags.
type MethodMember struct {
	Name       string      // method name
	Parameters []Parameter // ordered parameters
	ReturnType string      // canonical type text, empty for no value
	Async      bool        // call is a suspension point
	Throws     bool        // call may signal failure
	Attributes []string    // execution-context tags, verbatim (e.g. "@MainActor")
}

// MemberName returns the method name
func (m MethodMember) MemberName() string { return m.Name }

func (MethodMember) isMember() {}

// Returns reports whether the method produces a value
func (m MethodMember) Returns() bool { return m.ReturnType != "" }

// Parameter is a single method parameter. The external label and internal
// binding name may differ; an empty label means the call site is positional.
type Parameter struct {
	Label string // external label, empty for positional
	Name  string // internal binding name
	Type  string // canonical type text
}

// Labeled reports whether call sites must use the external label
func (p Parameter) Labeled() bool { return p.Label != "" }

// Methods returns the method members in declared order
func (d *InterfaceDescription) Methods() []MethodMember {
	var methods []MethodMember
	for _, m := range d.Members {
		if method, ok := m.(MethodMember); ok {
			methods = append(methods, method)
		}
	}
	return methods
}

// Properties returns the property members in declared order
func (d *InterfaceDescription) Properties() []PropertyMember {
	var props []PropertyMember
	for _, m := range d.Members {
		if prop, ok := m.(PropertyMember); ok {
			props = append(props, prop)
		}
	}
	return props
}
