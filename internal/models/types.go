package models

import "fmt"

// Visibility represents the declared access level of an interface description
type Visibility string

const (
	VisibilityDefault     Visibility = ""
	VisibilityPublic      Visibility = "public"
	VisibilityInternal    Visibility = "internal"
	VisibilityFilePrivate Visibility = "fileprivate"
	VisibilityPrivate     Visibility = "private"
)

// ParseVisibility converts a declared modifier into a Visibility
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "":
		return VisibilityDefault, nil
	case "public":
		return VisibilityPublic, nil
	case "internal":
		return VisibilityInternal, nil
	case "fileprivate":
		return VisibilityFilePrivate, nil
	case "private":
		return VisibilityPrivate, nil
	default:
		return VisibilityDefault, fmt.Errorf("unknown visibility modifier: %s", s)
	}
}

// Modifier returns the source-text prefix for the visibility, including the
// trailing space, or an empty string when no modifier was declared
func (v Visibility) Modifier() string {
	if v == VisibilityDefault {
		return ""
	}
	return string(v) + " "
}

// String returns the modifier keyword without decoration
func (v Visibility) String() string {
	if v == VisibilityDefault {
		return "internal (implicit)"
	}
	return string(v)
}
