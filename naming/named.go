// Package naming defines how instrumentable objects in this module are named.
package naming

import "strings"

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

func (b *NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase.
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}

// NameMustBeValid panics if the name does not follow the naming convention.
// A name is a dot-separated hierarchy of elements. Each element must be
// non-empty, must start with a capital letter, and must not contain
// underscores, dashes, or quote characters.
func NameMustBeValid(name string) {
	tokens := strings.Split(name, ".")
	for _, token := range tokens {
		tokenMustBeValid(name, token)
	}
}

func tokenMustBeValid(name, token string) {
	if token == "" {
		panic("name " + name + " is not valid: element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(token, c) {
			panic("name " + name + " is not valid: element must not contain " + c)
		}
	}

	if token[0] < 'A' || token[0] > 'Z' {
		panic("name " + name +
			" is not valid: element must start with a capital letter")
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}
