// Package entities defines the objects that populate a game world: items,
// characters, and the examinable capability they share. Behavior that
// varies per instance (interaction, examination) is attached as function
// fields rather than expressed through subtyping.
package entities

import (
	"strings"
	"unicode"
)

// Identifier is a case- and whitespace-insensitive name. It is the sole
// key for find-by-name lookups across rooms, inventories, and regions.
type Identifier struct {
	name string
}

// NewIdentifier creates an identifier with the given display name.
func NewIdentifier(name string) Identifier {
	return Identifier{name: name}
}

// Name returns the display form of the identifier.
func (i Identifier) Name() string {
	return i.name
}

// Normalized returns the comparison form: lowercase with all whitespace
// removed.
func (i Identifier) Normalized() string {
	return normalizeName(i.name)
}

// Equals reports whether two identifiers name the same thing, ignoring
// case and whitespace.
func (i Identifier) Equals(other Identifier) bool {
	return i.Normalized() == other.Normalized()
}

// Matches reports whether a raw name string refers to this identifier.
func (i Identifier) Matches(name string) bool {
	return i.Normalized() == normalizeName(name)
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
