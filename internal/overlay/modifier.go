package overlay

import (
	"fmt"
	"slices"
	"strings"
)

// Modifier is one optional decoration the clock can mix into its display.
type Modifier string

const (
	Birthday   Modifier = "birthday"
	Friday     Modifier = "friday"
	ILoveYou   Modifier = "iloveyou"
	ByJeremy   Modifier = "byjeremy"
	Decoration Modifier = "leah"
)

var allModifiers = []Modifier{Birthday, Friday, ILoveYou, ByJeremy, Decoration}

func AllModifiers() []Modifier {
	return slices.Clone(allModifiers)
}

type UnknownModifierError struct {
	Name string
}

func (e *UnknownModifierError) Error() string {
	return fmt.Sprintf("unknown modifier %q (valid: birthday, friday, iloveyou, byjeremy, leah)", e.Name)
}

func ParseModifier(s string) (Modifier, error) {
	m := Modifier(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(allModifiers, m) {
		return "", &UnknownModifierError{Name: s}
	}
	return m, nil
}

// NoModifiers spells the empty set where an empty value would read as unset.
const NoModifiers = "none"

// Modifiers is a set of enabled modifiers.
type Modifiers map[Modifier]bool

// ParseModifiers parses names into a set, ignoring empty entries. A lone
// "none" yields the empty set.
func ParseModifiers(names []string) (Modifiers, error) {
	set := make(Modifiers, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || (len(names) == 1 && strings.EqualFold(name, NoModifiers)) {
			continue
		}
		m, err := ParseModifier(name)
		if err != nil {
			return nil, err
		}
		set[m] = true
	}
	return set, nil
}

func (m Modifiers) Has(mod Modifier) bool {
	return m[mod]
}

// Names returns the enabled modifiers in their canonical order.
func (m Modifiers) Names() []string {
	var names []string
	for _, mod := range allModifiers {
		if m[mod] {
			names = append(names, string(mod))
		}
	}
	return names
}
