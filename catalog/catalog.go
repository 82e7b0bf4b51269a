// Package catalog holds the timestamp format catalog: named pattern
// definitions with category metadata, an immutable registry indexing them,
// and loaders for the builtin table and external YAML catalogs.
//
// A registry is constructed once per catalog version and never mutated.
// Updating a catalog means building a new registry and swapping it in
// wholesale, so readers never observe a partially updated catalog.
package catalog

import (
	"regexp"

	"github.com/chronoid/chronoid/automaton"
	"github.com/chronoid/chronoid/errors"
)

// Category tags a format with the family it belongs to. Categories exist
// for reporting and for the optional disambiguation override order; they
// carry no matching semantics of their own.
type Category string

const (
	CategoryISO            Category = "ISO"
	CategoryUnixEpoch      Category = "Unix/Epoch"
	CategoryRFC            Category = "RFC"
	CategoryRegional       Category = "Regional"
	CategoryTimeOnly       Category = "Time-only"
	CategoryDatabase       Category = "Database"
	CategoryLanguageSystem Category = "Language/System"
	CategoryLegacy         Category = "Legacy"
	CategoryIndustry       Category = "Industry"
	CategoryTimezone       Category = "Timezone"
	CategoryCalendar       Category = "Calendar"
)

// Categories lists every known category tag.
var Categories = []Category{
	CategoryISO,
	CategoryUnixEpoch,
	CategoryRFC,
	CategoryRegional,
	CategoryTimeOnly,
	CategoryDatabase,
	CategoryLanguageSystem,
	CategoryLegacy,
	CategoryIndustry,
	CategoryTimezone,
	CategoryCalendar,
}

// Valid reports whether c is one of the known category tags.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FormatDefinition describes one catalogued timestamp layout.
//
// Name is the catalog key and must be unique within a registry. Pattern is
// a regular expression in RE2 syntax restricted to constructs with
// finite-state equivalents. Example is a literal that must match the
// pattern; the registry enforces this at load time so every catalog entry
// is self-witnessing. Definitions are immutable once loaded.
type FormatDefinition struct {
	Name     string   `yaml:"name"`
	Pattern  string   `yaml:"pattern"`
	Template string   `yaml:"template"`
	Category Category `yaml:"category"`
	Example  string   `yaml:"example"`

	// Anchored is derived at load time: whether the pattern is fully
	// ^…$-anchored. Matching is always whole-string either way.
	Anchored bool `yaml:"-"`

	re  *regexp.Regexp
	nfa *automaton.NFA
}

// Matches reports whether input is accepted by this definition's pattern,
// applied as a whole-string match.
func (d *FormatDefinition) Matches(input string) bool {
	return d.re.MatchString(input)
}

// NFA returns the definition's compiled automaton, used by the overlap
// analyzer. Nil before the definition has been loaded into a registry.
func (d *FormatDefinition) NFA() *automaton.NFA {
	return d.nfa
}

// Registry is an immutable, ordered index of format definitions.
type Registry struct {
	defs  []*FormatDefinition
	index map[string]*FormatDefinition
}

// Load validates and indexes a sequence of format definitions.
//
// The whole load fails with an error wrapping errors.ErrInvalidCatalog when
// any definition has an empty or duplicate name, an unknown category, a
// pattern that does not compile or uses a construct unsupported by
// containment analysis, or an example the pattern does not accept. No
// partial registry is ever produced.
func Load(defs []FormatDefinition) (*Registry, error) {
	r := &Registry{
		defs:  make([]*FormatDefinition, 0, len(defs)),
		index: make(map[string]*FormatDefinition, len(defs)),
	}

	for i := range defs {
		d := defs[i] // copy; the registry owns its own instances
		if d.Name == "" {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "definition %d has no name", i)
		}
		if _, exists := r.index[d.Name]; exists {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "duplicate format name %q", d.Name)
		}
		if !d.Category.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "format %q has unknown category %q", d.Name, d.Category)
		}

		// Matching is whole-string regardless of the pattern's own anchors.
		re, err := regexp.Compile(`\A(?:` + d.Pattern + `)\z`)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "format %q: pattern does not compile: %v", d.Name, err)
		}
		d.re = re

		nfa, err := automaton.Compile(d.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "format %q", d.Name)
		}
		d.nfa = nfa
		d.Anchored = automaton.Anchored(d.Pattern)

		if d.Example != "" && !d.re.MatchString(d.Example) {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "format %q: example %q does not match its own pattern", d.Name, d.Example)
		}

		r.defs = append(r.defs, &d)
		r.index[d.Name] = &d
	}

	return r, nil
}

// Lookup returns the definition with the given name, or an error wrapping
// errors.ErrNotFound.
func (r *Registry) Lookup(name string) (*FormatDefinition, error) {
	d, ok := r.index[name]
	if !ok {
		return nil, errors.NewNotFoundError("format %q", name)
	}
	return d, nil
}

// All returns every definition in registration order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) All() []*FormatDefinition {
	return r.defs
}

// Len returns the number of definitions in the registry.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Position returns the registration index of name, used as the last-resort
// deterministic ordering for reporting. Returns -1 for unknown names.
func (r *Registry) Position(name string) int {
	for i, d := range r.defs {
		if d.Name == name {
			return i
		}
	}
	return -1
}
