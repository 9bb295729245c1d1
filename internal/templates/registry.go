package templates

import (
	"sort"
	"strings"
)

// Registry resolves template identifiers, including deprecated aliases.
type Registry struct {
	styles    map[string]Style
	aliases   map[string]string
	defaultID string
}

// NewRegistry creates a registry from styles and aliases. defaultID must name
// one of the styles; it is used for unknown identifiers.
func NewRegistry(styles []Style, aliases map[string]string, defaultID string) *Registry {
	r := &Registry{
		styles:    make(map[string]Style, len(styles)),
		aliases:   make(map[string]string, len(aliases)),
		defaultID: defaultID,
	}
	for _, s := range styles {
		r.styles[normalizeID(s.ID)] = s.clone()
	}
	for alias, target := range aliases {
		r.aliases[normalizeID(alias)] = normalizeID(target)
	}
	return r
}

var builtin = NewRegistry(builtinStyles(), builtinAliases, DefaultID)

// Builtin returns the registry of built-in templates.
func Builtin() *Registry {
	return builtin
}

// Resolve resolves id using the built-in registry.
func Resolve(id string) Style {
	return builtin.Resolve(id)
}

// Resolve returns the style for id. It never fails: unknown and retired
// identifiers resolve to the default style.
func (r *Registry) Resolve(id string) Style {
	style, _ := r.Lookup(id)
	return style
}

// Lookup is Resolve that also reports whether id was recognised.
func (r *Registry) Lookup(id string) (Style, bool) {
	key := normalizeID(id)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	if s, ok := r.styles[key]; ok {
		return s.clone(), true
	}
	return r.styles[normalizeID(r.defaultID)].clone(), false
}

// IDs lists the canonical template identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.styles))
	for id := range r.styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Aliases returns the aliases pointing at the canonical id.
func (r *Registry) Aliases(id string) []string {
	target := normalizeID(id)
	var out []string
	for alias, canonical := range r.aliases {
		if canonical == target {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
