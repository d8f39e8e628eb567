package preset

import (
	"regexp"
)

// Scope is the part of the scrollbar a variant targets
type Scope int

const (
	// ScopeNone is the zero value: no variant matched
	ScopeNone Scope = iota
	// ScopeScrollbar targets ::-webkit-scrollbar
	ScopeScrollbar
	// ScopeTrack targets ::-webkit-scrollbar-track
	ScopeTrack
	// ScopeThumb targets ::-webkit-scrollbar-thumb
	ScopeThumb
)

var scopeNames = map[string]Scope{
	"scrollbar":       ScopeScrollbar,
	"scrollbar-track": ScopeTrack,
	"scrollbar-thumb": ScopeThumb,
}

// PseudoElement returns the selector suffix the scope appends
func (s Scope) PseudoElement() string {
	switch s {
	case ScopeScrollbar:
		return "::-webkit-scrollbar"
	case ScopeTrack:
		return "::-webkit-scrollbar-track"
	case ScopeThumb:
		return "::-webkit-scrollbar-thumb"
	}
	return ""
}

func (s Scope) String() string {
	for name, scope := range scopeNames {
		if scope == s {
			return name
		}
	}
	return "none"
}

// Variant describes a matched selector-scoping prefix
type Variant struct {
	Scope Scope
	// Matched is the length of the consumed "<scope>:" prefix
	Matched int
}

// Rewrite appends the scope's pseudo-element to selector
func (v Variant) Rewrite(selector string) string {
	return selector + v.Scope.PseudoElement()
}

// variantPattern matches "{prefix}<scope>:<rest>". The explicit ":" after the
// alternation keeps "scrollbar-trackish:x" from matching.
func variantPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(scrollbar(?:-track|-thumb)?):(.+)$`)
}

// MatchVariant splits token into its variant and the remaining token.
// Tokens without a recognized scope come back unchanged with ok == false.
func (p *Preset) MatchVariant(token string) (v Variant, rest string, ok bool) {
	m := p.variantRe.FindStringSubmatch(token)
	if m == nil {
		return Variant{}, token, false
	}
	scope, known := scopeNames[m[1]]
	if !known {
		return Variant{}, token, false
	}
	return Variant{Scope: scope, Matched: len(token) - len(m[2])}, m[2], true
}
