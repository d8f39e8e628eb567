// Package preset resolves scrollbar utility tokens such as "scrollbar-w-4"
// or "scrollbar-thumb:scrollbar-rounded-thumb" into CSS rules.
//
// A Preset owns an immutable Config, an ordered rule table, a shortcut table
// and a variant matcher. Resolution is stateless, so one Preset may serve
// concurrent callers.
package preset

import (
	"regexp"
	"slices"

	"bennypowers.dev/scrollbar/internal/color"
)

// Name identifies the preset to host generators
const Name = "scrollbar"

// Preset is the resolved rule, shortcut and variant tables for one Config
type Preset struct {
	config    Config
	rules     []Rule
	shortcuts map[string]Shortcut
	order     []string
	variantRe *regexp.Regexp
	colors    ColorResolver
}

// Option customizes a Preset beyond its Config
type Option func(*Preset)

// WithShortcuts adds shortcuts, replacing built-in ones of the same name.
// Expansions must not form cycles; Resolve reports ErrCyclicShortcut if they do.
func WithShortcuts(shortcuts ...Shortcut) Option {
	return func(p *Preset) {
		for _, sc := range shortcuts {
			p.addShortcut(sc)
		}
	}
}

// WithColorResolver replaces the built-in color resolver
func WithColorResolver(r ColorResolver) Option {
	return func(p *Preset) {
		p.colors = r
	}
}

// New resolves opts and builds the preset tables
func New(opts Options, extra ...Option) *Preset {
	cfg := Resolve(opts)
	p := &Preset{
		config:    cfg,
		rules:     defaultRules(cfg.Prefix()),
		shortcuts: make(map[string]Shortcut),
		variantRe: variantPattern(cfg.Prefix()),
		colors:    color.NewResolver(),
	}
	for _, sc := range defaultShortcuts(cfg) {
		p.addShortcut(sc)
	}
	for _, opt := range extra {
		opt(p)
	}
	return p
}

func (p *Preset) addShortcut(sc Shortcut) {
	if _, exists := p.shortcuts[sc.Name]; !exists {
		p.order = append(p.order, sc.Name)
	}
	p.shortcuts[sc.Name] = sc
}

// Config returns the resolved configuration
func (p *Preset) Config() Config {
	return p.config
}

// VarPrefix returns the custom property naming prefix, "" when unset
func (p *Preset) VarPrefix() string {
	return p.config.VarPrefix()
}

// Rules returns a copy of the rule table in match order
func (p *Preset) Rules() []Rule {
	return slices.Clone(p.rules)
}

// Shortcuts returns the shortcut table in declaration order
func (p *Preset) Shortcuts() []Shortcut {
	out := make([]Shortcut, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.shortcuts[name])
	}
	return out
}

// Resolve turns one token into CSS rules. A token the preset does not
// understand yields no rules and no error.
//
// Besides class names, Resolve accepts the attribute form produced for
// markup such as scrollbar="rounded": "[scrollbar~=\"rounded\"]" resolves
// "scrollbar-rounded" under that attribute selector, and "[scrollbar=\"\"]"
// resolves "scrollbar".
func (p *Preset) Resolve(token string) ([]CSSRule, error) {
	utility := token
	if attr, value, ok := ParseAttribute(token); ok {
		utility = attr
		if value != "" {
			utility += "-" + value
		}
	}

	rules, err := p.resolve(utility, Selector(token), ScopeNone, nil)
	if err != nil {
		return nil, &TokenError{Token: token, Err: err}
	}
	for i := range rules {
		rules[i].Token = token
	}
	return rules, nil
}

// resolve applies at most one variant, then either expands a shortcut or
// scans the rule table. scope is the pseudo-element already on selector; a
// selector takes one pseudo-element, so a second variant declines.
// chain holds the shortcuts currently being expanded.
func (p *Preset) resolve(token, selector string, scope Scope, chain []string) ([]CSSRule, error) {
	if v, rest, ok := p.MatchVariant(token); ok {
		if scope != ScopeNone {
			return nil, nil
		}
		selector = v.Rewrite(selector)
		scope = v.Scope
		token = rest
	}

	if !p.IsShortcut(token) {
		return p.match(token, selector, scope)
	}

	if slices.Contains(chain, token) || len(chain) >= MaxExpansionDepth {
		return nil, NewCyclicShortcutError(append(slices.Clone(chain), token))
	}
	chain = append(slices.Clone(chain), token)

	var out []CSSRule
	for _, item := range p.Expand(token) {
		if item.Literal != nil {
			out = append(out, CSSRule{
				Selector:     selector,
				Declarations: item.Literal.Clone(),
				Order:        len(p.rules),
			})
			continue
		}
		rules, err := p.resolve(item.Token, selector, scope, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, rules...)
	}
	return out, nil
}
