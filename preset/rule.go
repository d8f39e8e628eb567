package preset

import "regexp"

// Match is a token together with the submatches of the rule that matched it.
// Captures[0] is the whole token.
type Match struct {
	Token    string
	Captures []string
}

// Group returns capture i, or "" when the group did not participate
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Captures) {
		return ""
	}
	return m.Captures[i]
}

// ColorResolver turns a color utility value such as "red-500/50" into a CSS color.
// Values that name no color must yield an error wrapping ErrUnknownColor.
type ColorResolver interface {
	Resolve(value string) (string, error)
}

// Context is what a handler may consult besides its captures
type Context struct {
	Config Config
	Colors ColorResolver
	// Selector is the selector the output will be emitted under
	Selector string
}

// Handler builds the output of a matched rule. Returning a nil Output and a
// nil error declines the match and the scan continues with the next rule.
type Handler func(m Match, ctx *Context) (Output, error)

// Rule is one entry of the ordered rule table
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Handler Handler

	// Autocomplete holds suggestion templates such as "scrollbar-w-<num>"
	Autocomplete []string
}

// match scans the table front to back; the first rule that matches and does
// not decline wins. Under a scoped selector, output that would add another
// pseudo-element declines.
func (p *Preset) match(token, selector string, scope Scope) ([]CSSRule, error) {
	ctx := &Context{Config: p.config, Colors: p.colors, Selector: selector}
	for i, rule := range p.rules {
		captures := rule.Pattern.FindStringSubmatch(token)
		if captures == nil {
			continue
		}
		out, err := rule.Handler(Match{Token: token, Captures: captures}, ctx)
		if err != nil {
			return nil, err
		}
		if out == nil {
			continue
		}
		if scope != ScopeNone && addsPseudoElement(out) {
			continue
		}
		rules := out.rules(selector)
		for j := range rules {
			rules[j].Order = i
		}
		return rules, nil
	}
	return nil, nil
}

func addsPseudoElement(out Output) bool {
	block, ok := out.(Block)
	if !ok {
		return false
	}
	for _, e := range block {
		if e.Suffix != "" {
			return true
		}
	}
	return false
}
