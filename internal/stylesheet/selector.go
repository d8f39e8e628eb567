package stylesheet

import (
	"bennypowers.dev/scrollbar/preset"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// checkSelector lexes the rule selector. It must open a ruleset, carry at
// most one pseudo-element, and start with the selector built from the rule's
// token, with a class name that reads back as one identifier.
func checkSelector(rule preset.CSSRule) error {
	fail := func(detail string) error {
		return &RuleError{Selector: rule.Selector, Token: rule.Token, Detail: detail}
	}

	p := css.NewParser(parse.NewInputString(rule.Selector+"{}"), false)
	gt, _, _ := p.Next()
	if gt != css.BeginRulesetGrammar {
		return fail("selector does not open a ruleset")
	}
	values := p.Values()

	if n := pseudoElements(values); n > 1 {
		return fail("selector has more than one pseudo-element")
	}
	if rule.Token == "" {
		return nil
	}

	if _, _, ok := preset.ParseAttribute(rule.Token); ok {
		if len(values) == 0 || values[0].TokenType != css.LeftBracketToken {
			return fail("selector is not an attribute selector")
		}
		return nil
	}

	if len(values) < 2 || values[0].TokenType != css.DelimToken || string(values[0].Data) != "." {
		return fail("selector is not a class selector")
	}
	class := preset.EscapeSelector(rule.Token)
	if values[1].TokenType != css.IdentToken || string(values[1].Data) != class {
		return fail("class name " + class + " does not lex as one identifier")
	}
	return nil
}

// pseudoElements counts "::" pairs; escaped colons are part of identifiers
func pseudoElements(values []css.Token) int {
	n := 0
	for i := 0; i+1 < len(values); i++ {
		if values[i].TokenType == css.ColonToken && values[i+1].TokenType == css.ColonToken {
			n++
			i++
		}
	}
	return n
}
