// Package stylesheet prints resolved rules as CSS and checks printed rule
// bodies with the tree-sitter CSS grammar.
package stylesheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bennypowers.dev/scrollbar/internal/parser/css"
	"bennypowers.dev/scrollbar/preset"
)

// ErrInvalidCSS is returned by Check when a rule body does not parse
var ErrInvalidCSS = errors.New("invalid CSS")

// Format selects the printed layout
type Format int

const (
	// Compact prints one rule per line: sel{prop:value;}
	Compact Format = iota
	// Pretty prints one declaration per line, indented by two spaces
	Pretty
)

// Write prints rules to w in the given order
func Write(w io.Writer, rules []preset.CSSRule, format Format) error {
	for i, rule := range rules {
		var err error
		switch format {
		case Pretty:
			if i > 0 {
				if _, err = io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			err = writePretty(w, rule)
		default:
			_, err = io.WriteString(w, rule.String()+"\n")
		}
		if err != nil {
			return fmt.Errorf("failed to write rule %q: %w", rule.Selector, err)
		}
	}
	return nil
}

func writePretty(w io.Writer, rule preset.CSSRule) error {
	var b strings.Builder
	b.WriteString(rule.Selector)
	b.WriteString(" {\n")
	for _, d := range rule.Declarations.All() {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// String prints rules into a string
func String(rules []preset.CSSRule, format Format) string {
	var b strings.Builder
	_ = Write(&b, rules, format)
	return b.String()
}

// RuleError describes a rule whose printed body failed to parse
type RuleError struct {
	Selector string
	Token    string
	Detail   string
}

func (e *RuleError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s (from %q): %s", e.Selector, e.Token, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Selector, e.Detail)
}

func (e *RuleError) Unwrap() error {
	return ErrInvalidCSS
}

// Check parses each rule body with tree-sitter and verifies that every
// declaration survives the round trip. Selectors are checked with a CSS
// lexer, since tree-sitter-css does not accept every escaped class name.
// Custom properties the rules define or reference through var() must belong
// to cfg's namespace when they look like scrollbar properties.
func Check(rules []preset.CSSRule, cfg preset.Config) error {
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	known := make(map[string]bool, len(preset.Vars))
	for _, v := range preset.Vars {
		known[cfg.VarName(v)] = true
	}

	var errs []error
	for _, rule := range rules {
		if err := checkSelector(rule); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := checkRule(parser, rule, known); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkRule(parser *css.Parser, rule preset.CSSRule, known map[string]bool) error {
	fail := func(format string, args ...any) error {
		return &RuleError{Selector: rule.Selector, Token: rule.Token, Detail: fmt.Sprintf(format, args...)}
	}

	// Wrap the body in a dummy rule so the grammar sees a complete rule set
	result, err := parser.Parse("x{" + rule.Declarations.String() + "}")
	if err != nil {
		return fail("%v", err)
	}
	if len(result.Errors) > 0 {
		e := result.Errors[0]
		return fail("syntax error near %q at column %d", e.Text, e.Range.Start.Character)
	}

	want := rule.Declarations.All()
	if len(result.Declarations) != len(want) {
		return fail("parsed %d declarations, want %d", len(result.Declarations), len(want))
	}
	for i, got := range result.Declarations {
		if got.Property != want[i].Property {
			return fail("declaration %d: parsed property %q, want %q", i, got.Property, want[i].Property)
		}
		if got.Value != want[i].Value {
			return fail("declaration %d: parsed value %q, want %q", i, got.Value, want[i].Value)
		}
	}

	for _, d := range result.CustomProperties() {
		if foreign(d.Property, known) {
			return fail("defines %s outside the configured namespace", d.Property)
		}
	}
	for _, call := range result.VarCalls {
		if foreign(call.Name, known) {
			return fail("var(%s) at column %d is outside the configured namespace", call.Name, call.Range.Start.Character)
		}
	}
	return nil
}

// foreign reports a scrollbar-looking custom property the preset does not own.
// Other names, such as arbitrary var() values, pass through.
func foreign(name string, known map[string]bool) bool {
	return strings.Contains(name, "scrollbar-") && !known[name]
}
