// Package generator feeds candidate tokens through a preset and collects the
// emitted rules in a stable order.
package generator

import (
	"context"
	"errors"
	"slices"
	"strings"

	"bennypowers.dev/scrollbar/internal/collections"
	"bennypowers.dev/scrollbar/internal/log"
	"bennypowers.dev/scrollbar/internal/stylesheet"
	"bennypowers.dev/scrollbar/preset"
)

// Generator resolves token batches against one preset
type Generator struct {
	preset *preset.Preset
}

// New creates a generator for p
func New(p *preset.Preset) *Generator {
	return &Generator{preset: p}
}

// Preset returns the preset tokens are resolved against
func (g *Generator) Preset() *preset.Preset {
	return g.preset
}

// Result is the outcome of one Generate call
type Result struct {
	// Rules are sorted by rule table position, then by token
	Rules []preset.CSSRule

	// Matched and Unmatched partition the distinct input tokens, sorted
	Matched   []string
	Unmatched []string

	// Failed lists tokens whose resolution returned an error, sorted
	Failed []string
}

// CSS prints the rules in compact form
func (r *Result) CSS() string {
	return stylesheet.String(r.Rules, stylesheet.Compact)
}

// Generate resolves every distinct non-empty token. Tokens that fail are
// logged, left out of the result and reported together in the returned
// error; the result is still usable. Cancellation stops the batch.
func (g *Generator) Generate(ctx context.Context, tokens []string) (*Result, error) {
	set := collections.NewSet[string]()
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			set.Add(t)
		}
	}

	result := &Result{}
	var errs []error
	for _, token := range collections.Sorted(set) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rules, err := g.preset.Resolve(token)
		switch {
		case err != nil:
			log.Warn("Skipping %s: %v", token, err)
			result.Failed = append(result.Failed, token)
			errs = append(errs, err)
		case len(rules) == 0:
			log.Debug("No rule matched %s", token)
			result.Unmatched = append(result.Unmatched, token)
		default:
			result.Matched = append(result.Matched, token)
			result.Rules = append(result.Rules, rules...)
		}
	}

	// tokens were visited in sorted order, so a stable sort keeps them
	// sorted within each rule
	slices.SortStableFunc(result.Rules, func(a, b preset.CSSRule) int {
		return a.Order - b.Order
	})

	log.Debug("Generated %d rules from %d tokens (%d unmatched, %d failed)",
		len(result.Rules), len(set), len(result.Unmatched), len(result.Failed))

	return result, errors.Join(errs...)
}
