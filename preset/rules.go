package preset

import (
	"errors"
	"regexp"
)

// Rule names, in table order
const (
	RuleRoot       = "root"
	RuleRounded    = "rounded"
	RuleHidden     = "hidden"
	RuleColor      = "color"
	RuleNumeric    = "numeric"
	RuleColorShort = "color-short"
)

// defaultRules builds the rule table. Order matters: the table is scanned
// front to back and a more specific pattern must precede any more general
// pattern that would shadow it. RuleColorShort comes last so that
// "scrollbar-thumb-radius-2px" and "scrollbar-thumb-color-red" reach
// RuleNumeric and RuleColor first.
func defaultRules(prefix string) []Rule {
	p := regexp.QuoteMeta(prefix)
	return []Rule{
		{
			Name:    RuleRoot,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar$`),
			Handler: rootHandler,
		},
		{
			Name:    RuleRounded,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar-rounded-(track|thumb)$`),
			Handler: roundedHandler,
		},
		{
			Name:    RuleHidden,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar-hidden$`),
			Handler: hiddenHandler,
		},
		{
			Name:    RuleColor,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar-(track|thumb)-color-(.+)$`),
			Handler: colorHandler,
			Autocomplete: []string{
				prefix + "scrollbar-track-color-<color>",
				prefix + "scrollbar-thumb-color-<color>",
			},
		},
		{
			Name:    RuleNumeric,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar-(radius|w|h|track-radius|thumb-radius)-(\d+)([a-zA-Z%]*)$`),
			Handler: numericHandler,
			Autocomplete: []string{
				prefix + "scrollbar-(radius|w|h|track-radius|thumb-radius)-<num>",
			},
		},
		{
			Name:    RuleColorShort,
			Pattern: regexp.MustCompile(`^` + p + `scrollbar-(track|thumb)-(.+)$`),
			Handler: colorHandler,
		},
	}
}

// rootHandler assigns every configured default to its custom property and
// wires the pseudo-elements to read them back
func rootHandler(_ Match, ctx *Context) (Output, error) {
	cfg := ctx.Config

	base := NewDeclarations()
	for _, v := range Vars {
		base.Set(cfg.VarName(v), cfg.Default(v))
	}
	base.Set("overflow", "auto")
	base.Set("scrollbar-color", cfg.VarRef(VarThumb)+" "+cfg.VarRef(VarTrack))

	return Block{
		{Declarations: base},
		{
			Suffix: ScopeScrollbar.PseudoElement(),
			Declarations: NewDeclarations(
				Declaration{"width", cfg.VarRef(VarWidth)},
				Declaration{"height", cfg.VarRef(VarHeight)},
			),
		},
		{
			Suffix:       ScopeTrack.PseudoElement(),
			Declarations: NewDeclarations(Declaration{"background-color", cfg.VarRef(VarTrack)}),
		},
		{
			Suffix:       ScopeThumb.PseudoElement(),
			Declarations: NewDeclarations(Declaration{"background-color", cfg.VarRef(VarThumb)}),
		},
	}, nil
}

// roundedHandler references the radius property by name, never its value,
// so later overrides of the property still apply
func roundedHandler(m Match, ctx *Context) (Output, error) {
	v := VarTrackRadius
	if m.Group(1) == "thumb" {
		v = VarThumbRadius
	}
	return NewDeclarations(Declaration{"border-radius", ctx.Config.VarRef(v)}), nil
}

func hiddenHandler(_ Match, _ *Context) (Output, error) {
	return NewDeclarations(Declaration{"display", "none"}), nil
}

// colorHandler writes a resolved color into the track or thumb property.
// Values the color resolver reports as ErrUnknownColor decline the match.
func colorHandler(m Match, ctx *Context) (Output, error) {
	if ctx.Colors == nil {
		return nil, nil
	}
	value, err := ctx.Colors.Resolve(m.Group(2))
	if errors.Is(err, ErrUnknownColor) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	v := VarTrack
	if m.Group(1) == "thumb" {
		v = VarThumb
	}
	return NewDeclarations(Declaration{ctx.Config.VarName(v), value}), nil
}

// numericHandler normalizes the value once and writes it to every property
// of the family
func numericHandler(m Match, ctx *Context) (Output, error) {
	vars := Family(m.Group(1)).Vars()
	if len(vars) == 0 {
		return nil, nil
	}

	value, err := ctx.Config.Normalize(m.Group(2), m.Group(3))
	if err != nil {
		return nil, err
	}

	decls := NewDeclarations()
	for _, v := range vars {
		decls.Set(ctx.Config.VarName(v), value)
	}
	return decls, nil
}
