package preset

// MaxExpansionDepth bounds nested shortcut expansion
const MaxExpansionDepth = 16

// Item is one constituent of a shortcut: a token resolved through the full
// pipeline, or literal declarations emitted as-is
type Item struct {
	Token   string
	Literal *Declarations
}

// Tok is shorthand for a token item
func Tok(token string) Item {
	return Item{Token: token}
}

// Lit is shorthand for a literal declaration item
func Lit(decls ...Declaration) Item {
	return Item{Literal: NewDeclarations(decls...)}
}

// Shortcut names an ordered expansion
type Shortcut struct {
	Name  string
	Items []Item
}

// defaultShortcuts builds the built-in shortcut table for cfg
func defaultShortcuts(cfg Config) []Shortcut {
	p := cfg.Prefix()

	none := []Item{Tok(p + "scrollbar:" + p + "scrollbar-hidden")}
	if cfg.Compatible() {
		none = append(none, Lit(Declaration{"scrollbar-width", "none"}))
	}

	shortcuts := []Shortcut{
		{
			Name: p + "scrollbar-rounded",
			Items: []Item{
				Tok(p + "scrollbar-track:" + p + "scrollbar-rounded-track"),
				Tok(p + "scrollbar-thumb:" + p + "scrollbar-rounded-thumb"),
			},
		},
		{Name: p + "scrollbar-none", Items: none},
	}

	if cfg.Compatible() {
		shortcuts = append(shortcuts, Shortcut{
			Name:  p + "scrollbar-thin",
			Items: []Item{Lit(Declaration{"scrollbar-width", "thin"})},
		})
	}

	return shortcuts
}

// Expand returns the declared items of the named shortcut, or a single token
// item holding name when it is not a shortcut
func (p *Preset) Expand(name string) []Item {
	sc, ok := p.shortcuts[name]
	if !ok {
		return []Item{Tok(name)}
	}
	return append([]Item(nil), sc.Items...)
}

// IsShortcut reports whether name is in the shortcut table
func (p *Preset) IsShortcut(name string) bool {
	_, ok := p.shortcuts[name]
	return ok
}
