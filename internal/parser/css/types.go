package css

// Position represents a zero-based position in CSS source
type Position struct {
	Line      uint32
	Character uint32
}

// Range represents a span of CSS source
type Range struct {
	Start Position
	End   Position
}

// Declaration is a property declaration inside a rule block
type Declaration struct {
	// Selector is the prelude of the enclosing rule, "" at top level
	Selector string
	Property string
	Value    string
	Range    Range
}

// IsCustomProperty reports whether the declaration defines a custom property
func (d *Declaration) IsCustomProperty() bool {
	return len(d.Property) > 2 && d.Property[:2] == "--"
}

// VarCall represents a var() function call
type VarCall struct {
	Name     string
	Fallback *string // Optional fallback value
	Range    Range
}

// SyntaxError marks source the grammar could not parse
type SyntaxError struct {
	Text  string
	Range Range
}

// ParseResult contains the results of parsing CSS
type ParseResult struct {
	Declarations []*Declaration
	VarCalls     []*VarCall
	Errors       []*SyntaxError
}

// CustomProperties returns the custom property declarations, in source order
func (r *ParseResult) CustomProperties() []*Declaration {
	var out []*Declaration
	for _, d := range r.Declarations {
		if d.IsCustomProperty() {
			out = append(out, d)
		}
	}
	return out
}
