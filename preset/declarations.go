package preset

import "strings"

// Declaration is a single CSS property and value
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an insertion-ordered set of CSS declarations.
// Setting an existing property overwrites its value in place.
type Declarations struct {
	order  []string
	values map[string]string
}

// NewDeclarations builds a set from the given declarations, in order
func NewDeclarations(decls ...Declaration) *Declarations {
	d := &Declarations{values: make(map[string]string, len(decls))}
	for _, decl := range decls {
		d.Set(decl.Property, decl.Value)
	}
	return d
}

// Set assigns value to property
func (d *Declarations) Set(property, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[property]; !ok {
		d.order = append(d.order, property)
	}
	d.values[property] = value
}

// Get returns the value of property and whether it is set
func (d *Declarations) Get(property string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[property]
	return v, ok
}

// Len returns the number of declarations
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// All returns the declarations in insertion order
func (d *Declarations) All() []Declaration {
	if d == nil {
		return nil
	}
	out := make([]Declaration, 0, len(d.order))
	for _, p := range d.order {
		out = append(out, Declaration{Property: p, Value: d.values[p]})
	}
	return out
}

// Clone returns an independent copy
func (d *Declarations) Clone() *Declarations {
	return NewDeclarations(d.All()...)
}

// String renders the declarations as "prop:value;" pairs
func (d *Declarations) String() string {
	var b strings.Builder
	for _, decl := range d.All() {
		b.WriteString(decl.Property)
		b.WriteByte(':')
		b.WriteString(decl.Value)
		b.WriteByte(';')
	}
	return b.String()
}

func (d *Declarations) rules(selector string) []CSSRule {
	return []CSSRule{{Selector: selector, Declarations: d}}
}

// BlockEntry is one selector of a raw block, relative to the rule's selector
type BlockEntry struct {
	// Suffix is appended to the base selector, e.g. "::-webkit-scrollbar-track"
	Suffix       string
	Declarations *Declarations
}

// Block is a handler output spanning several selectors
type Block []BlockEntry

func (b Block) rules(selector string) []CSSRule {
	out := make([]CSSRule, 0, len(b))
	for _, e := range b {
		out = append(out, CSSRule{Selector: selector + e.Suffix, Declarations: e.Declarations})
	}
	return out
}

// Output is what a rule handler produces: either *Declarations or Block
type Output interface {
	rules(selector string) []CSSRule
}

// CSSRule is one emitted rule
type CSSRule struct {
	Selector     string
	Declarations *Declarations

	// Order is the index of the rule table entry that produced the rule,
	// or len(Rules()) for literal shortcut declarations
	Order int

	// Token is the utility the caller asked for
	Token string
}

func (r CSSRule) String() string {
	return r.Selector + "{" + r.Declarations.String() + "}"
}
