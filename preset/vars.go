package preset

// Var identifies one of the custom properties the preset generates
type Var int

const (
	// VarTrack holds the track color
	VarTrack Var = iota
	// VarThumb holds the thumb color
	VarThumb
	// VarWidth holds the vertical scrollbar width
	VarWidth
	// VarHeight holds the horizontal scrollbar height
	VarHeight
	// VarTrackRadius holds the track border radius
	VarTrackRadius
	// VarThumbRadius holds the thumb border radius
	VarThumbRadius
)

// Vars lists every custom property in the order the root rule declares them
var Vars = []Var{VarTrack, VarThumb, VarWidth, VarHeight, VarTrackRadius, VarThumbRadius}

var varSuffixes = [...]string{
	VarTrack:       "track",
	VarThumb:       "thumb",
	VarWidth:       "width",
	VarHeight:      "height",
	VarTrackRadius: "track-radius",
	VarThumbRadius: "thumb-radius",
}

// Suffix returns the semantic suffix used in the property name
func (v Var) Suffix() string {
	if v < 0 || int(v) >= len(varSuffixes) {
		return ""
	}
	return varSuffixes[v]
}

func (v Var) String() string {
	return v.Suffix()
}

// ResolveVar derives a custom property name from the configured prefix.
// With prefix "un", ResolveVar("thumb") returns "--un-scrollbar-thumb".
func (c Config) ResolveVar(suffix string) string {
	if c.varPrefix != "" {
		return "--" + c.varPrefix + "-scrollbar-" + suffix
	}
	return "--scrollbar-" + suffix
}

// VarName returns the custom property name for v
func (c Config) VarName(v Var) string {
	return c.ResolveVar(v.Suffix())
}

// VarRef returns a var() reference to the custom property for v
func (c Config) VarRef(v Var) string {
	return "var(" + c.VarName(v) + ")"
}

// Family is the semantic key a numeric utility writes through
type Family string

const (
	FamilyRadius      Family = "radius"
	FamilyWidth       Family = "w"
	FamilyHeight      Family = "h"
	FamilyTrackRadius Family = "track-radius"
	FamilyThumbRadius Family = "thumb-radius"
)

// familyVars maps each numeric family to the custom properties it writes.
// The bare radius family fans out to both radii.
var familyVars = map[Family][]Var{
	FamilyRadius:      {VarTrackRadius, VarThumbRadius},
	FamilyWidth:       {VarWidth},
	FamilyHeight:      {VarHeight},
	FamilyTrackRadius: {VarTrackRadius},
	FamilyThumbRadius: {VarThumbRadius},
}

// Vars returns the custom properties written by the family, or nil for an unknown family
func (f Family) Vars() []Var {
	return append([]Var(nil), familyVars[f]...)
}
