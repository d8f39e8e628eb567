package preset

import "strconv"

// NumberToUnit converts a bare integer from a token into a CSS length
type NumberToUnit func(n int) string

// Default option values
const (
	DefaultTrackColor  = "#f5f5f5"
	DefaultThumbColor  = "#ddd"
	DefaultWidth       = "8px"
	DefaultHeight      = "8px"
	DefaultTrackRadius = "4px"
	DefaultThumbRadius = "4px"
)

// DefaultNumberToUnit maps n to n/4 rem, the 4px grid convention
func DefaultNumberToUnit(n int) string {
	return strconv.FormatFloat(float64(n)/4, 'f', -1, 64) + "rem"
}

// Options is the caller-supplied, partial preset configuration.
// Zero values mean "use the default".
type Options struct {
	TrackColor string
	ThumbColor string
	Width      string
	Height     string

	// Radius sets both TrackRadius and ThumbRadius unless they are set explicitly
	Radius      string
	TrackRadius string
	ThumbRadius string

	// VarPrefix is prepended to generated custom property names:
	// "un" will generate "--un-scrollbar-thumb"
	VarPrefix string

	// Prefix is prepended to every utility class name the preset matches
	Prefix string

	NumberToUnit NumberToUnit

	// Compatible enables the standard scrollbar-width shortcuts
	// (scrollbar-thin, scrollbar-none) alongside the webkit pseudo-elements
	Compatible bool
}

// Config is the resolved, immutable preset configuration.
// Build it with Resolve; it is never modified afterwards.
type Config struct {
	trackColor   string
	thumbColor   string
	width        string
	height       string
	trackRadius  string
	thumbRadius  string
	varPrefix    string
	prefix       string
	numberToUnit NumberToUnit
	compatible   bool
}

// Resolve fills every unset field of opts with its default
func Resolve(opts Options) Config {
	trackRadius := firstNonEmpty(opts.TrackRadius, opts.Radius, DefaultTrackRadius)
	thumbRadius := firstNonEmpty(opts.ThumbRadius, opts.Radius, DefaultThumbRadius)

	numberToUnit := opts.NumberToUnit
	if numberToUnit == nil {
		numberToUnit = DefaultNumberToUnit
	}

	return Config{
		trackColor:   firstNonEmpty(opts.TrackColor, DefaultTrackColor),
		thumbColor:   firstNonEmpty(opts.ThumbColor, DefaultThumbColor),
		width:        firstNonEmpty(opts.Width, DefaultWidth),
		height:       firstNonEmpty(opts.Height, DefaultHeight),
		trackRadius:  trackRadius,
		thumbRadius:  thumbRadius,
		varPrefix:    opts.VarPrefix,
		prefix:       opts.Prefix,
		numberToUnit: numberToUnit,
		compatible:   opts.Compatible,
	}
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

func (c Config) TrackColor() string  { return c.trackColor }
func (c Config) ThumbColor() string  { return c.thumbColor }
func (c Config) Width() string       { return c.width }
func (c Config) Height() string      { return c.height }
func (c Config) TrackRadius() string { return c.trackRadius }
func (c Config) ThumbRadius() string { return c.thumbRadius }
func (c Config) VarPrefix() string   { return c.varPrefix }
func (c Config) Prefix() string      { return c.prefix }
func (c Config) Compatible() bool    { return c.compatible }

// NumberToUnit returns the configured numeric conversion
func (c Config) NumberToUnit() NumberToUnit {
	if c.numberToUnit == nil {
		return DefaultNumberToUnit
	}
	return c.numberToUnit
}

// Default returns the value the root scrollbar rule assigns to v
func (c Config) Default(v Var) string {
	switch v {
	case VarTrack:
		return c.trackColor
	case VarThumb:
		return c.thumbColor
	case VarWidth:
		return c.width
	case VarHeight:
		return c.height
	case VarTrackRadius:
		return c.trackRadius
	case VarThumbRadius:
		return c.thumbRadius
	}
	return ""
}
