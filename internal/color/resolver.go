// Package color resolves the color part of a utility token, such as
// "red-500/50", "hex-0ea5e9" or "[rgb(0_0_0)]", into a CSS color value.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ErrUnknownColor indicates the value names no known color
var ErrUnknownColor = errors.New("unknown color")

// keywords pass through unchanged and never take an alpha
var keywords = map[string]string{
	"transparent": "transparent",
	"current":     "currentColor",
	"inherit":     "inherit",
	"initial":     "initial",
	"unset":       "unset",
}

// Resolver resolves color utility values against the theme palette, falling
// back to CSS named colors
type Resolver struct{}

// NewResolver creates a color resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the CSS color for value. An optional "/NN" suffix sets the
// opacity in percent.
func (r *Resolver) Resolve(value string) (string, error) {
	body, opacity, hasAlpha, err := splitAlpha(value)
	if err != nil {
		return "", err
	}

	if kw, ok := keywords[body]; ok {
		if hasAlpha {
			return "", fmt.Errorf("%w: %s does not take an opacity", ErrUnknownColor, body)
		}
		return kw, nil
	}

	// Arbitrary value: "[...]" with underscores standing in for spaces
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		raw := strings.ReplaceAll(body[1:len(body)-1], "_", " ")
		if raw == "" {
			return "", fmt.Errorf("%w: empty arbitrary value", ErrUnknownColor)
		}
		parsed, perr := csscolorparser.Parse(raw)
		if perr != nil {
			if hasAlpha {
				return "", fmt.Errorf("%w: cannot apply opacity to %s", ErrUnknownColor, raw)
			}
			// var() and other expressions the parser cannot evaluate
			return raw, nil
		}
		return format(parsed, opacity, hasAlpha), nil
	}

	parsed, err := r.parse(body)
	if err != nil {
		return "", err
	}
	return format(parsed, opacity, hasAlpha), nil
}

func (r *Resolver) parse(body string) (csscolorparser.Color, error) {
	if hex, ok := strings.CutPrefix(body, "hex-"); ok {
		parsed, err := csscolorparser.Parse("#" + hex)
		if err != nil {
			return csscolorparser.Color{}, fmt.Errorf("%w: %s", ErrUnknownColor, body)
		}
		return parsed, nil
	}

	name, shade := body, ""
	if i := strings.LastIndexByte(body, '-'); i > 0 {
		name, shade = body[:i], body[i+1:]
	}
	if hex, ok := lookupPalette(name, shade); ok {
		return csscolorparser.Parse(hex)
	}
	if hex, ok := lookupPalette(body, ""); ok {
		return csscolorparser.Parse(hex)
	}

	// CSS named colors only; hex and functional notations need "hex-" or brackets
	if !isLetters(body) {
		return csscolorparser.Color{}, fmt.Errorf("%w: %s", ErrUnknownColor, body)
	}
	parsed, err := csscolorparser.Parse(body)
	if err != nil {
		return csscolorparser.Color{}, fmt.Errorf("%w: %s", ErrUnknownColor, body)
	}
	return parsed, nil
}

// splitAlpha separates "body/NN" into body and the opacity percentage
func splitAlpha(value string) (body string, opacity float64, ok bool, err error) {
	// a "/" inside a leading arbitrary value belongs to the color itself
	start := 0
	if strings.HasPrefix(value, "[") {
		start = strings.IndexByte(value, ']') + 1
		if start == 0 {
			return value, 0, false, nil
		}
	}
	i := strings.LastIndexByte(value[start:], '/')
	if i < 0 {
		return value, 0, false, nil
	}
	i += start
	body, raw := value[:i], value[i+1:]
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	opacity, perr := strconv.ParseFloat(raw, 64)
	if perr != nil || opacity < 0 || opacity > 100 {
		return "", 0, false, fmt.Errorf("%w: bad opacity %q", ErrUnknownColor, raw)
	}
	return body, opacity, true, nil
}

func format(c csscolorparser.Color, opacity float64, hasAlpha bool) string {
	if hasAlpha {
		c = WithAlpha(c, opacity)
	}
	return ToCSS(c)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
