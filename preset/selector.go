package preset

import "regexp"

// attributePattern matches the attribute form of a token: [name~="value"] or [name="value"]
var attributePattern = regexp.MustCompile(`^\[(.+?)(~?=)"(.*)"\]$`)

// ParseAttribute splits an attribute-form token into the attribute name and
// value. An exact match ([name=""]) carries no value.
func ParseAttribute(token string) (name, value string, ok bool) {
	m := attributePattern.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}
	return m[1], m[3], true
}

// AttributeToken builds the attribute-form token for one value of a utility
// attribute. "~" selects the bare attribute.
func AttributeToken(name, value string) string {
	if value == "~" || value == "" {
		return `[` + name + `=""]`
	}
	return `[` + name + `~="` + value + `"]`
}

// Selector returns the selector rules for token are emitted under: an
// attribute selector for the attribute form, a class selector otherwise
func Selector(token string) string {
	m := attributePattern.FindStringSubmatch(token)
	if m == nil {
		return "." + EscapeSelector(token)
	}
	return `[` + EscapeSelector(m[1]) + m[2] + `"` + EscapeSelector(m[3]) + `"]`
}
