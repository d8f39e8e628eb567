package preset

import "strconv"

// Normalize converts a digit string and optional unit suffix into a CSS length.
// A non-empty unit is appended verbatim; otherwise the configured
// NumberToUnit converts the parsed integer.
func (c Config) Normalize(digits, unit string) (string, error) {
	if unit != "" {
		if !isDigits(digits) {
			return "", &InvalidNumberError{Digits: digits, Err: strconv.ErrSyntax}
		}
		return digits + unit, nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil || !isDigits(digits) {
		if err == nil {
			err = strconv.ErrSyntax
		}
		return "", &InvalidNumberError{Digits: digits, Err: err}
	}
	return c.NumberToUnit()(n), nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
// strconv.Atoi alone would accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
