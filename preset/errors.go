package preset

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/scrollbar/internal/color"
)

// Sentinel errors for error type checking
var (
	// ErrCyclicShortcut indicates a shortcut expands back into itself
	// or nests deeper than MaxExpansionDepth
	ErrCyclicShortcut = errors.New("cyclic shortcut")

	// ErrInvalidNumber indicates a numeric token segment is not a base-10 integer
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidOption indicates a configuration value has the wrong shape
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnknownColor is returned by a ColorResolver for values that name no
	// color. The color rules decline such tokens; any other error fails them.
	ErrUnknownColor = color.ErrUnknownColor
)

// CyclicShortcutError reports the expansion chain that looped
type CyclicShortcutError struct {
	Chain []string
}

func (e *CyclicShortcutError) Error() string {
	return fmt.Sprintf("cyclic shortcut: %s", strings.Join(e.Chain, " -> "))
}

func (e *CyclicShortcutError) Unwrap() error {
	return ErrCyclicShortcut
}

// NewCyclicShortcutError creates a new cyclic shortcut error
func NewCyclicShortcutError(chain []string) error {
	return &CyclicShortcutError{Chain: append([]string(nil), chain...)}
}

// InvalidNumberError represents digits that could not be parsed
type InvalidNumberError struct {
	Digits string
	Err    error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Digits, e.Err)
}

func (e *InvalidNumberError) Unwrap() error {
	return ErrInvalidNumber
}

// InvalidOptionError represents a rejected configuration value
type InvalidOptionError struct {
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

func (e *InvalidOptionError) Unwrap() error {
	return ErrInvalidOption
}

// NewInvalidOptionError creates a new invalid option error
func NewInvalidOptionError(option, reason string) error {
	return &InvalidOptionError{
		Option: option,
		Reason: reason,
	}
}

// TokenError wraps a failure while resolving one token
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("resolving %q: %v", e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
