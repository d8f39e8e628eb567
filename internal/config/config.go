// Package config loads preset options from YAML, JSON(C) or package.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/scrollbar/internal/log"
	"bennypowers.dev/scrollbar/preset"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// PackageJSONKey is the package.json field holding the configuration
const PackageJSONKey = "scrollbar"

// Candidates are the file names Discover looks for, in order
var Candidates = []string{
	"scrollbar.config.yaml",
	"scrollbar.config.yml",
	"scrollbar.config.json",
	"scrollbar.config.jsonc",
	".config/scrollbar.yaml",
	".config/scrollbar.json",
	"package.json",
}

// ErrNotFound is returned by Discover when no configuration exists
var ErrNotFound = errors.New("no scrollbar configuration found")

// UnitFormula is the declarative form of preset.NumberToUnit:
// n maps to n / Divisor * Multiplier followed by Unit
type UnitFormula struct {
	Divisor    float64 `json:"divisor,omitempty" yaml:"divisor,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Unit       string  `json:"unit" yaml:"unit"`
}

// Validate rejects formulas that cannot produce a finite length
func (u UnitFormula) Validate() error {
	if u.Divisor < 0 || math.IsNaN(u.Divisor) || math.IsInf(u.Divisor, 0) {
		return preset.NewInvalidOptionError("numberToUnit.divisor", "must be a positive number")
	}
	if math.IsNaN(u.Multiplier) || math.IsInf(u.Multiplier, 0) {
		return preset.NewInvalidOptionError("numberToUnit.multiplier", "must be a finite number")
	}
	for _, r := range u.Unit {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '%' {
			return preset.NewInvalidOptionError("numberToUnit.unit", fmt.Sprintf("%q is not a CSS unit", u.Unit))
		}
	}
	return nil
}

// Func builds the conversion. Zero Divisor and Multiplier mean 1.
func (u UnitFormula) Func() preset.NumberToUnit {
	divisor, multiplier := u.Divisor, u.Multiplier
	if divisor == 0 {
		divisor = 1
	}
	if multiplier == 0 {
		multiplier = 1
	}
	unit := u.Unit
	return func(n int) string {
		return strconv.FormatFloat(float64(n)/divisor*multiplier, 'f', -1, 64) + unit
	}
}

// File is the on-disk configuration
type File struct {
	TrackColor  string `json:"trackColor,omitempty" yaml:"trackColor,omitempty"`
	ThumbColor  string `json:"thumbColor,omitempty" yaml:"thumbColor,omitempty"`
	Width       string `json:"width,omitempty" yaml:"width,omitempty"`
	Height      string `json:"height,omitempty" yaml:"height,omitempty"`
	Radius      string `json:"radius,omitempty" yaml:"radius,omitempty"`
	TrackRadius string `json:"trackRadius,omitempty" yaml:"trackRadius,omitempty"`
	ThumbRadius string `json:"thumbRadius,omitempty" yaml:"thumbRadius,omitempty"`
	VarPrefix   string `json:"varPrefix,omitempty" yaml:"varPrefix,omitempty"`
	Prefix      string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Compatible  bool   `json:"compatible,omitempty" yaml:"compatible,omitempty"`

	NumberToUnit *UnitFormula `json:"numberToUnit,omitempty" yaml:"numberToUnit,omitempty"`

	// Shortcuts maps a shortcut name to the tokens it expands to
	Shortcuts map[string][]string `json:"shortcuts,omitempty" yaml:"shortcuts,omitempty"`

	// Content holds glob patterns for token extraction
	Content []string `json:"content,omitempty" yaml:"content,omitempty"`

	// Path is the file the configuration was read from
	Path string `json:"-" yaml:"-"`
}

// Options converts the file into preset options
func (f *File) Options() (preset.Options, error) {
	opts := preset.Options{
		TrackColor:  f.TrackColor,
		ThumbColor:  f.ThumbColor,
		Width:       f.Width,
		Height:      f.Height,
		Radius:      f.Radius,
		TrackRadius: f.TrackRadius,
		ThumbRadius: f.ThumbRadius,
		VarPrefix:   f.VarPrefix,
		Prefix:      f.Prefix,
		Compatible:  f.Compatible,
	}
	if strings.ContainsAny(f.VarPrefix, " \t\n:;{}") {
		return opts, preset.NewInvalidOptionError("varPrefix", fmt.Sprintf("%q is not a custom property name fragment", f.VarPrefix))
	}
	if f.NumberToUnit != nil {
		if err := f.NumberToUnit.Validate(); err != nil {
			return opts, err
		}
		opts.NumberToUnit = f.NumberToUnit.Func()
	}
	return opts, nil
}

// PresetOptions returns the shortcut table as preset options, sorted by name
func (f *File) PresetOptions() ([]preset.Option, error) {
	if len(f.Shortcuts) == 0 {
		return nil, nil
	}
	shortcuts := make([]preset.Shortcut, 0, len(f.Shortcuts))
	for _, name := range slices.Sorted(maps.Keys(f.Shortcuts)) {
		tokens := f.Shortcuts[name]
		if strings.TrimSpace(name) == "" {
			return nil, preset.NewInvalidOptionError("shortcuts", "empty shortcut name")
		}
		if len(tokens) == 0 {
			return nil, preset.NewInvalidOptionError("shortcuts."+name, "expands to nothing")
		}
		sc := preset.Shortcut{Name: name}
		for _, t := range tokens {
			sc.Items = append(sc.Items, preset.Tok(t))
		}
		shortcuts = append(shortcuts, sc)
	}
	return []preset.Option{preset.WithShortcuts(shortcuts...)}, nil
}

// Preset builds a preset from the file
func (f *File) Preset() (*preset.Preset, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	extra, err := f.PresetOptions()
	if err != nil {
		return nil, err
	}
	return preset.New(opts, extra...), nil
}

// Load reads a configuration file, choosing the format by name
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	f.Path = path
	log.Debug("Loaded config from %s", path)
	return f, nil
}

// Parse decodes configuration data. For package.json it returns nil, nil
// when the file has no scrollbar field.
func Parse(name string, data []byte) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(name)); {
	case name == "package.json":
		return parsePackageJSON(data)
	case ext == ".yaml" || ext == ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ext == ".json" || ext == ".jsonc":
		// Parse as JSONC (allows comments and trailing commas)
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, preset.NewInvalidOptionError("config", fmt.Sprintf("unsupported file type %q", ext))
	}
	return &f, nil
}

func parsePackageJSON(data []byte) (*File, error) {
	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	raw, ok := pkg[PackageJSONKey]
	if !ok {
		return nil, nil
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, preset.NewInvalidOptionError(PackageJSONKey, "must be an object")
	}
	return &f, nil
}

// Discover loads the first configuration found in dir. A package.json
// without a scrollbar field does not count.
func Discover(dir string) (*File, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := Load(path)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return f, err
	}
	return nil, ErrNotFound
}
