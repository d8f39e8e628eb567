// Package extract collects candidate utility tokens from source files.
//
// HTML-like files contribute class attributes and the attribute form
// (scrollbar="~ rounded w-4"), the latter as attribute-form tokens such as
// [scrollbar~="rounded"]. JavaScript files contribute string and template
// literal text. Anything else, TypeScript included, is split on whitespace
// and quotes: the JavaScript grammar turns type syntax into error subtrees
// and would drop the literals inside them.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"unicode"

	"bennypowers.dev/scrollbar/internal/collections"
	"bennypowers.dev/scrollbar/internal/log"
	"bennypowers.dev/scrollbar/internal/parser/html"
	"bennypowers.dev/scrollbar/internal/parser/js"
	"bennypowers.dev/scrollbar/preset"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are used by FS when no pattern is given
var DefaultPatterns = []string{
	"**/*.html",
	"**/*.{js,jsx,mjs,ts,tsx}",
	"**/*.vue",
}

var (
	htmlExts = []string{".html", ".htm", ".vue", ".svelte"}
	jsExts   = []string{".js", ".jsx", ".mjs", ".cjs"}
	skipDirs = []string{"node_modules", "dist", "build"}
)

// Extractor finds tokens for a preset with the given class prefix
type Extractor struct {
	prefix string
}

// New creates an extractor. prefix is the preset's class prefix; it also
// names the attributify attribute ("tw-" reads tw-scrollbar="...").
func New(prefix string) *Extractor {
	return &Extractor{prefix: prefix}
}

// Source returns the distinct candidate tokens in source, sorted.
// name selects the strategy by extension.
func (e *Extractor) Source(name, source string) []string {
	set := collections.NewSet[string]()
	e.collect(set, name, source)
	return collections.Sorted(set)
}

func (e *Extractor) collect(set collections.Set[string], name, source string) {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case slices.Contains(htmlExts, ext):
		e.collectHTML(set, source)
	case slices.Contains(jsExts, ext):
		parser := js.AcquireParser()
		defer js.ReleaseParser(parser)
		for _, seg := range parser.ParseStrings(source) {
			set.Add(Split(seg.Content)...)
		}
	default:
		set.Add(Split(source)...)
	}
}

func (e *Extractor) collectHTML(set collections.Set[string], source string) {
	attr := e.prefix + "scrollbar"

	parser := html.AcquireParser()
	defer html.ReleaseParser(parser)

	for _, region := range parser.ParseRegions(source, attr) {
		if region.Type != html.UtilityAttribute {
			set.Add(Split(region.Content)...)
			continue
		}
		for _, v := range strings.Fields(region.Content) {
			set.Add(preset.AttributeToken(attr, v))
		}
	}
}

// Split breaks text into candidate tokens on whitespace, quotes, backticks,
// semicolons and braces
func Split(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		if unicode.IsSpace(r) {
			return true
		}
		switch r {
		case '"', '\'', '`', ';', '{', '}':
			return true
		}
		return false
	})
}

// shouldSkipDirectory reports hidden and dependency/build directories
func shouldSkipDirectory(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}

// matchesAnyPattern reports whether p matches one of the glob patterns
func matchesAnyPattern(p string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, p)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Files lists the files in fsys matching any pattern, in walk order
func Files(ctx context.Context, fsys fs.FS, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid content pattern %q", pattern)
		}
	}

	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug("Skipping %s: %v", p, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != "." && shouldSkipDirectory(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if matchesAnyPattern(p, patterns) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content: %w", err)
	}
	return files, nil
}

// FS extracts the distinct tokens of every file in fsys matching patterns.
// Unreadable files are reported together; tokens from the others are kept.
func (e *Extractor) FS(ctx context.Context, fsys fs.FS, patterns ...string) ([]string, error) {
	files, err := Files(ctx, fsys, patterns...)
	if err != nil {
		return nil, err
	}
	log.Debug("Found %d content files", len(files))

	set := collections.NewSet[string]()
	var errs []error
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read %s: %w", name, err))
			continue
		}
		e.collect(set, name, string(data))
	}
	return collections.Sorted(set), errors.Join(errs...)
}
