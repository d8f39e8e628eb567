package js_test

import (
	"testing"

	"bennypowers.dev/scrollbar/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(segments []js.Segment) []string {
	var out []string
	for _, s := range segments {
		out = append(out, s.Content)
	}
	return out
}

func TestParseStrings(t *testing.T) {
	source := `const a = "scrollbar scrollbar-rounded";
const b = 'scrollbar-w-4px';
el.className = ` + "`scrollbar-thumb-color-${color} scrollbar-h-2`" + `;
`
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	segments := parser.ParseStrings(source)
	assert.Equal(t, []string{
		"scrollbar scrollbar-rounded",
		"scrollbar-w-4px",
		"scrollbar-thumb-color-",
		" scrollbar-h-2",
	}, contents(segments))

	require.Len(t, segments, 4)
	assert.Equal(t, js.StringLiteral, segments[0].Kind)
	assert.Equal(t, uint(1), segments[1].StartLine)
	assert.Equal(t, js.TemplateLiteral, segments[2].Kind)
}

func TestParseStringsJSX(t *testing.T) {
	source := `export const List = () => <ul className="scrollbar scrollbar-none">{items}</ul>;`

	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	assert.Contains(t, contents(parser.ParseStrings(source)), "scrollbar scrollbar-none")
}

func TestParseStringsEmpty(t *testing.T) {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	assert.Empty(t, parser.ParseStrings(""))
	assert.Empty(t, parser.ParseStrings("const n = 42;"))
}
