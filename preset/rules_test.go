package preset_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"bennypowers.dev/scrollbar/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ruleNameFor returns the name of the rule that produced token's output
func ruleNameFor(t *testing.T, p *preset.Preset, token string) string {
	t.Helper()
	rules, err := p.Resolve(token)
	require.NoError(t, err)
	require.NotEmpty(t, rules, "%s should resolve", token)
	table := p.Rules()
	require.Less(t, rules[0].Order, len(table))
	return table[rules[0].Order].Name
}

func TestRuleTableOrder(t *testing.T) {
	p := preset.New(preset.Options{})

	var names []string
	for _, r := range p.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		preset.RuleRoot,
		preset.RuleRounded,
		preset.RuleHidden,
		preset.RuleColor,
		preset.RuleNumeric,
		preset.RuleColorShort,
	}, names)
}

func TestRuleShadowing(t *testing.T) {
	p := preset.New(preset.Options{})

	tests := []struct {
		token string
		rule  string
	}{
		{"scrollbar-thumb-radius-2px", preset.RuleNumeric},
		{"scrollbar-track-radius-4", preset.RuleNumeric},
		{"scrollbar-thumb-color-red", preset.RuleColor},
		{"scrollbar-thumb-red", preset.RuleColorShort},
		{"scrollbar-track-blue-500", preset.RuleColorShort},
		{"scrollbar-rounded-track", preset.RuleRounded},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.rule, ruleNameFor(t, p, tt.token))
		})
	}
}

func TestRootRule(t *testing.T) {
	for _, opts := range []preset.Options{
		{},
		{ThumbColor: "#f00", Width: "10px"},
		{VarPrefix: "un", Compatible: true, Radius: "0"},
	} {
		p := preset.New(opts)
		rules, err := p.Resolve("scrollbar")
		require.NoError(t, err)
		require.Len(t, rules, 4)

		base := rules[0].Declarations
		custom := 0
		for _, d := range base.All() {
			if strings.HasPrefix(d.Property, "--") {
				custom++
			}
		}
		assert.Equal(t, 6, custom, "root always declares six custom properties")
		assert.Equal(t, 8, base.Len(), "six custom properties plus overflow and scrollbar-color")

		overflow, ok := base.Get("overflow")
		assert.True(t, ok)
		assert.Equal(t, "auto", overflow)

		cfg := p.Config()
		sc, ok := base.Get("scrollbar-color")
		assert.True(t, ok)
		assert.Equal(t, cfg.VarRef(preset.VarThumb)+" "+cfg.VarRef(preset.VarTrack), sc)
	}
}

func TestRootRuleDefaults(t *testing.T) {
	p := preset.New(preset.Options{})
	rules, err := p.Resolve("scrollbar")
	require.NoError(t, err)
	require.Len(t, rules, 4)

	assert.Equal(t, ".scrollbar", rules[0].Selector)
	assert.Equal(t,
		"--scrollbar-track:#f5f5f5;--scrollbar-thumb:#ddd;--scrollbar-width:8px;--scrollbar-height:8px;"+
			"--scrollbar-track-radius:4px;--scrollbar-thumb-radius:4px;overflow:auto;"+
			"scrollbar-color:var(--scrollbar-thumb) var(--scrollbar-track);",
		rules[0].Declarations.String())

	assert.Equal(t, ".scrollbar::-webkit-scrollbar{width:var(--scrollbar-width);height:var(--scrollbar-height);}", rules[1].String())
	assert.Equal(t, ".scrollbar::-webkit-scrollbar-track{background-color:var(--scrollbar-track);}", rules[2].String())
	assert.Equal(t, ".scrollbar::-webkit-scrollbar-thumb{background-color:var(--scrollbar-thumb);}", rules[3].String())
}

func TestNumericRule(t *testing.T) {
	p := preset.New(preset.Options{})

	tests := []struct {
		token    string
		expected string
	}{
		{"scrollbar-w-4px", "--scrollbar-width:4px;"},
		{"scrollbar-w-4", "--scrollbar-width:1rem;"},
		{"scrollbar-h-2", "--scrollbar-height:0.5rem;"},
		{"scrollbar-w-1px", "--scrollbar-width:1px;"},
		{"scrollbar-radius-2", "--scrollbar-track-radius:0.5rem;--scrollbar-thumb-radius:0.5rem;"},
		{"scrollbar-track-radius-4", "--scrollbar-track-radius:1rem;"},
		{"scrollbar-thumb-radius-2px", "--scrollbar-thumb-radius:2px;"},
		{"scrollbar-h-50%", "--scrollbar-height:50%;"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			rules, err := p.Resolve(tt.token)
			require.NoError(t, err)
			require.Len(t, rules, 1)
			assert.Equal(t, "."+preset.EscapeSelector(tt.token), rules[0].Selector)
			assert.Equal(t, tt.expected, rules[0].Declarations.String())
		})
	}
}

func TestRadiusFanOut(t *testing.T) {
	p := preset.New(preset.Options{VarPrefix: "un"})
	rules, err := p.Resolve("scrollbar-radius-3px")
	require.NoError(t, err)
	require.Len(t, rules, 1)

	track, ok := rules[0].Declarations.Get("--un-scrollbar-track-radius")
	require.True(t, ok)
	thumb, ok := rules[0].Declarations.Get("--un-scrollbar-thumb-radius")
	require.True(t, ok)
	assert.Equal(t, "3px", track)
	assert.Equal(t, track, thumb)
}

func TestNumericRuleOverflow(t *testing.T) {
	p := preset.New(preset.Options{})
	rules, err := p.Resolve("scrollbar-w-99999999999999999999999")
	assert.Nil(t, rules)
	assert.ErrorIs(t, err, preset.ErrInvalidNumber)

	var tokErr *preset.TokenError
	require.True(t, errors.As(err, &tokErr))
	assert.Equal(t, "scrollbar-w-99999999999999999999999", tokErr.Token)
}

func TestCustomNumberToUnit(t *testing.T) {
	p := preset.New(preset.Options{
		NumberToUnit: func(n int) string { return strconv.Itoa(n*2) + "px" },
	})

	rules, err := p.Resolve("scrollbar-w-1")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "--scrollbar-width:2px;", rules[0].Declarations.String())

	rules, err = p.Resolve("scrollbar-thumb-radius-2px")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "--scrollbar-thumb-radius:2px;", rules[0].Declarations.String())
}

func TestColorRules(t *testing.T) {
	p := preset.New(preset.Options{})

	tests := []struct {
		token    string
		expected string
	}{
		{"scrollbar-track-color-red", "--scrollbar-track:rgb(248 113 113);"},
		{"scrollbar-thumb-color-blue-500/50", "--scrollbar-thumb:rgb(59 130 246 / 0.5);"},
		{"scrollbar-thumb-color-[var(--brand)]", "--scrollbar-thumb:var(--brand);"},
		{"scrollbar-thumb-red", "--scrollbar-thumb:rgb(248 113 113);"},
		{"scrollbar-track-hex-000", "--scrollbar-track:rgb(0 0 0);"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			rules, err := p.Resolve(tt.token)
			require.NoError(t, err)
			require.Len(t, rules, 1)
			assert.Equal(t, tt.expected, rules[0].Declarations.String())
		})
	}
}

type fixedColors string

func (f fixedColors) Resolve(string) (string, error) { return string(f), nil }

func TestWithColorResolver(t *testing.T) {
	p := preset.New(preset.Options{}, preset.WithColorResolver(fixedColors("hotpink")))
	rules, err := p.Resolve("scrollbar-thumb-color-anything")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "--scrollbar-thumb:hotpink;", rules[0].Declarations.String())
}

func TestUnmatchedTokens(t *testing.T) {
	p := preset.New(preset.Options{})

	for _, token := range []string{
		"",
		"flex",
		"scrollbar-",
		"scrollbar-w-",
		"scrollbar-w-abc",
		"scrollbar-depth-4",
		"scrollbar-thumb-color-notacolor",
		"scrollbar-track-radius-abc",
		"sccrollbar-thumb-radius-2",
		"Scrollbar",
		"scrollbar-trackish:scrollbar-w-4",
	} {
		t.Run(token, func(t *testing.T) {
			rules, err := p.Resolve(token)
			assert.NoError(t, err)
			assert.Empty(t, rules)
		})
	}
}

type stubColors struct {
	err error
}

func (s stubColors) Resolve(string) (string, error) {
	return "", s.err
}

func TestColorResolverErrors(t *testing.T) {
	t.Run("resolver failures fail the token", func(t *testing.T) {
		broken := errors.New("palette unavailable")
		p := preset.New(preset.Options{}, preset.WithColorResolver(stubColors{err: broken}))

		rules, err := p.Resolve("scrollbar-thumb-color-red")
		assert.Nil(t, rules)
		require.ErrorIs(t, err, broken)

		var tokErr *preset.TokenError
		require.ErrorAs(t, err, &tokErr)
		assert.Equal(t, "scrollbar-thumb-color-red", tokErr.Token)
	})

	t.Run("unknown colors decline", func(t *testing.T) {
		unknown := fmt.Errorf("%w: mauve", preset.ErrUnknownColor)
		p := preset.New(preset.Options{}, preset.WithColorResolver(stubColors{err: unknown}))

		rules, err := p.Resolve("scrollbar-thumb-color-mauve")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("built-in resolver declines unknown names", func(t *testing.T) {
		rules, err := preset.New(preset.Options{}).Resolve("scrollbar-track-notacolor")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}
