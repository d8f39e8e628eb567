package preset_test

import (
	"testing"

	"bennypowers.dev/scrollbar/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		token string
		name  string
		value string
		ok    bool
	}{
		{`[scrollbar~="rounded"]`, "scrollbar", "rounded", true},
		{`[scrollbar=""]`, "scrollbar", "", true},
		{`[tw-scrollbar~="w-4px"]`, "tw-scrollbar", "w-4px", true},
		{"scrollbar-rounded", "", "", false},
		{`[scrollbar~=rounded]`, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			name, value, ok := preset.ParseAttribute(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestAttributeToken(t *testing.T) {
	assert.Equal(t, `[scrollbar=""]`, preset.AttributeToken("scrollbar", "~"))
	assert.Equal(t, `[scrollbar~="w-4px"]`, preset.AttributeToken("scrollbar", "w-4px"))
}

func TestSelector(t *testing.T) {
	assert.Equal(t, ".scrollbar-w-4", preset.Selector("scrollbar-w-4"))
	assert.Equal(t, `.scrollbar-thumb\:scrollbar-hidden`, preset.Selector("scrollbar-thumb:scrollbar-hidden"))
	assert.Equal(t, `[scrollbar~="rounded"]`, preset.Selector(`[scrollbar~="rounded"]`))
	assert.Equal(t, `[scrollbar~="thumb-color-red-500\/50"]`, preset.Selector(`[scrollbar~="thumb-color-red-500/50"]`))
}

func TestResolveAttributeForm(t *testing.T) {
	p := preset.New(preset.Options{})

	t.Run("bare attribute resolves the root rule", func(t *testing.T) {
		rules, err := p.Resolve(`[scrollbar=""]`)
		require.NoError(t, err)
		require.Len(t, rules, 4)
		assert.Equal(t, `[scrollbar=""]`, rules[0].Selector)
		assert.Equal(t, `[scrollbar=""]::-webkit-scrollbar-thumb`, rules[3].Selector)
		assert.Equal(t, `[scrollbar=""]`, rules[0].Token)
	})

	t.Run("value resolves the prefixed utility", func(t *testing.T) {
		rules, err := p.Resolve(`[scrollbar~="w-4px"]`)
		require.NoError(t, err)
		assert.Equal(t, `[scrollbar~="w-4px"]{--scrollbar-width:4px;}`+"\n", render(rules))
	})

	t.Run("shortcuts keep the attribute selector", func(t *testing.T) {
		rules, err := p.Resolve(`[scrollbar~="rounded"]`)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, `[scrollbar~="rounded"]::-webkit-scrollbar-track`, rules[0].Selector)
		assert.Equal(t, `[scrollbar~="rounded"]::-webkit-scrollbar-thumb`, rules[1].Selector)
	})

	t.Run("unknown values are unmatched", func(t *testing.T) {
		rules, err := p.Resolve(`[scrollbar~="depth-4"]`)
		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestSinglePseudoElement(t *testing.T) {
	p := preset.New(preset.Options{})

	for _, token := range []string{
		"scrollbar-thumb:scrollbar-rounded",
		"scrollbar:scrollbar",
		"scrollbar-track:scrollbar-none",
		"scrollbar-thumb:scrollbar-track:scrollbar-hidden",
	} {
		t.Run(token, func(t *testing.T) {
			rules, err := p.Resolve(token)
			require.NoError(t, err)
			assert.Empty(t, rules)
		})
	}

	t.Run("scoped declarations still resolve", func(t *testing.T) {
		rules, err := p.Resolve("scrollbar-thumb:scrollbar-w-4")
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, `.scrollbar-thumb\:scrollbar-w-4::-webkit-scrollbar-thumb`, rules[0].Selector)
	})
}
