package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Match
	}{
		{
			name: "placeholder literal",
			line: `<input placeholder="Enter your name" />`,
			want: []Match{{Rule: RulePlaceholder, Text: "Enter your name"}},
		},
		{
			name: "placeholder expression is ignored",
			line: `<input placeholder="{t('name')}" />`,
			want: nil,
		},
		{
			name: "two attributes on one line",
			line: `<a title="Go home" aria-label="Home link" title="Back">`,
			want: []Match{
				{Rule: RuleTitle, Text: "Go home"},
				{Rule: RuleTitle, Text: "Back"},
				{Rule: RuleAriaLabel, Text: "Home link"},
			},
		},
		{
			name: "single character attribute",
			line: `<input placeholder="x" />`,
			want: nil,
		},
		{
			name: "two character attribute",
			line: `<input placeholder="ab" />`,
			want: []Match{{Rule: RulePlaceholder, Text: "ab"}},
		},
		{
			name: "capitalized inline text",
			line: `<span>Hello</span>`,
			want: []Match{{Rule: RuleTextInJSX, Text: "Hello"}},
		},
		{
			name: "inline text with non-breaking space",
			line: "<p>Hello\u00a0World</p>",
			want: []Match{{Rule: RuleTextInJSX, Text: "Hello\u00a0World"}},
		},
		{
			name: "inline text with vertical tab",
			line: "<p>Hello\vWorld</p>",
			want: []Match{{Rule: RuleTextInJSX, Text: "Hello\vWorld"}},
		},
		{
			name: "inline text with ideographic space",
			line: "<p>Hello\u3000World</p>",
			want: []Match{{Rule: RuleTextInJSX, Text: "Hello\u3000World"}},
		},
		{
			name: "translation key shaped text",
			line: `<span>user.name</span>`,
			want: []Match{{Rule: RuleTranslationKeys, Text: "user.name"}},
		},
		{
			name: "translation key rejected for file extension",
			line: `<span>app.json</span>`,
			want: nil,
		},
		{
			name: "translation key rejected for domain",
			line: `<span>example.com</span>`,
			want: nil,
		},
		{
			name: "button word",
			line: `<button>Save</button>`,
			want: []Match{
				{Rule: RuleTextInJSX, Text: "Save"},
				{Rule: RuleButtonText, Text: "Save"},
			},
		},
		{
			name: "button word is case insensitive",
			line: `<button>cancel</button>`,
			want: []Match{{Rule: RuleButtonText, Text: "cancel"}},
		},
		{
			name: "error phrase captures the keyword only",
			line: `<p>Failed to load data</p>`,
			want: []Match{
				{Rule: RuleTextInJSX, Text: "Failed to load data"},
				{Rule: RuleErrorMessages, Text: "Failed"},
			},
		},
		{
			name: "empty state",
			line: `<div>no results yet</div>`,
			want: []Match{{Rule: RuleEmptyStates, Text: "no "}},
		},
		{
			name: "dynamic expression between tags",
			line: `<span>{count}</span>`,
			want: nil,
		},
		{
			name: "plain code",
			line: `const total = items.length;`,
			want: nil,
		},
	}

	catalog := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Classify(tt.line))
		})
	}
}

func TestClassifyMultipleMatchesPerRule(t *testing.T) {
	got := Default().Classify(`<b>First</b><i>Second</i>`)

	require.Len(t, got, 2)
	assert.Equal(t, Match{Rule: RuleTextInJSX, Text: "First"}, got[0])
	assert.Equal(t, Match{Rule: RuleTextInJSX, Text: "Second"}, got[1])
}

func TestAccept(t *testing.T) {
	rule := Rule{Name: "test", Reject: []string{".json"}}

	assert.False(t, accept(rule, ""))
	assert.False(t, accept(rule, "{value"))
	assert.False(t, accept(rule, "value}"))
	assert.False(t, accept(rule, "a"))
	assert.False(t, accept(rule, " a "))
	assert.False(t, accept(rule, "data.json"))
	assert.True(t, accept(rule, "ab"))
}
