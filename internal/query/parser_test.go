package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htmlgrep/internal/html"
)

func TestParse_SimpleSelectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"tag", "div", Selector{Tag: "div"}},
		{"universal", "*", Selector{}},
		{"id", "#main", Selector{IDs: []string{"main"}}},
		{"class", ".title", Selector{Classes: []string{"title"}}},
		{"tag with id and classes", "div#main.title.wide", Selector{
			Tag:     "div",
			IDs:     []string{"main"},
			Classes: []string{"title", "wide"},
		}},
		{"universal with class", "*.title", Selector{Classes: []string{"title"}}},
		{"attribute", "[href=/x]", Selector{Attrs: []html.Attribute{{Key: "href", Val: "/x"}}}},
		{"double-quoted attribute", `a[title="x y"]`, Selector{
			Tag:   "a",
			Attrs: []html.Attribute{{Key: "title", Val: "x y"}},
		}},
		{"single-quoted attribute", `a[title='x y']`, Selector{
			Tag:   "a",
			Attrs: []html.Attribute{{Key: "title", Val: "x y"}},
		}},
		{"quoted empty value", `[hidden='']`, Selector{Attrs: []html.Attribute{{Key: "hidden", Val: ""}}}},
		{"spaced attribute parts", "[ href = /x ]", Selector{Attrs: []html.Attribute{{Key: "href", Val: "/x"}}}},
		{"repeated attribute", "[a=1][a=2]", Selector{Attrs: []html.Attribute{
			{Key: "a", Val: "1"},
			{Key: "a", Val: "2"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Combinators(t *testing.T) {
	div := Selector{Tag: "div"}
	p := Selector{Tag: "p"}
	span := Selector{Tag: "span"}

	tests := []struct {
		name  string
		input string
		want  Query
	}{
		{"descendant", "div p", Descendant{Left: div, Right: p}},
		{"child", "div > p", Child{Left: div, Right: p}},
		{"child without spaces", "div>p", Child{Left: div, Right: p}},
		{"left associative descendants", "div p span", Descendant{
			Left:  Descendant{Left: div, Right: p},
			Right: span,
		}},
		{"descendant then child", "div p > span", Child{
			Left:  Descendant{Left: div, Right: p},
			Right: span,
		}},
		{"child then descendant", "div > p span", Descendant{
			Left:  Child{Left: div, Right: p},
			Right: span,
		}},
		{"union", "div, p", Union{Left: div, Right: p}},
		{"left associative unions", "div, p, span", Union{
			Left:  Union{Left: div, Right: p},
			Right: span,
		}},
		{"union of chains", "div p, div > span", Union{
			Left:  Descendant{Left: div, Right: p},
			Right: Child{Left: div, Right: span},
		}},
		{"surrounding whitespace", "  div  >  p  ", Child{Left: div, Right: p}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "a selector"},
		{"only whitespace", "   ", "a selector"},
		{"dangling child combinator", "div >", "a selector"},
		{"double child combinator", "div >> p", "a selector"},
		{"dangling comma", "div,", "a selector"},
		{"bare hash", "#", "id after '#'"},
		{"bare dot", "div.", "class after '.'"},
		{"attribute without value", "[href]", "'=' after attribute name"},
		{"attribute without name", "[=x]", "attribute name"},
		{"unclosed bracket", "[a=x", "']'"},
		{"unclosed quote", `[a="x]`, "closing quote"},
		{"pseudo-class", "a:hover", "end of selector"},
		{"trailing garbage", "div )", "end of selector"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.input, perr.Input)
			assert.Equal(t, tt.expected, perr.Expected)
		})
	}
}

func TestParseError_MessageNamesInputAndOffset(t *testing.T) {
	_, err := Parse("div > ")
	require.Error(t, err)
	assert.EqualError(t, err, `invalid selector "div > ": expected a selector at offset 6`)
}
