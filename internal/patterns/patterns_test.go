package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Order(t *testing.T) {
	var names []string
	for _, p := range Default() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{CategoryFetch, CategoryAxios, CategoryGet, CategoryPost, CategoryAPIPath}, names)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		patterns []Pattern
	}{
		{"empty list", nil},
		{"unnamed", []Pattern{{Expr: "x"}}},
		{"duplicate", []Pattern{{Name: "a", Expr: "x"}, {Name: "a", Expr: "y"}}},
		{"invalid expression", []Pattern{{Name: "a", Expr: "fetch("}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.patterns)
			assert.Error(t, err)
		})
	}
}

func TestFirstMatch(t *testing.T) {
	list := MustDefault()

	tests := []struct {
		name     string
		content  string
		category string
		samples  []string
		total    int
	}{
		{
			name:     "fetch wins over axios",
			content:  "fetch('/users')\naxios.post('/login', body)",
			category: CategoryFetch,
			samples:  []string{"fetch('/users')"},
			total:    1,
		},
		{
			name:     "axios reports the verb group",
			content:  "axios.post('/login', body)\naxios.get('/me'); axios.delete(`/b/${id}`)",
			category: CategoryAxios,
			samples:  []string{"post", "get", "delete"},
			total:    3,
		},
		{
			name:     "generic get",
			content:  "const v = params.get('page');",
			category: CategoryGet,
			samples:  []string{".get('page')"},
			total:    1,
		},
		{
			name:     "generic post",
			content:  "client.post('/orders', order)",
			category: CategoryPost,
			samples:  []string{".post('/orders', order)"},
			total:    1,
		},
		{
			name:     "api path literal",
			content:  "const BASE = '/api/v1'",
			category: CategoryAPIPath,
			samples:  []string{"api/"},
			total:    1,
		},
		{
			name:     "samples truncated to limit",
			content:  "fetch(a) fetch(b) fetch(c) fetch(d) fetch(e)",
			category: CategoryFetch,
			samples:  []string{"fetch(a)", "fetch(b)", "fetch(c)"},
			total:    5,
		},
		{
			name:     "nested parentheses truncate at first close",
			content:  "fetch(buildUrl(id), opts)",
			category: CategoryFetch,
			samples:  []string{"fetch(buildUrl(id)"},
			total:    1,
		},
		{
			name:     "argument span crosses lines",
			content:  "fetch(\n  '/users'\n)",
			category: CategoryFetch,
			samples:  []string{"fetch(\n  '/users'\n)"},
			total:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok, err := list.FirstMatch(tt.content, 3)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.category, m.Category)
			assert.Equal(t, tt.samples, m.Samples)
			assert.Equal(t, tt.total, m.Total)
		})
	}
}

func TestFirstMatch_GroupSelection(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		samples []string
	}{
		{"no group yields full match", `id=\d+`, []string{"id=1", "id=22"}},
		{"one group yields the group", `id=(\d+)`, []string{"1", "22"}},
		{"two groups yield full match", `(id)=(\d+)`, []string{"id=1", "id=22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Compile([]Pattern{{Name: "id", Expr: tt.expr}})
			require.NoError(t, err)

			m, ok, err := list.FirstMatch("id=1 id=22", 3)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.samples, m.Samples)
		})
	}
}

func TestFirstMatch_NoMatch(t *testing.T) {
	list := MustDefault()

	for _, content := range []string{
		"",
		"export const Widget = () => <div>Hello</div>;",
		"fetch()",
		"const x = map.get()",
	} {
		_, ok, err := list.FirstMatch(content, 3)
		require.NoError(t, err)
		assert.False(t, ok, "content %q should not match", content)
	}
}

func TestPatterns_ReturnsCopy(t *testing.T) {
	list := MustDefault()
	ps := list.Patterns()
	ps[0].Name = "changed"
	assert.Equal(t, CategoryFetch, list.Patterns()[0].Name)
}
