package patterns

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern is a named regular expression.
type Pattern struct {
	Name string
	Expr string
}

// Category names of the default list, in priority order.
const (
	CategoryFetch   = "fetch"
	CategoryAxios   = "axios"
	CategoryGet     = "get"
	CategoryPost    = "post"
	CategoryAPIPath = "api-path"
)

// Default returns the fixed pattern list in priority order.
// A fresh slice is returned on every call.
func Default() []Pattern {
	return []Pattern{
		{Name: CategoryFetch, Expr: `fetch\([^)]+\)`},
		{Name: CategoryAxios, Expr: `axios\.(get|post|put|delete|patch)\([^)]+\)`},
		{Name: CategoryGet, Expr: `\.get\([^)]+\)`},
		{Name: CategoryPost, Expr: `\.post\([^)]+\)`},
		{Name: CategoryAPIPath, Expr: `api/`},
	}
}

type compiled struct {
	Pattern
	re *regexp2.Regexp

	// groups is the number of capturing groups, excluding the whole match.
	groups int
}

// List is an ordered, compiled set of patterns.
// A List is immutable after Compile and safe for concurrent use.
type List struct {
	entries []compiled
}

// Match is the outcome of evaluating a List against one file's content.
type Match struct {
	// Category is the name of the first pattern that matched.
	Category string

	// Samples holds the first matched substrings, at most the requested limit.
	Samples []string

	// Total counts every match of Category, including those beyond the limit.
	Total int
}

// Compile compiles the patterns in order. It fails on an empty list,
// an unnamed pattern, a duplicate name or an invalid expression.
func Compile(patterns []Pattern) (*List, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern list is empty")
	}

	seen := make(map[string]bool, len(patterns))
	entries := make([]compiled, 0, len(patterns))
	for i, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern %d has no name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate pattern name %q", p.Name)
		}
		seen[p.Name] = true

		re, err := regexp2.Compile(p.Expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", p.Name, err)
		}
		entries = append(entries, compiled{Pattern: p, re: re, groups: len(re.GetGroupNumbers()) - 1})
	}

	return &List{entries: entries}, nil
}

// MustDefault compiles Default. It panics only if the built-in expressions are broken.
func MustDefault() *List {
	l, err := Compile(Default())
	if err != nil {
		panic(fmt.Sprintf("default patterns: %v", err))
	}
	return l
}

// Patterns returns the list's patterns in priority order.
func (l *List) Patterns() []Pattern {
	out := make([]Pattern, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Pattern
	}
	return out
}

// FirstMatch evaluates the patterns in order and stops at the first one
// with at least one match. Samples are truncated to limit entries; each is
// the text of the pattern's single capture group when it has exactly one
// (axios yields "get", "post", ...), otherwise the full match.
// ok is false when nothing matched.
func (l *List) FirstMatch(content string, limit int) (m Match, ok bool, err error) {
	for _, e := range l.entries {
		samples, total, err := e.findAll(content, limit)
		if err != nil {
			return Match{}, false, fmt.Errorf("pattern %q: %w", e.Name, err)
		}
		if total > 0 {
			return Match{Category: e.Name, Samples: samples, Total: total}, true, nil
		}
	}
	return Match{}, false, nil
}

// findAll walks every non-overlapping match, keeping the first limit samples.
func (e compiled) findAll(content string, limit int) ([]string, int, error) {
	var samples []string
	total := 0

	m, err := e.re.FindStringMatch(content)
	for m != nil && err == nil {
		if len(samples) < limit {
			samples = append(samples, e.sample(m))
		}
		total++
		m, err = e.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, 0, err
	}
	return samples, total, nil
}

func (e compiled) sample(m *regexp2.Match) string {
	if e.groups == 1 {
		return m.GroupByNumber(1).String()
	}
	return m.String()
}
