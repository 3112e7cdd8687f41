package dotquery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected map[string]any
	}{
		{
			name:     "empty input",
			url:      "",
			expected: map[string]any{},
		},
		{
			name:     "absolute URL with query",
			url:      "https://x.test?a=1&a=2",
			expected: map[string]any{"a": []string{"1", "2"}},
		},
		{
			name:     "absolute URL without query",
			url:      "https://x.test",
			expected: map[string]any{},
		},
		{
			name:     "absolute URL with path and dotted keys",
			url:      "https://x.test/search?user.name=Alice&user.age=30",
			expected: map[string]any{"user": map[string]any{"name": "Alice", "age": "30"}},
		},
		{
			name:     "query after fragment is not a query",
			url:      "https://x.test/page#frag?a=1",
			expected: map[string]any{},
		},
		{
			name:     "relative path with query",
			url:      "/search?q=go",
			expected: map[string]any{"q": "go"},
		},
		{
			name:     "bare query string fallback",
			url:      "a=1",
			expected: map[string]any{"a": "1"},
		},
		{
			name:     "bare query string with several pairs",
			url:      "a=1&b.c=2",
			expected: map[string]any{"a": "1", "b": map[string]any{"c": "2"}},
		},
		{
			name:     "no query-like content",
			url:      "just-a-path",
			expected: map[string]any{},
		},
		{
			name:     "lone question mark",
			url:      "x?",
			expected: map[string]any{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseURL(tc.url).Map())
		})
	}
}

func TestParseURLMatchesParseQuery(t *testing.T) {
	for _, q := range []string{"a=1&a=2", "user.name=X&user=john", "q=%zz"} {
		want := ParseQuery(q).Map()
		got := ParseURL("https://x.test/p?" + q).Map()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("query %q: ParseURL disagrees with ParseQuery (-want +got):\n%s", q, diff)
		}
	}
}

// Reordering distinct keys must not change the resulting key set or values,
// only the (non-semantic) key order.
func TestParseQueryOrderIndependence(t *testing.T) {
	a := ParseQuery("a=1&b.c=2&d=3").Map()
	b := ParseQuery("d=3&a=1&b.c=2").Map()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("token order changed parse result (-first +second):\n%s", diff)
	}
}
