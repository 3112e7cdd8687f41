package dotquery

import (
	"net/url"
	"strings"
)

// ParseQuery parses a raw query string using DefaultOptions and returns its
// parameters as a nested Object:
// - Keys/values decoded using application/x-www-form-urlencoded rules
// - Dots in keys address nested objects ("a.b.c=1")
// - Repeated keys collect into a List, in encounter order
// - Scalar/object collisions resolved per Options (marker key semantics)
// ParseQuery never fails: malformed input degrades to best-effort output.
func ParseQuery(query string) *Object {
	return ParseQueryWithOptions(query, DefaultOptions)
}

// ParseQueryWithOptions is like ParseQuery but allows configuration via
// Options.
func ParseQueryWithOptions(query string, opts Options) *Object {
	root := NewObject()

	query = normalize(query)
	if query == "" {
		return root
	}

	for _, g := range collect(strings.Split(query, "&")) {
		assign(root, g, opts)
	}
	return root
}

// ParseURL extracts the query portion of a URL and parses it with
// DefaultOptions. Input that is not a well-formed absolute URL is scanned
// for a '?', and failing that is treated as a bare query string if it
// contains '='. Anything else yields an empty Object.
func ParseURL(raw string) *Object {
	return ParseURLWithOptions(raw, DefaultOptions)
}

// ParseURLWithOptions is like ParseURL but allows configuration via
// Options.
func ParseURLWithOptions(raw string, opts Options) (root *Object) {
	root = NewObject()
	defer func() {
		if recover() != nil {
			root = NewObject()
		}
	}()

	if raw == "" {
		return root
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		return ParseQueryWithOptions(u.RawQuery, opts)
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return ParseQueryWithOptions(raw[i:], opts)
	}
	if strings.Contains(raw, "=") {
		return ParseQueryWithOptions(raw, opts)
	}
	return root
}

// group holds all values seen for one decoded key, in token order.
type group struct {
	key    string
	values []string
}

// collect extracts every token and buckets values by decoded key. Groups
// come back in first-occurrence order; tokens with empty decoded keys are
// dropped.
func collect(tokens []string) []group {
	var groups []group
	index := make(map[string]int)
	for _, tok := range tokens {
		key, value, ok := extract(tok)
		if !ok {
			continue
		}
		if i, seen := index[key]; seen {
			groups[i].values = append(groups[i].values, value)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, group{key: key, values: []string{value}})
	}
	return groups
}

// assign merges one key's values into root. If structured insertion hits an
// internal inconsistency and panics, the key's raw value sequence is stored
// verbatim under the undecomposed key instead; one bad key never aborts the
// whole parse.
func assign(root *Object, g group, opts Options) {
	defer func() {
		if recover() != nil {
			root.set(g.key, verbatim(g.values))
		}
	}()

	path := splitPath(g.key)
	for _, v := range g.values {
		insert(root, path, Scalar(v), opts)
	}
}

// splitPath splits a key on '.' into path segments, discarding empty ones
// (from "..", a leading or a trailing dot). A key may produce an empty
// path, in which case nothing is inserted.
func splitPath(key string) []string {
	if !strings.Contains(key, ".") {
		return []string{key}
	}
	var path []string
	for _, seg := range strings.Split(key, ".") {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

// insert merges value at path into o and returns o, creating intermediate
// objects as needed. Merge rules at the final segment:
// - absent key: store the bare scalar
// - existing scalar: upgrade to a two-element List
// - existing List: append
// - existing Object: collision; keep value under opts.Marker inside it
//   (dropped when Marker is empty)
// At intermediate segments a scalar or List in the way is replaced by an
// Object; opts.MarkOnDescend preserves the displaced value under the
// marker instead of discarding it.
func insert(o *Object, path []string, value Scalar, opts Options) *Object {
	if o == nil {
		o = NewObject()
	}
	if len(path) == 0 {
		return o
	}

	k := path[0]
	if len(path) == 1 {
		switch cur := o.m[k].(type) {
		case nil:
			o.set(k, value)
		case Scalar:
			o.set(k, List{cur, value})
		case List:
			o.set(k, append(cur, value))
		case *Object:
			if opts.Marker != "" {
				insert(cur, []string{opts.Marker}, value, opts)
			}
		}
		return o
	}

	child, _ := o.m[k].(*Object)
	if child == nil {
		child = NewObject()
		if opts.MarkOnDescend && opts.Marker != "" {
			if old, ok := o.m[k]; ok {
				child.set(opts.Marker, old)
			}
		}
		o.set(k, child)
	}
	insert(child, path[1:], value, opts)
	return o
}

// verbatim renders a raw value sequence as a Value: one value stays a
// scalar, several become a List.
func verbatim(values []string) Value {
	if len(values) == 1 {
		return Scalar(values[0])
	}
	l := make(List, len(values))
	for i, v := range values {
		l[i] = Scalar(v)
	}
	return l
}
