package dotquery

import (
	"bytes"
	"encoding/json"
)

// Value is one node of a parsed query tree: a Scalar leaf, a List of
// scalars, or a nested Object.
type Value interface {
	isValue()
	appendJSON(buf *bytes.Buffer) error
	plain() any
}

// Scalar is a single decoded string value.
type Scalar string

// List holds the values of a repeated key, in encounter order. A List is
// only materialized once a key receives a second value; its elements are
// always scalars.
type List []Scalar

// Object is an insertion-ordered mapping from key to Value. Keys are
// unique; re-inserting a key merges with the existing entry rather than
// appending a duplicate. Key order follows first insertion.
type Object struct {
	keys []string
	m    map[string]Value
}

func (Scalar) isValue()  {}
func (List) isValue()    {}
func (*Object) isValue() {}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: make(map[string]Value)}
}

// Len returns the number of keys in o.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns o's keys in first-insertion order. The returned slice is a
// copy and may be modified by the caller.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get retrieves the value associated with key, reporting whether the key
// is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.m[key]
	return v, ok
}

// GetString retrieves the scalar value associated with key. If the key
// holds a List, the first element is returned. If the key is absent or
// holds an Object, GetString returns the empty string.
func (o *Object) GetString(key string) string {
	switch v := o.m[key].(type) {
	case Scalar:
		return string(v)
	case List:
		if len(v) > 0 {
			return string(v[0])
		}
	}
	return ""
}

// set inserts or replaces key while preserving first-insertion order.
func (o *Object) set(key string, v Value) {
	if _, ok := o.m[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.m[key] = v
}

// Map converts o to a plain nested structure of map[string]any, []string
// and string, convenient for callers that do not care about key order.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		out[k] = o.m[k].plain()
	}
	return out
}

func (s Scalar) plain() any { return string(s) }

func (l List) plain() any {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = string(s)
	}
	return out
}

func (o *Object) plain() any { return o.Map() }

// Strings returns the list's elements as a plain string slice.
func (l List) Strings() []string {
	return l.plain().([]string)
}

// MarshalJSON encodes o as a JSON object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s Scalar) appendJSON(buf *bytes.Buffer) error {
	b, err := json.Marshal(string(s))
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

func (l List) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('[')
	for i, s := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := s.appendJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func (o *Object) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := o.m[k].appendJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
