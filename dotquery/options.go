package dotquery

// Options defines configurable behavior for parsing.
//
// Marker: reserved key under which a scalar is kept when it collides with
// an object at the same path (e.g. "user.name=X&user=john" stores "john"
// under Marker inside the user object). An empty Marker drops the colliding
// scalar instead, leaving only the nested keys.
//
// MarkOnDescend: controls the reverse collision, where a dotted key must
// descend through a position that already holds a scalar or list (e.g.
// "user=john&user.name=X"). By default the old value is discarded and
// replaced by an object. When true, and Marker is non-empty, the displaced
// value is kept under Marker inside the new object, making both collision
// directions symmetric.
//
// Note: ParseQuery and ParseURL use DefaultOptions.
type Options struct {
	Marker        string
	MarkOnDescend bool
}

// DefaultOptions used by ParseQuery and ParseURL.
var DefaultOptions = Options{
	Marker:        "__value",
	MarkOnDescend: false,
}
