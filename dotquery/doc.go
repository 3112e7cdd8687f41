// Package dotquery converts URL query strings with dot-notation keys into
// nested structures.
//
// A key like "user.address.city" addresses a leaf three objects deep;
// repeating a key collects its values into a list. Leaves are always
// strings: the package decodes, it does not type or validate.
//
// Parsing runs in three phases:
//
//  1. Tokenize: split the (optionally '?'-prefixed) query on '&' and each
//     token on its first '=', decoding both halves leniently.
//  2. Collect: group decoded values by decoded key, preserving first-seen
//     key order and per-key value order.
//  3. Insert: split dotted keys into path segments and merge each value
//     into a tree of Scalar, List and Object nodes.
//
// Query strings are untrusted input, so nothing here returns an error:
// malformed percent-escapes are kept literally, unaddressable tokens are
// skipped, and ParseURL falls back to scanning for '?' when its input is
// not a well-formed URL.
package dotquery
