package dotquery

import (
	"net/url"
	"strings"
)

// decode applies application/x-www-form-urlencoded rules: '+' becomes a
// space, then percent-escapes are decoded. Decoding is lenient: if the
// token contains a malformed escape, the space-substituted token is
// returned as-is instead of failing the whole parse.
func decode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	d, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return d
}

// normalize coerces raw query input into a plain query string: at most one
// leading '?' is stripped, everything else passes through untouched.
func normalize(s string) string {
	if strings.HasPrefix(s, "?") {
		return s[1:]
	}
	return s
}

// extract splits a raw token into a decoded key and value, only on the
// first '='. A token without '=' yields an empty value. Tokens whose
// decoded key is empty cannot be addressed in the output and are reported
// as not ok.
func extract(token string) (key, value string, ok bool) {
	k, v, _ := strings.Cut(token, "=")
	key = decode(k)
	if key == "" {
		return "", "", false
	}
	return key, decode(v), true
}
