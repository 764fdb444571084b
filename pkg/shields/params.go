package shields

import (
	"net/url"
	"strings"
)

// Param is a single query-string key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an insertion-ordered list of query parameters.
// The zero value is an empty list ready to use.
type Params []Param

// Set assigns value to key. An existing key keeps its position.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, kv := range p {
		keys[i] = kv.Key
	}
	return keys
}

// Encode renders the parameters as a query string without a leading "?".
// Keys and values are escaped with [url.QueryEscape].
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// BuildURL appends params to base as a query string.
//
// With no params, base is returned unchanged (no trailing "?"). If base
// already carries a query, params are appended after "&". base itself is not
// validated; malformed input yields malformed output.
func BuildURL(base string, params Params) string {
	if len(params) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}
