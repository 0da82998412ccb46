package quora

import (
	"net/url"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values the
// transmitted query string preserves the order parameters were given
// in, and absent optional parameters are never present at all.
type Params []Param

func (p Params) Encode() string {
	var out strings.Builder
	for i, kv := range p {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(url.QueryEscape(kv.Key))
		out.WriteByte('=')
		out.WriteString(url.QueryEscape(kv.Value))
	}
	return out.String()
}
