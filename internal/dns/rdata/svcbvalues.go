package rdata

import (
	"fmt"
	"strings"
)

// ParseKeyValues parses the presentation form of a service-parameter block:
// comma-separated key=value pairs with optionally double-quoted values, e.g.
// `alpn=h2,port=8443` or `echconfig="dG9rZW4="`. Keys are registry display
// names or "keyNNNNN" for codes outside the registry. The codecs treat this
// grammar as a black box; it lives here so the record code never sees it.
func ParseKeyValues(s string) ([]KeyValue, error) {
	if s == "" {
		return nil, nil
	}
	var out []KeyValue
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("svcb param %q: expected key=value", pair)
		}
		key, ok := SVCBKeyFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown svcb key: %q", name)
		}
		out = append(out, KeyValue{Key: key, Value: unquote(value)})
	}
	return out, nil
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
